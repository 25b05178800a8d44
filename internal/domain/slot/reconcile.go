package slot

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

const MaxReconcileDays = 31

// DesiredWindows lists the hourly windows between openHour and closeHour for each of the
// days starting at from.
func DesiredWindows(from time.Time, days, openHour, closeHour int) ([]Window, error) {
	if days < 1 || days > MaxReconcileDays {
		return nil, ErrInvalidRange
	}
	if openHour < 0 || closeHour > 24 || openHour >= closeHour {
		return nil, ErrInvalidHours
	}

	start := truncateDate(from)
	windows := make([]Window, 0, days*(closeHour-openHour))
	for d := 0; d < days; d++ {
		date := start.AddDate(0, 0, d)
		for h := openHour; h < closeHour; h++ {
			w, err := NewWindow(date, time.Duration(h)*time.Hour, time.Duration(h+1)*time.Hour)
			if err != nil {
				return nil, err
			}
			windows = append(windows, w)
		}
	}
	return windows, nil
}

// Existing is a persisted slot as seen by reconciliation.
type Existing struct {
	ID     uuid.UUID
	Window Window
	Booked bool
	// HasLiveBooking is true when a PENDING or CONFIRMED booking references the slot.
	HasLiveBooking bool
}

func (e Existing) removable() bool {
	return !e.Booked && !e.HasLiveBooking
}

type Plan struct {
	Insert []Window
	Delete []uuid.UUID
	// Retained lists slots outside the desired set that cannot be deleted.
	Retained []uuid.UUID
	Kept     int
}

func (p Plan) IsEmpty() bool {
	return len(p.Insert) == 0 && len(p.Delete) == 0
}

// Reconcile diffs the desired windows against the existing slots of the same venue and range.
// Missing windows are inserted; slots no longer desired are deleted unless booked or referenced
// by a live booking. Output order is deterministic.
func Reconcile(desired []Window, existing []Existing) Plan {
	want := make(map[Key]Window, len(desired))
	for _, w := range desired {
		want[w.Key()] = w
	}

	have := make(map[Key]struct{}, len(existing))
	var plan Plan
	for _, e := range existing {
		k := e.Window.Key()
		have[k] = struct{}{}
		if _, ok := want[k]; ok {
			plan.Kept++
			continue
		}
		if e.removable() {
			plan.Delete = append(plan.Delete, e.ID)
		} else {
			plan.Retained = append(plan.Retained, e.ID)
		}
	}

	for k, w := range want {
		if _, ok := have[k]; !ok {
			plan.Insert = append(plan.Insert, w)
		}
	}

	sort.Slice(plan.Insert, func(i, j int) bool {
		return plan.Insert[i].StartsAt().Before(plan.Insert[j].StartsAt())
	})
	sortIDs(plan.Delete)
	sortIDs(plan.Retained)
	return plan
}

func sortIDs(ids []uuid.UUID) {
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})
}

package slot

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidWindow = errors.New("slot end must be after start within one day")
	ErrInvalidHours  = errors.New("opening hour must be before closing hour within 0-24")
	ErrInvalidRange  = errors.New("reconciliation range must cover 1 to 31 days")
)

const day = 24 * time.Hour

// Window is a bookable period on a calendar date, expressed as offsets from midnight.
type Window struct {
	date  time.Time
	start time.Duration
	end   time.Duration
}

func NewWindow(date time.Time, start, end time.Duration) (Window, error) {
	if start < 0 || end > day || end <= start {
		return Window{}, ErrInvalidWindow
	}
	return Window{date: truncateDate(date), start: start, end: end}, nil
}

func (w Window) Date() time.Time         { return w.date }
func (w Window) Start() time.Duration    { return w.start }
func (w Window) End() time.Duration      { return w.end }
func (w Window) Duration() time.Duration { return w.end - w.start }

func (w Window) StartsAt() time.Time {
	return w.date.Add(w.start)
}

// Key identifies a window within a venue; two windows with the same key are the same slot.
func (w Window) Key() Key {
	return Key{Date: w.date.Format(time.DateOnly), Start: w.start}
}

type Key struct {
	Date  string
	Start time.Duration
}

func (k Key) String() string {
	return fmt.Sprintf("%s+%s", k.Date, k.Start)
}

func truncateDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

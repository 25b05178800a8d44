package booking

import "time"

type PriceCalculator interface {
	PriceFor(hourlyRate Money, duration time.Duration) Money
}

// HourlyPriceCalculator prorates the hourly rate by the slot length, rounding down to the minor unit.
type HourlyPriceCalculator struct{}

func NewHourlyPriceCalculator() *HourlyPriceCalculator {
	return &HourlyPriceCalculator{}
}

func (pc *HourlyPriceCalculator) PriceFor(hourlyRate Money, duration time.Duration) Money {
	if duration <= 0 {
		return Money{minor: 0, currency: hourlyRate.currency}
	}
	minor := hourlyRate.minor * int64(duration/time.Minute) / 60
	return Money{minor: minor, currency: hourlyRate.currency}
}

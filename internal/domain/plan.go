package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plan durations form a closed set. An unrecognized value falls back to
// one day when deriving a booking window.
const (
	DurationDaily   = "1 Day"
	DurationWeekly  = "7 Days"
	DurationMonthly = "30 Days"
)

type Plan struct {
	ID            string
	Name          string
	Duration      string
	Price         decimal.Decimal
	Features      []string
	IsRecommended bool
}

// BookingWindow returns the number of days a plan covers.
func (p Plan) BookingWindow() int {
	switch p.Duration {
	case DurationDaily:
		return 1
	case DurationWeekly:
		return 7
	case DurationMonthly:
		return 30
	default:
		return 1
	}
}

// EndTime derives the booking end from a start time and the plan duration.
func (p Plan) EndTime(start time.Time) time.Time {
	return start.AddDate(0, 0, p.BookingWindow())
}

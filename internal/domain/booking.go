package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "ACTIVE"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusUpcoming  BookingStatus = "UPCOMING"
)

// ParseBookingStatus maps a stored status back to the enum, falling back
// to ACTIVE for values written by older builds.
func ParseBookingStatus(s string) BookingStatus {
	switch BookingStatus(s) {
	case BookingStatusCompleted:
		return BookingStatusCompleted
	case BookingStatusCancelled:
		return BookingStatusCancelled
	case BookingStatusUpcoming:
		return BookingStatusUpcoming
	default:
		return BookingStatusActive
	}
}

// Booking is immutable after creation. Seat number and plan name are
// denormalized for display since seat identity is query-scoped.
type Booking struct {
	ID          string
	SeatID      string
	SeatNumber  string
	UserID      string
	StartTime   time.Time
	EndTime     time.Time
	Status      BookingStatus
	PlanName    string
	TotalAmount decimal.Decimal
}

// NewBooking builds an active booking for a seat, plan and start date.
// The end time and payable total are derived from the plan.
func NewBooking(seat Seat, plan Plan, start time.Time, userID string) (Booking, error) {
	if seat.ID == "" {
		return Booking{}, fmt.Errorf("booking requires a seat")
	}
	if plan.ID == "" {
		return Booking{}, fmt.Errorf("booking requires a plan")
	}
	if userID == "" {
		return Booking{}, fmt.Errorf("booking requires a user")
	}

	gst := plan.Price.Mul(GSTRate)

	return Booking{
		ID:          uuid.New().String(),
		SeatID:      seat.ID,
		SeatNumber:  seat.SeatNumber,
		UserID:      userID,
		StartTime:   start,
		EndTime:     plan.EndTime(start),
		Status:      BookingStatusActive,
		PlanName:    plan.Name,
		TotalAmount: plan.Price.Add(gst),
	}, nil
}

// GSTRate is the fixed 18% tax applied on top of a plan's price.
var GSTRate = decimal.New(18, -2)

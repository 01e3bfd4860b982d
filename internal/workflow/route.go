// Package workflow models the booking funnel as a closed set of navigable
// routes plus the navigation stack that orders them. Routes carrying
// accumulated context (seat, plan, date) cannot be built without it.
package workflow

import (
	"errors"
	"time"

	"github.com/studyspot/booking-system/internal/domain"
)

var (
	ErrMissingSeat = errors.New("workflow: route requires a seat")
	ErrMissingPlan = errors.New("workflow: route requires a plan")
	ErrMissingDate = errors.New("workflow: route requires a date")
)

// Route is one named step in the booking workflow. Key encodes the variant
// together with the identity of any carried context (seat id, plan id,
// date) and nothing else, so two routes referencing the same selection
// compare equal even when display fields differ.
type Route interface {
	Key() string

	sealed()
}

// Equal compares routes by their identity keys.
func Equal(a, b Route) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Key() == b.Key()
}

type staticRoute string

func (r staticRoute) Key() string { return string(r) }
func (r staticRoute) sealed()     {}

var (
	Login            Route = staticRoute("login")
	Dashboard        Route = staticRoute("dashboard")
	SeatAvailability Route = staticRoute("seatAvailability")
	BookingHistory   Route = staticRoute("bookingHistory")
	Profile          Route = staticRoute("profile")
	Settings         Route = staticRoute("settings")
)

func dateKey(date time.Time) string {
	return date.UTC().Format(time.RFC3339Nano)
}

// SelectPlanRoute carries the seat chosen on the availability screen and
// the booking date. It is only constructible with both present.
type SelectPlanRoute struct {
	seat domain.Seat
	date time.Time
}

func NewSelectPlanRoute(seat domain.Seat, date time.Time) (SelectPlanRoute, error) {
	if seat.ID == "" {
		return SelectPlanRoute{}, ErrMissingSeat
	}
	if date.IsZero() {
		return SelectPlanRoute{}, ErrMissingDate
	}

	return SelectPlanRoute{seat: seat, date: date}, nil
}

func (r SelectPlanRoute) Seat() domain.Seat { return r.seat }
func (r SelectPlanRoute) Date() time.Time   { return r.date }

func (r SelectPlanRoute) Key() string {
	return "selectPlan/" + r.seat.ID + "/" + dateKey(r.date)
}

func (r SelectPlanRoute) sealed() {}

// CheckoutRoute requires the full funnel context: seat, plan and date.
type CheckoutRoute struct {
	seat domain.Seat
	plan domain.Plan
	date time.Time
}

func NewCheckoutRoute(seat domain.Seat, plan domain.Plan, date time.Time) (CheckoutRoute, error) {
	if err := validateFunnelContext(seat, plan, date); err != nil {
		return CheckoutRoute{}, err
	}

	return CheckoutRoute{seat: seat, plan: plan, date: date}, nil
}

func (r CheckoutRoute) Seat() domain.Seat { return r.seat }
func (r CheckoutRoute) Plan() domain.Plan { return r.plan }
func (r CheckoutRoute) Date() time.Time   { return r.date }

func (r CheckoutRoute) Key() string {
	return "checkout/" + r.seat.ID + "/" + r.plan.ID + "/" + dateKey(r.date)
}

func (r CheckoutRoute) sealed() {}

// PaymentRoute mirrors CheckoutRoute; it is the final funnel step.
type PaymentRoute struct {
	seat domain.Seat
	plan domain.Plan
	date time.Time
}

func NewPaymentRoute(seat domain.Seat, plan domain.Plan, date time.Time) (PaymentRoute, error) {
	if err := validateFunnelContext(seat, plan, date); err != nil {
		return PaymentRoute{}, err
	}

	return PaymentRoute{seat: seat, plan: plan, date: date}, nil
}

func (r PaymentRoute) Seat() domain.Seat { return r.seat }
func (r PaymentRoute) Plan() domain.Plan { return r.plan }
func (r PaymentRoute) Date() time.Time   { return r.date }

func (r PaymentRoute) Key() string {
	return "payment/" + r.seat.ID + "/" + r.plan.ID + "/" + dateKey(r.date)
}

func (r PaymentRoute) sealed() {}

func validateFunnelContext(seat domain.Seat, plan domain.Plan, date time.Time) error {
	if seat.ID == "" {
		return ErrMissingSeat
	}
	if plan.ID == "" {
		return ErrMissingPlan
	}
	if date.IsZero() {
		return ErrMissingDate
	}

	return nil
}

package controller

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/studyspot/booking-system/internal/domain"
)

// CheckoutController is pure derivation over the accumulated funnel
// context. The price breakdown is computed on demand from the selected
// plan, never cached, so it cannot go stale when the selection changes.
type CheckoutController struct {
	SelectedSeat *domain.Seat
	SelectedPlan *domain.Plan
	SelectedDate time.Time
}

func NewCheckoutController() *CheckoutController {
	return &CheckoutController{SelectedDate: time.Now()}
}

func (c *CheckoutController) SetCheckoutData(seat *domain.Seat, plan *domain.Plan, date time.Time) {
	c.SelectedSeat = seat
	c.SelectedPlan = plan
	c.SelectedDate = date
}

// Subtotal is the plan price; zero when no plan is selected.
func (c *CheckoutController) Subtotal() decimal.Decimal {
	if c.SelectedPlan == nil {
		return decimal.Zero
	}

	return c.SelectedPlan.Price
}

// GST is the fixed 18% tax on the subtotal, decimal-exact.
func (c *CheckoutController) GST() decimal.Decimal {
	return c.Subtotal().Mul(domain.GSTRate)
}

func (c *CheckoutController) Total() decimal.Decimal {
	return c.Subtotal().Add(c.GST())
}

package controller

import (
	"context"
	"errors"
	"time"

	"github.com/studyspot/booking-system/internal/domain"
)

// PaymentController stages a booking from the funnel context, settles it
// through the payment provider and persists it via the repository. The
// booking is created only after a successful settlement.
type PaymentController struct {
	repo     domain.Repository
	provider domain.PaymentProvider

	Method         domain.PaymentMethod
	IsProcessing   bool
	PaymentSuccess bool
	ErrorMessage   string

	booking *domain.Booking
	receipt *domain.PaymentReceipt
}

func NewPaymentController(repo domain.Repository, provider domain.PaymentProvider) *PaymentController {
	return &PaymentController{
		repo:     repo,
		provider: provider,
		Method:   domain.PaymentMethodCard,
	}
}

// SetBookingData stages an active booking with the end time and total
// derived from the plan. Missing seat or plan leaves the stage empty.
func (c *PaymentController) SetBookingData(seat *domain.Seat, plan *domain.Plan, date time.Time, userID string) {
	if seat == nil || plan == nil {
		return
	}

	booking, err := domain.NewBooking(*seat, *plan, date, userID)
	if err != nil {
		c.ErrorMessage = err.Error()
		return
	}

	c.booking = &booking
}

// Booking returns the staged booking, nil when nothing is staged.
func (c *PaymentController) Booking() *domain.Booking {
	return c.booking
}

// Receipt returns the settlement receipt of the last successful payment.
func (c *PaymentController) Receipt() *domain.PaymentReceipt {
	return c.receipt
}

// ProcessPayment requires a staged booking; without one it only sets an
// error message. On success the caller resets navigation to the root
// before entering the dashboard, so the finished purchase flow cannot be
// navigated back into.
func (c *PaymentController) ProcessPayment(ctx context.Context) {
	if c.booking == nil {
		c.ErrorMessage = "No booking data available"
		return
	}

	c.IsProcessing = true
	c.ErrorMessage = ""

	receipt, err := c.provider.Charge(ctx, *c.booking, c.Method)
	if err != nil {
		c.IsProcessing = false
		c.ErrorMessage = "Payment failed. Please try again."
		return
	}

	err = c.repo.CreateBooking(ctx, *c.booking)

	c.IsProcessing = false

	if err != nil {
		if errors.Is(err, domain.ErrStorage) || errors.Is(err, domain.ErrDuplicateBooking) {
			c.ErrorMessage = err.Error()
		} else {
			c.ErrorMessage = "Payment failed. Please try again."
		}
		return
	}

	c.receipt = receipt
	c.PaymentSuccess = true
}

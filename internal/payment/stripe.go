package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"

	"github.com/studyspot/booking-system/internal/domain"
)

// StripeProvider settles charges through Stripe PaymentIntents. Selected
// by config when a secret key is present; the booking flow itself never
// knows which provider is behind the port.
type StripeProvider struct {
	currency string
}

func NewStripeProvider(currency string) *StripeProvider {
	return &StripeProvider{currency: currency}
}

func (p *StripeProvider) Charge(
	ctx context.Context,
	booking domain.Booking,
	method domain.PaymentMethod) (*domain.PaymentReceipt, error) {

	amountMinor := booking.TotalAmount.Mul(decimal.NewFromInt(100)).IntPart()

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(p.currency),
		Confirm:  stripe.Bool(true),
		Description: stripe.String(fmt.Sprintf(
			"Seat %s • %s • %s",
			booking.SeatNumber,
			booking.PlanName,
			booking.StartTime.Format("Jan 2, 2006"),
		)),
		Metadata: map[string]string{
			"booking_id": booking.ID,
			"user_id":    booking.UserID,
			"seat_id":    booking.SeatID,
		},
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, err
	}

	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return nil, fmt.Errorf("payment intent %s not settled: %s", intent.ID, intent.Status)
	}

	return &domain.PaymentReceipt{
		TransactionID: intent.ID,
		Method:        method,
		SettledAt:     time.Now(),
	}, nil
}

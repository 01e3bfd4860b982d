package domain

import (
	"context"
	"time"
)

type PaymentMethod string

const (
	PaymentMethodCard       PaymentMethod = "Credit/Debit Card"
	PaymentMethodUPI        PaymentMethod = "UPI"
	PaymentMethodNetBanking PaymentMethod = "Net Banking"
)

func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentMethodCard, PaymentMethodUPI, PaymentMethodNetBanking}
}

type PaymentReceipt struct {
	TransactionID string
	Method        PaymentMethod
	SettledAt     time.Time
}

// PaymentProvider settles the payable amount of a staged booking.
// The mock adapter always settles; the Stripe adapter is the production path.
type PaymentProvider interface {
	Charge(ctx context.Context, booking Booking, method PaymentMethod) (*PaymentReceipt, error)
}

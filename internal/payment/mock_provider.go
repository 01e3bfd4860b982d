package payment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/studyspot/booking-system/internal/domain"
)

// MockProvider simulates gateway settlement: it waits out a configurable
// delay and then settles every charge.
type MockProvider struct {
	settlementDelay time.Duration
	now             func() time.Time
}

func NewMockProvider(settlementDelay time.Duration) *MockProvider {
	return &MockProvider{
		settlementDelay: settlementDelay,
		now:             time.Now,
	}
}

func (p *MockProvider) Charge(
	ctx context.Context,
	booking domain.Booking,
	method domain.PaymentMethod) (*domain.PaymentReceipt, error) {

	if p.settlementDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.settlementDelay):
		}
	}

	return &domain.PaymentReceipt{
		TransactionID: "mock_txn_" + uuid.New().String(),
		Method:        method,
		SettledAt:     p.now(),
	}, nil
}

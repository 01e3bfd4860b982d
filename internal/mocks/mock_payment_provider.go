package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/studyspot/booking-system/internal/domain"
)

type MockPaymentProvider struct {
	mock.Mock
}

func (m *MockPaymentProvider) Charge(
	ctx context.Context,
	booking domain.Booking,
	method domain.PaymentMethod) (*domain.PaymentReceipt, error) {

	args := m.Called(ctx, booking, method)
	receipt, _ := args.Get(0).(*domain.PaymentReceipt)
	return receipt, args.Error(1)
}

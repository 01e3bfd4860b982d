package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/studyspot/booking-system/internal/domain"
)

type MockRecordStore struct {
	mock.Mock
}

func (m *MockRecordStore) InsertUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockRecordStore) Users(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]domain.User)
	return users, args.Error(1)
}

func (m *MockRecordStore) DeleteUsers(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRecordStore) InsertBooking(ctx context.Context, booking domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockRecordStore) BookingsByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	bookings, _ := args.Get(0).([]domain.Booking)
	return bookings, args.Error(1)
}

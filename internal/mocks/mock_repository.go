package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/studyspot/booking-system/internal/domain"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	args := m.Called(ctx, email, password)
	result, _ := args.Get(0).(*domain.LoginResult)
	return result, args.Error(1)
}

func (m *MockRepository) LoginWithOTP(ctx context.Context, phone, otp string) (*domain.LoginResult, error) {
	args := m.Called(ctx, phone, otp)
	result, _ := args.Get(0).(*domain.LoginResult)
	return result, args.Error(1)
}

func (m *MockRepository) SendOTP(ctx context.Context, phone string) (bool, error) {
	args := m.Called(ctx, phone)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) DashboardStats(ctx context.Context, userID string) (*domain.DashboardStats, error) {
	args := m.Called(ctx, userID)
	stats, _ := args.Get(0).(*domain.DashboardStats)
	return stats, args.Error(1)
}

func (m *MockRepository) CurrentBooking(ctx context.Context, userID string) (*domain.Booking, error) {
	args := m.Called(ctx, userID)
	booking, _ := args.Get(0).(*domain.Booking)
	return booking, args.Error(1)
}

func (m *MockRepository) Seats(ctx context.Context, date time.Time, hallID string) ([]domain.Seat, error) {
	args := m.Called(ctx, date, hallID)
	seats, _ := args.Get(0).([]domain.Seat)
	return seats, args.Error(1)
}

func (m *MockRepository) Plans(ctx context.Context) ([]domain.Plan, error) {
	args := m.Called(ctx)
	plans, _ := args.Get(0).([]domain.Plan)
	return plans, args.Error(1)
}

func (m *MockRepository) SyncBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	bookings, _ := args.Get(0).([]domain.Booking)
	return bookings, args.Error(1)
}

func (m *MockRepository) CreateBooking(ctx context.Context, booking domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockRepository) StoredUser(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockRepository) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

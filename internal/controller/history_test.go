package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/studyspot/booking-system/internal/domain"
	"github.com/studyspot/booking-system/internal/mocks"
)

func TestBookingHistoryLoadBookings(t *testing.T) {
	bookings := []domain.Booking{
		{ID: "booking_1", SeatNumber: "A1", UserID: "user_1", Status: domain.BookingStatusCompleted, TotalAmount: decimal.NewFromInt(199)},
		{ID: "booking_2", SeatNumber: "B1", UserID: "user_1", Status: domain.BookingStatusCancelled, TotalAmount: decimal.NewFromInt(999)},
	}

	t.Run("projects the synced bookings", func(t *testing.T) {
		repo := new(mocks.MockRepository)
		repo.On("SyncBookings", mock.Anything, "user_1").Return(bookings, nil)

		c := NewBookingHistoryController(repo)

		result := c.LoadBookings(context.Background(), "user_1")

		if !result.IsSuccess() {
			t.Fatalf("expected success, got %v", result.State())
		}
		if got := len(result.MustValue()); got != 2 {
			t.Errorf("len(bookings) = %d, want 2", got)
		}

		repo.AssertExpectations(t)
	})

	t.Run("projects a sync failure", func(t *testing.T) {
		repo := new(mocks.MockRepository)
		repo.On("SyncBookings", mock.Anything, "user_1").Return(nil, errors.New("backend unavailable"))

		c := NewBookingHistoryController(repo)

		result := c.LoadBookings(context.Background(), "user_1")

		if !result.IsError() {
			t.Fatalf("expected error, got %v", result.State())
		}
		if got := result.Message(); got != "backend unavailable" {
			t.Errorf("message = %q, want %q", got, "backend unavailable")
		}
	})
}

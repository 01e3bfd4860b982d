package controller

import (
	"context"

	"github.com/studyspot/booking-system/internal/async"
	"github.com/studyspot/booking-system/internal/domain"
)

// BookingHistoryController is a straight fetch-and-project screen.
type BookingHistoryController struct {
	repo   domain.Repository
	loader *async.Loader[[]domain.Booking]
}

func NewBookingHistoryController(repo domain.Repository) *BookingHistoryController {
	return &BookingHistoryController{
		repo:   repo,
		loader: async.NewLoader[[]domain.Booking](),
	}
}

func (c *BookingHistoryController) LoadBookings(ctx context.Context, userID string) async.Result[[]domain.Booking] {
	return c.loader.Load(ctx, func(ctx context.Context) ([]domain.Booking, error) {
		return c.repo.SyncBookings(ctx, userID)
	})
}

func (c *BookingHistoryController) State() async.Result[[]domain.Booking] {
	return c.loader.Result()
}

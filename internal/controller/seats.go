package controller

import (
	"context"
	"time"

	"github.com/studyspot/booking-system/internal/async"
	"github.com/studyspot/booking-system/internal/domain"
)

const DefaultHallID = "hall_1"

// SeatAvailabilityController loads the seat grid for a date and tracks
// the single selected seat. Seat identity is scoped to one query, so the
// selection never survives a date change.
type SeatAvailabilityController struct {
	repo   domain.Repository
	loader *async.Loader[[]domain.Seat]

	HallID       string
	SelectedDate time.Time
	SelectedSeat *domain.Seat
}

func NewSeatAvailabilityController(repo domain.Repository) *SeatAvailabilityController {
	return &SeatAvailabilityController{
		repo:         repo,
		loader:       async.NewLoader[[]domain.Seat](),
		HallID:       DefaultHallID,
		SelectedDate: time.Now(),
	}
}

func (c *SeatAvailabilityController) LoadSeats(ctx context.Context) async.Result[[]domain.Seat] {
	return c.loader.Load(ctx, func(ctx context.Context) ([]domain.Seat, error) {
		return c.repo.Seats(ctx, c.SelectedDate, c.HallID)
	})
}

func (c *SeatAvailabilityController) State() async.Result[[]domain.Seat] {
	return c.loader.Result()
}

// SelectSeat ignores unavailable seats, deselects when the same seat is
// tapped twice and replaces the selection otherwise.
func (c *SeatAvailabilityController) SelectSeat(seat domain.Seat) {
	if !seat.IsAvailable {
		return
	}

	if c.SelectedSeat != nil && c.SelectedSeat.ID == seat.ID {
		c.SelectedSeat = nil
		return
	}

	c.SelectedSeat = &seat
}

// DateChanged clears the selection and reloads the grid for the new date.
func (c *SeatAvailabilityController) DateChanged(ctx context.Context, date time.Time) async.Result[[]domain.Seat] {
	c.SelectedSeat = nil
	c.SelectedDate = date

	return c.LoadSeats(ctx)
}

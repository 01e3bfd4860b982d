package controller

import (
	"context"

	"github.com/studyspot/booking-system/internal/async"
	"github.com/studyspot/booking-system/internal/domain"
)

// fallbackUserID keeps the dashboard mock-fetchable before the stored
// user has been resolved.
const fallbackUserID = "user_1"

// DashboardController aggregates stats, the active booking and the
// locally stored user behind one fetch lifecycle.
type DashboardController struct {
	repo   domain.Repository
	loader *async.Loader[domain.DashboardStats]

	CurrentBooking *domain.Booking
	CurrentUser    *domain.User
}

func NewDashboardController(repo domain.Repository) *DashboardController {
	return &DashboardController{
		repo:   repo,
		loader: async.NewLoader[domain.DashboardStats](),
	}
}

func (c *DashboardController) userID() string {
	if c.CurrentUser != nil {
		return c.CurrentUser.ID
	}

	return fallbackUserID
}

func (c *DashboardController) LoadDashboard(ctx context.Context) async.Result[domain.DashboardStats] {
	return c.loader.Load(ctx, func(ctx context.Context) (domain.DashboardStats, error) {
		stats, err := c.repo.DashboardStats(ctx, c.userID())
		if err != nil {
			return domain.DashboardStats{}, err
		}

		booking, err := c.repo.CurrentBooking(ctx, c.userID())
		if err != nil {
			return domain.DashboardStats{}, err
		}

		user, err := c.repo.StoredUser(ctx)
		if err != nil {
			return domain.DashboardStats{}, err
		}

		c.CurrentBooking = booking
		c.CurrentUser = user

		return *stats, nil
	})
}

func (c *DashboardController) State() async.Result[domain.DashboardStats] {
	return c.loader.Result()
}

// Logout clears the repository-held user state and returns the
// controller to its initial state.
func (c *DashboardController) Logout(ctx context.Context) error {
	if err := c.repo.Logout(ctx); err != nil {
		return err
	}

	c.CurrentUser = nil
	c.CurrentBooking = nil
	c.loader.Reset()

	return nil
}

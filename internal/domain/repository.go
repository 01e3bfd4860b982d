package domain

import (
	"context"
	"time"
)

type LoginResult struct {
	Success bool
	User    *User
	Message string
	Token   string
}

// Repository is the single data-access gateway for the booking workflow.
// Controllers never address the durable store or any backend directly;
// mock and real implementations are swappable behind this interface.
type Repository interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	LoginWithOTP(ctx context.Context, phone, otp string) (*LoginResult, error)
	SendOTP(ctx context.Context, phone string) (bool, error)

	DashboardStats(ctx context.Context, userID string) (*DashboardStats, error)
	CurrentBooking(ctx context.Context, userID string) (*Booking, error)

	Seats(ctx context.Context, date time.Time, hallID string) ([]Seat, error)
	Plans(ctx context.Context) ([]Plan, error)

	SyncBookings(ctx context.Context, userID string) ([]Booking, error)
	CreateBooking(ctx context.Context, booking Booking) error

	SaveUser(ctx context.Context, user User) error
	StoredUser(ctx context.Context) (*User, error)
	Logout(ctx context.Context) error
}

// Package store holds the local durable record store for user and booking
// records. Only the repository layer is allowed to talk to it.
package store

import (
	"context"

	"github.com/studyspot/booking-system/internal/domain"
)

// RecordStore exposes record operations with an implicit unique constraint
// on entity id. Writes are append or delete only.
type RecordStore interface {
	InsertUser(ctx context.Context, user domain.User) error
	Users(ctx context.Context) ([]domain.User, error)
	DeleteUsers(ctx context.Context) error

	InsertBooking(ctx context.Context, booking domain.Booking) error
	BookingsByUser(ctx context.Context, userID string) ([]domain.Booking, error)
}

package domain

import "github.com/shopspring/decimal"

// Seat is a derived view object scoped to a single availability query.
// Its id is not stable across queries; only the seat number is.
type Seat struct {
	ID          string
	SeatNumber  string
	HallID      string
	IsAvailable bool
	Price       decimal.Decimal
}

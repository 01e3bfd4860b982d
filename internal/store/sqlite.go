package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/studyspot/booking-system/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT NOT NULL PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT,
	profile_url TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS bookings (
	id TEXT NOT NULL PRIMARY KEY,
	seat_id TEXT NOT NULL,
	seat_number TEXT NOT NULL,
	user_id TEXT NOT NULL,
	start_time DATETIME NOT NULL,
	end_time DATETIME NOT NULL,
	status TEXT NOT NULL,
	plan_name TEXT NOT NULL,
	total_amount TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// SQLiteStore is the embedded record store. A single local database file
// backs the one retained user record and the booking history.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}

	// Serialized access keeps logout fully visible to the next read.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create store schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) InsertUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (id, name, email, phone, profile_url)
		VALUES (?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query, user.ID, user.Name, user.Email, user.Phone, user.ProfileURL)
	if err != nil {
		return fmt.Errorf("%w: insert user: %w", domain.ErrStorage, err)
	}

	return nil
}

func (s *SQLiteStore) Users(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT id, name, email, phone, profile_url
		FROM users
		ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch users: %w", domain.ErrStorage, err)
	}
	defer rows.Close()

	var users []domain.User

	for rows.Next() {
		var user domain.User

		err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Phone, &user.ProfileURL)
		if err != nil {
			return nil, fmt.Errorf("%w: scan user: %w", domain.ErrStorage, err)
		}

		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: fetch users: %w", domain.ErrStorage, err)
	}

	return users, nil
}

func (s *SQLiteStore) DeleteUsers(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM users`)
	if err != nil {
		return fmt.Errorf("%w: delete users: %w", domain.ErrStorage, err)
	}

	return nil
}

func (s *SQLiteStore) InsertBooking(ctx context.Context, booking domain.Booking) error {
	query := `
		INSERT INTO bookings (id, seat_id, seat_number, user_id, start_time, end_time, status, plan_name, total_amount)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(
		ctx,
		query,
		booking.ID,
		booking.SeatID,
		booking.SeatNumber,
		booking.UserID,
		booking.StartTime.UTC().Format(time.RFC3339Nano),
		booking.EndTime.UTC().Format(time.RFC3339Nano),
		string(booking.Status),
		booking.PlanName,
		booking.TotalAmount.String(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: id %s", domain.ErrDuplicateBooking, booking.ID)
		}

		return fmt.Errorf("%w: insert booking: %w", domain.ErrStorage, err)
	}

	return nil
}

func (s *SQLiteStore) BookingsByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	query := `
		SELECT id, seat_id, seat_number, user_id, start_time, end_time, status, plan_name, total_amount
		FROM bookings
		WHERE user_id = ?
		ORDER BY start_time DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch bookings: %w", domain.ErrStorage, err)
	}
	defer rows.Close()

	var bookings []domain.Booking

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}

		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: fetch bookings: %w", domain.ErrStorage, err)
	}

	return bookings, nil
}

func scanBooking(rows *sql.Rows) (domain.Booking, error) {
	var (
		booking     domain.Booking
		status      string
		start, end  string
		totalAmount string
	)

	err := rows.Scan(
		&booking.ID,
		&booking.SeatID,
		&booking.SeatNumber,
		&booking.UserID,
		&start,
		&end,
		&status,
		&booking.PlanName,
		&totalAmount,
	)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("%w: scan booking: %w", domain.ErrStorage, err)
	}

	booking.StartTime, err = time.Parse(time.RFC3339Nano, start)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("%w: parse start time: %w", domain.ErrStorage, err)
	}

	booking.EndTime, err = time.Parse(time.RFC3339Nano, end)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("%w: parse end time: %w", domain.ErrStorage, err)
	}

	booking.Status = domain.ParseBookingStatus(status)

	booking.TotalAmount, err = decimal.NewFromString(totalAmount)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("%w: parse total amount: %w", domain.ErrStorage, err)
	}

	return booking, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Package repository implements the data-access gateway of the booking
// workflow. MockRepository fabricates backend results behind simulated
// latency while delegating durable user and booking records to the local
// record store, keeping the async contract identical to a real backend.
package repository

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/studyspot/booking-system/internal/domain"
	"github.com/studyspot/booking-system/internal/mailer"
	"github.com/studyspot/booking-system/internal/store"
	"github.com/studyspot/booking-system/internal/token"
)

const (
	seatGridRows = 4
	seatGridCols = 4

	defaultLatency = 500 * time.Millisecond
)

var seatPrice = decimal.NewFromInt(50)

type MockRepository struct {
	store     store.RecordStore
	otpMailer mailer.Mailer
	logger    *slog.Logger

	jwtSecret string
	tokenTTL  time.Duration

	latency time.Duration
	now     func() time.Time

	plans []domain.Plan
}

type Option func(*MockRepository)

// WithLatency overrides the simulated network delay. Zero disables it.
func WithLatency(d time.Duration) Option {
	return func(r *MockRepository) { r.latency = d }
}

// WithClock fixes the repository clock, for deterministic fixtures.
func WithClock(now func() time.Time) Option {
	return func(r *MockRepository) { r.now = now }
}

// WithOTPMailer sets the collaborator that delivers verification codes.
func WithOTPMailer(m mailer.Mailer) Option {
	return func(r *MockRepository) { r.otpMailer = m }
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *MockRepository) { r.logger = logger }
}

func NewMockRepository(recordStore store.RecordStore, jwtSecret string, opts ...Option) *MockRepository {
	r := &MockRepository{
		store:     recordStore,
		logger:    slog.Default(),
		jwtSecret: jwtSecret,
		tokenTTL:  24 * time.Hour,
		latency:   defaultLatency,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(r)
	}

	r.plans = buildPlanCatalog()

	return r
}

// pause simulates one network round trip, aborting early on cancellation.
func (r *MockRepository) pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

func (r *MockRepository) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	// The mock fabricates a user from the email and never checks the password.
	if err := r.pause(ctx, 2*r.latency); err != nil {
		return nil, err
	}

	phone := "+91 9876543210"
	user := domain.NewUser("John Doe", email, &phone, nil)

	accessToken, err := token.NewAccessToken(user.ID, user.Email, r.jwtSecret, r.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &domain.LoginResult{
		Success: true,
		User:    &user,
		Message: "Login successful",
		Token:   accessToken,
	}, nil
}

func (r *MockRepository) LoginWithOTP(ctx context.Context, phone, otp string) (*domain.LoginResult, error) {
	if err := r.pause(ctx, 2*r.latency); err != nil {
		return nil, err
	}

	if otp == "" {
		return &domain.LoginResult{
			Success: false,
			Message: "Invalid OTP. Please try again.",
		}, nil
	}

	user := domain.NewUser("John Doe", "john@example.com", &phone, nil)

	accessToken, err := token.NewAccessToken(user.ID, user.Email, r.jwtSecret, r.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &domain.LoginResult{
		Success: true,
		User:    &user,
		Message: "OTP verified successfully",
		Token:   accessToken,
	}, nil
}

func (r *MockRepository) SendOTP(ctx context.Context, phone string) (bool, error) {
	if err := r.pause(ctx, r.latency); err != nil {
		return false, err
	}

	if r.otpMailer != nil {
		code, err := generateOTP()
		if err == nil {
			err = r.otpMailer.Send(otpAddress(phone), "otp_code.tmpl", map[string]any{"otp": code})
		}
		if err != nil {
			// Delivery problems don't fail the mock contract.
			r.logger.Warn("failed to deliver OTP", "error", err)
		}
	}

	return true, nil
}

func (r *MockRepository) DashboardStats(ctx context.Context, userID string) (*domain.DashboardStats, error) {
	if err := r.pause(ctx, r.latency); err != nil {
		return nil, err
	}

	return &domain.DashboardStats{
		HoursThisWeek:     24,
		TotalHours:        156,
		CurrentStreak:     7,
		BookingsThisMonth: 12,
	}, nil
}

func (r *MockRepository) CurrentBooking(ctx context.Context, userID string) (*domain.Booking, error) {
	if err := r.pause(ctx, r.latency); err != nil {
		return nil, err
	}

	now := r.now()

	return &domain.Booking{
		ID:          uuid.New().String(),
		SeatID:      "seat_1",
		SeatNumber:  "A1",
		UserID:      userID,
		StartTime:   now,
		EndTime:     now.Add(4 * time.Hour),
		Status:      domain.BookingStatusActive,
		PlanName:    "Daily Pass",
		TotalAmount: decimal.NewFromInt(199),
	}, nil
}

func (r *MockRepository) Seats(ctx context.Context, date time.Time, hallID string) ([]domain.Seat, error) {
	if err := r.pause(ctx, r.latency); err != nil {
		return nil, err
	}

	// Fixed 4x4 grid; availability pattern is deterministic regardless of
	// date or hall, but the contract is date/hall scoped for a real backend.
	rows := []string{"A", "B", "C", "D"}
	seats := make([]domain.Seat, 0, seatGridRows*seatGridCols)

	for rowIndex, row := range rows {
		for col := 1; col <= seatGridCols; col++ {
			occupied := (rowIndex == 1 && col == 2) ||
				(rowIndex == 2 && col == 3) ||
				(rowIndex == 0 && col == 4)

			seats = append(seats, domain.Seat{
				ID:          uuid.New().String(),
				SeatNumber:  fmt.Sprintf("%s%d", row, col),
				HallID:      hallID,
				IsAvailable: !occupied,
				Price:       seatPrice,
			})
		}
	}

	return seats, nil
}

func (r *MockRepository) Plans(ctx context.Context) ([]domain.Plan, error) {
	if err := r.pause(ctx, r.latency); err != nil {
		return nil, err
	}

	plans := make([]domain.Plan, len(r.plans))
	copy(plans, r.plans)

	return plans, nil
}

func (r *MockRepository) SyncBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	if err := r.pause(ctx, r.latency); err != nil {
		return nil, err
	}

	stored, err := r.store.BookingsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return append(stored, r.historyFixtures(userID)...), nil
}

func (r *MockRepository) historyFixtures(userID string) []domain.Booking {
	now := r.now()

	fixture := func(seatID, seatNumber string, daysAgo, hours int, status domain.BookingStatus, planName string, amount int64) domain.Booking {
		start := now.AddDate(0, 0, -daysAgo)

		return domain.Booking{
			ID:          uuid.New().String(),
			SeatID:      seatID,
			SeatNumber:  seatNumber,
			UserID:      userID,
			StartTime:   start,
			EndTime:     start.Add(time.Duration(hours) * time.Hour),
			Status:      status,
			PlanName:    planName,
			TotalAmount: decimal.NewFromInt(amount),
		}
	}

	return []domain.Booking{
		fixture("seat_1", "A1", 1, 4, domain.BookingStatusCompleted, "Daily Pass", 199),
		fixture("seat_5", "B1", 3, 8, domain.BookingStatusCompleted, "Weekly Pass", 999),
		fixture("seat_10", "C2", 7, 6, domain.BookingStatusCancelled, "Daily Pass", 199),
	}
}

func (r *MockRepository) CreateBooking(ctx context.Context, booking domain.Booking) error {
	if err := r.pause(ctx, 2*r.latency); err != nil {
		return err
	}

	if !booking.EndTime.After(booking.StartTime) {
		return fmt.Errorf("booking end time must be after start time")
	}

	return r.store.InsertBooking(ctx, booking)
}

func (r *MockRepository) SaveUser(ctx context.Context, user domain.User) error {
	return r.store.InsertUser(ctx, user)
}

func (r *MockRepository) StoredUser(ctx context.Context) (*domain.User, error) {
	users, err := r.store.Users(ctx)
	if err != nil {
		return nil, err
	}

	if len(users) == 0 {
		return nil, nil
	}

	return &users[0], nil
}

func (r *MockRepository) Logout(ctx context.Context) error {
	return r.store.DeleteUsers(ctx)
}

func buildPlanCatalog() []domain.Plan {
	return []domain.Plan{
		{
			ID:       uuid.New().String(),
			Name:     "Daily Pass",
			Duration: domain.DurationDaily,
			Price:    decimal.NewFromInt(199),
			Features: []string{
				"Access for 1 day",
				"High-speed WiFi",
				"Power outlet",
			},
		},
		{
			ID:       uuid.New().String(),
			Name:     "Weekly Pass",
			Duration: domain.DurationWeekly,
			Price:    decimal.NewFromInt(999),
			Features: []string{
				"Access for 7 days",
				"High-speed WiFi",
				"Power outlet",
				"Locker access",
				"Free coffee",
			},
			IsRecommended: true,
		},
		{
			ID:       uuid.New().String(),
			Name:     "Monthly Pass",
			Duration: domain.DurationMonthly,
			Price:    decimal.NewFromInt(2999),
			Features: []string{
				"Access for 30 days",
				"High-speed WiFi",
				"Power outlet",
				"Locker access",
				"Free beverages",
				"Meeting room (2 hrs/week)",
			},
		},
	}
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}

func otpAddress(phone string) string {
	normalized := strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, phone)

	return normalized + "@sms.studyspot.app"
}

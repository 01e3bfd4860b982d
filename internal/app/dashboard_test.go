package app

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/studyspot/booking-system/internal/domain"
	"github.com/studyspot/booking-system/internal/mocks"
)

type DashboardTestSuite struct {
	suite.Suite
	app  *application
	repo *mocks.MockRepository
}

func (s *DashboardTestSuite) SetupTest() {
	s.repo = new(mocks.MockRepository)

	s.app = newTestApplication(func(a *application) {
		a.repo = s.repo
	})
}

func TestDashboardSuite(t *testing.T) {
	suite.Run(t, new(DashboardTestSuite))
}

func (s *DashboardTestSuite) TestDashboardHandler() {
	user := domain.NewUser("John Doe", "john@example.com", nil, nil)
	stats := &domain.DashboardStats{HoursThisWeek: 24, TotalHours: 156, CurrentStreak: 7, BookingsThisMonth: 12}
	booking := &domain.Booking{
		ID:          "booking_1",
		SeatNumber:  "A1",
		UserID:      user.ID,
		Status:      domain.BookingStatusActive,
		PlanName:    "Daily Pass",
		TotalAmount: decimal.NewFromInt(199),
	}

	s.repo.On("DashboardStats", mock.Anything, mock.Anything).Return(stats, nil)
	s.repo.On("CurrentBooking", mock.Anything, mock.Anything).Return(booking, nil)
	s.repo.On("StoredUser", mock.Anything).Return(&user, nil)

	w, r := executeRequest(s.T(), http.MethodGet, "/dashboard", nil)
	r = setupTestSession(s.T(), s.app, r)

	s.app.DashboardHandler(w, r)

	s.Equal(http.StatusOK, w.Code)

	var resp DashboardResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))

	s.Equal("success", resp.State)
	s.Require().NotNil(resp.Stats)
	s.Equal(24, resp.Stats.HoursThisWeek)
	s.Equal(156, resp.Stats.TotalHours)
	s.Require().NotNil(resp.CurrentBooking)
	s.Equal("A1", resp.CurrentBooking.SeatNumber)
	s.Require().NotNil(resp.User)
	s.Equal(user.ID, resp.User.Id)

	s.repo.AssertExpectations(s.T())
}

func (s *DashboardTestSuite) TestDashboardHandlerProjectsFailure() {
	s.repo.On("DashboardStats", mock.Anything, mock.Anything).Return(nil, domain.ErrStorage)

	w, r := executeRequest(s.T(), http.MethodGet, "/dashboard", nil)
	r = setupTestSession(s.T(), s.app, r)

	s.app.DashboardHandler(w, r)

	s.Equal(http.StatusOK, w.Code)

	var resp DashboardResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
	s.Equal("error", resp.State)
	s.Nil(resp.Stats)
}

func (s *DashboardTestSuite) TestBookingHistoryHandler() {
	user := domain.NewUser("John Doe", "john@example.com", nil, nil)
	bookings := []domain.Booking{
		{ID: "booking_1", SeatNumber: "A1", UserID: user.ID, Status: domain.BookingStatusCompleted, TotalAmount: decimal.NewFromInt(199)},
		{ID: "booking_2", SeatNumber: "B1", UserID: user.ID, Status: domain.BookingStatusCancelled, TotalAmount: decimal.NewFromInt(999)},
	}

	s.Run("should require a resolvable user", func() {
		s.SetupTest()

		s.repo.On("StoredUser", mock.Anything).Return(nil, nil)

		w, r := executeRequest(s.T(), http.MethodGet, "/bookings", nil)
		r = setupTestSession(s.T(), s.app, r)

		s.app.BookingHistoryHandler(w, r)

		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("should return the history for the stored user", func() {
		s.SetupTest()

		s.repo.On("StoredUser", mock.Anything).Return(&user, nil)
		s.repo.On("SyncBookings", mock.Anything, user.ID).Return(bookings, nil)

		w, r := executeRequest(s.T(), http.MethodGet, "/bookings", nil)
		r = setupTestSession(s.T(), s.app, r)

		s.app.BookingHistoryHandler(w, r)

		s.Equal(http.StatusOK, w.Code)

		var resp BookingHistoryResponse
		s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))

		s.Equal("success", resp.State)
		s.Len(resp.Bookings, 2)
		s.Equal(string(domain.BookingStatusCancelled), resp.Bookings[1].Status)

		s.repo.AssertExpectations(s.T())
	})
}

func (s *DashboardTestSuite) TestGetHealth() {
	w, r := executeRequest(s.T(), http.MethodGet, "/health", nil)

	s.app.GetHealth(w, r)

	s.Equal(http.StatusOK, w.Code)

	var resp HealthResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
	s.Equal("available", resp.Status)
	s.Equal("test", resp.Environment)
}

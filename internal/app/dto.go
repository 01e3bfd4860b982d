package app

import (
	"time"

	"github.com/studyspot/booking-system/internal/async"
	"github.com/studyspot/booking-system/internal/domain"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
}

type SendOTPRequest struct {
	Phone string `json:"phone" validate:"required,phone"`
}

type SendOTPResponse struct {
	OtpSent bool `json:"otpSent"`
}

type VerifyOTPRequest struct {
	Phone string `json:"phone" validate:"required,phone"`
	Otp   string `json:"otp" validate:"required,otp"`
}

type EmailLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type UserResponse struct {
	Id         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone,omitempty"`
	ProfileUrl *string `json:"profileUrl,omitempty"`
}

type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
	Route string       `json:"route"`
}

type SeatResponse struct {
	Id          string `json:"id"`
	SeatNumber  string `json:"seatNumber"`
	HallId      string `json:"hallId"`
	IsAvailable bool   `json:"isAvailable"`
	Price       string `json:"price"`
}

type SeatMapResponse struct {
	State          string         `json:"state"`
	Date           string         `json:"date"`
	HallId         string         `json:"hallId"`
	Seats          []SeatResponse `json:"seats,omitempty"`
	SelectedSeatId *string        `json:"selectedSeatId,omitempty"`
	Error          string         `json:"error,omitempty"`
}

type SelectSeatRequest struct {
	SeatId string `json:"seatId" validate:"required"`
}

type ChangeDateRequest struct {
	Date string `json:"date" validate:"required"`
}

type PlanResponse struct {
	Id            string   `json:"id"`
	Name          string   `json:"name"`
	Duration      string   `json:"duration"`
	Price         string   `json:"price"`
	Features      []string `json:"features"`
	IsRecommended bool     `json:"isRecommended"`
}

type PlanCatalogResponse struct {
	State          string         `json:"state"`
	Plans          []PlanResponse `json:"plans,omitempty"`
	SelectedPlanId *string        `json:"selectedPlanId,omitempty"`
	Error          string         `json:"error,omitempty"`
}

type SelectPlanRequest struct {
	PlanId string `json:"planId" validate:"required"`
}

type CheckoutSummaryResponse struct {
	Seat     SeatResponse `json:"seat"`
	Plan     PlanResponse `json:"plan"`
	Date     string       `json:"date"`
	Subtotal string       `json:"subtotal"`
	Gst      string       `json:"gst"`
	Total    string       `json:"total"`
}

type ProcessPaymentRequest struct {
	Method string `json:"method,omitempty"`
}

type BookingResponse struct {
	Id          string    `json:"id"`
	SeatId      string    `json:"seatId"`
	SeatNumber  string    `json:"seatNumber"`
	UserId      string    `json:"userId"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Status      string    `json:"status"`
	PlanName    string    `json:"planName"`
	TotalAmount string    `json:"totalAmount"`
}

type PaymentResponse struct {
	Booking       BookingResponse `json:"booking"`
	TransactionId string          `json:"transactionId"`
	Method        string          `json:"method"`
	Route         string          `json:"route"`
}

type DashboardStatsResponse struct {
	HoursThisWeek     int `json:"hoursThisWeek"`
	TotalHours        int `json:"totalHours"`
	CurrentStreak     int `json:"currentStreak"`
	BookingsThisMonth int `json:"bookingsThisMonth"`
}

type DashboardResponse struct {
	State          string                  `json:"state"`
	Stats          *DashboardStatsResponse `json:"stats,omitempty"`
	CurrentBooking *BookingResponse        `json:"currentBooking,omitempty"`
	User           *UserResponse           `json:"user,omitempty"`
	Error          string                  `json:"error,omitempty"`
}

type BookingHistoryResponse struct {
	State    string            `json:"state"`
	Bookings []BookingResponse `json:"bookings,omitempty"`
	Error    string            `json:"error,omitempty"`
}

type WorkflowStateResponse struct {
	Current string   `json:"current"`
	Routes  []string `json:"routes"`
	Depth   int      `json:"depth"`
}

func toUserResponse(user domain.User) UserResponse {
	return UserResponse{
		Id:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Phone:      user.Phone,
		ProfileUrl: user.ProfileURL,
	}
}

func toSeatResponse(seat domain.Seat) SeatResponse {
	return SeatResponse{
		Id:          seat.ID,
		SeatNumber:  seat.SeatNumber,
		HallId:      seat.HallID,
		IsAvailable: seat.IsAvailable,
		Price:       seat.Price.StringFixed(2),
	}
}

func toPlanResponse(plan domain.Plan) PlanResponse {
	return PlanResponse{
		Id:            plan.ID,
		Name:          plan.Name,
		Duration:      plan.Duration,
		Price:         plan.Price.StringFixed(2),
		Features:      plan.Features,
		IsRecommended: plan.IsRecommended,
	}
}

func toBookingResponse(booking domain.Booking) BookingResponse {
	return BookingResponse{
		Id:          booking.ID,
		SeatId:      booking.SeatID,
		SeatNumber:  booking.SeatNumber,
		UserId:      booking.UserID,
		StartTime:   booking.StartTime,
		EndTime:     booking.EndTime,
		Status:      string(booking.Status),
		PlanName:    booking.PlanName,
		TotalAmount: booking.TotalAmount.StringFixed(2),
	}
}

func stateOf[T any](result async.Result[T]) string {
	return result.State().String()
}

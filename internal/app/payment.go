package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/studyspot/booking-system/internal/domain"
	"github.com/studyspot/booking-system/internal/workflow"
)

func (app *application) ProcessPaymentHandler(w http.ResponseWriter, r *http.Request) {
	var input ProcessPaymentRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	session := app.session(r)
	session.mu.Lock()
	defer session.mu.Unlock()

	seat := session.seats.SelectedSeat
	plan := session.plans.SelectedPlan
	if seat == nil || plan == nil {
		app.conflictResponse(w, r, fmt.Errorf("select a seat and a plan before payment"))
		return
	}

	route, err := workflow.NewPaymentRoute(*seat, *plan, session.seats.SelectedDate)
	if err != nil {
		app.conflictResponse(w, r, err)
		return
	}

	session.nav.Navigate(route)

	userID, err := session.currentUserID(r.Context(), app.repo)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.unauthorizedResponse(w, r, "You must be logged in to complete a booking")
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	if input.Method != "" {
		method, ok := parsePaymentMethod(input.Method)
		if !ok {
			app.badRequestResponse(w, r, fmt.Errorf("unknown payment method %q", input.Method))
			return
		}
		session.payment.Method = method
	}

	session.payment.SetBookingData(seat, plan, session.seats.SelectedDate, userID)
	session.payment.ProcessPayment(r.Context())

	if !session.payment.PaymentSuccess {
		message := session.payment.ErrorMessage
		if message == "No booking data available" {
			app.conflictResponse(w, r, errors.New(message))
			return
		}
		app.errorResponse(w, r, http.StatusPaymentRequired, message)
		return
	}

	booking := session.payment.Booking()
	receipt := session.payment.Receipt()

	// The finished purchase cannot be navigated back into.
	session.nav.GoToRoot()
	session.nav.Navigate(workflow.Dashboard)

	session.seats.SelectedSeat = nil
	session.plans.SelectedPlan = nil

	if user := session.dashboard.CurrentUser; user != nil {
		go func(ctx context.Context, user domain.User, booking domain.Booking) {
			// new logger for this goroutine, inheriting context from the request
			// important for tracing across async boundaries
			gLogger := app.contextGetLogger(r.WithContext(ctx))

			defer func() {
				if err := recover(); err != nil {
					gLogger.Error("panic occurred during sending booking confirmation mail", "panic", err)
				}
			}()

			data := map[string]any{
				"name":        user.Name,
				"seatNumber":  booking.SeatNumber,
				"planName":    booking.PlanName,
				"startTime":   booking.StartTime.Format("Mon, 02 Jan 2006 15:04"),
				"endTime":     booking.EndTime.Format("Mon, 02 Jan 2006 15:04"),
				"totalAmount": booking.TotalAmount.StringFixed(2),
			}

			err := app.mailer.Send(user.Email, "booking_confirmation.tmpl", data)
			if err != nil {
				gLogger.Error("failed to send booking confirmation email", "error", err)
			} else {
				gLogger.Info("booking confirmation email sent successfully")
			}
		}(context.WithoutCancel(r.Context()), *user, *booking)
	}

	resp := PaymentResponse{
		Booking:       toBookingResponse(*booking),
		TransactionId: receipt.TransactionID,
		Method:        string(receipt.Method),
		Route:         session.nav.Current().Key(),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func parsePaymentMethod(value string) (domain.PaymentMethod, bool) {
	for _, method := range domain.PaymentMethods() {
		if string(method) == value {
			return method, true
		}
	}

	return "", false
}

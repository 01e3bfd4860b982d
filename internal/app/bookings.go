package app

import (
	"errors"
	"net/http"

	"github.com/studyspot/booking-system/internal/domain"
	"github.com/studyspot/booking-system/internal/workflow"
)

func (app *application) BookingHistoryHandler(w http.ResponseWriter, r *http.Request) {
	session := app.session(r)
	session.mu.Lock()
	defer session.mu.Unlock()

	userID, err := session.currentUserID(r.Context(), app.repo)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.unauthorizedResponse(w, r, "You must be logged in to view bookings")
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	session.nav.Navigate(workflow.BookingHistory)

	result := session.history.LoadBookings(r.Context(), userID)

	resp := BookingHistoryResponse{
		State: stateOf(result),
		Error: result.Message(),
	}

	if bookings, ok := result.Value(); ok {
		resp.Bookings = make([]BookingResponse, len(bookings))
		for i, booking := range bookings {
			resp.Bookings[i] = toBookingResponse(booking)
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

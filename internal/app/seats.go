package app

import (
	"fmt"
	"net/http"

	"github.com/studyspot/booking-system/internal/async"
	"github.com/studyspot/booking-system/internal/domain"
	"github.com/studyspot/booking-system/internal/workflow"
)

func (app *application) GetSeatsHandler(w http.ResponseWriter, r *http.Request) {
	session := app.session(r)
	session.mu.Lock()
	defer session.mu.Unlock()

	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		date, err := parseDate(dateParam)
		if err != nil {
			app.badRequestResponse(w, r, err)
			return
		}

		if !date.Equal(session.seats.SelectedDate) {
			session.seats.DateChanged(r.Context(), date)
		}
	}

	session.nav.Navigate(workflow.SeatAvailability)

	result := session.seats.LoadSeats(r.Context())

	err := app.writeJSON(w, http.StatusOK, toSeatMapResponse(session, result), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) SelectSeatHandler(w http.ResponseWriter, r *http.Request) {
	var input SelectSeatRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	session := app.session(r)
	session.mu.Lock()
	defer session.mu.Unlock()

	seats, ok := session.seats.State().Value()
	if !ok {
		app.conflictResponse(w, r, fmt.Errorf("seat grid has not been loaded yet"))
		return
	}

	var seat *domain.Seat
	for i := range seats {
		if seats[i].ID == input.SeatId {
			seat = &seats[i]
			break
		}
	}

	if seat == nil {
		app.notFoundResponse(w, r)
		return
	}

	session.seats.SelectSeat(*seat)

	err = app.writeJSON(w, http.StatusOK, toSeatMapResponse(session, session.seats.State()), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) ChangeDateHandler(w http.ResponseWriter, r *http.Request) {
	var input ChangeDateRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	date, err := parseDate(input.Date)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	session := app.session(r)
	session.mu.Lock()
	defer session.mu.Unlock()

	result := session.seats.DateChanged(r.Context(), date)

	err = app.writeJSON(w, http.StatusOK, toSeatMapResponse(session, result), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toSeatMapResponse(session *workflowSession, result async.Result[[]domain.Seat]) SeatMapResponse {
	resp := SeatMapResponse{
		State:  stateOf(result),
		Date:   session.seats.SelectedDate.Format("2006-01-02"),
		HallId: session.seats.HallID,
		Error:  result.Message(),
	}

	if seats, ok := result.Value(); ok {
		resp.Seats = make([]SeatResponse, len(seats))
		for i, seat := range seats {
			resp.Seats[i] = toSeatResponse(seat)
		}
	}

	if selected := session.seats.SelectedSeat; selected != nil {
		resp.SelectedSeatId = &selected.ID
	}

	return resp
}

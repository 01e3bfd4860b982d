package app

import (
	"fmt"
	"net/http"

	"github.com/studyspot/booking-system/internal/workflow"
)

func (app *application) CheckoutSummaryHandler(w http.ResponseWriter, r *http.Request) {
	session := app.session(r)
	session.mu.Lock()
	defer session.mu.Unlock()

	seat := session.seats.SelectedSeat
	plan := session.plans.SelectedPlan
	if seat == nil || plan == nil {
		app.conflictResponse(w, r, fmt.Errorf("select a seat and a plan before checkout"))
		return
	}

	route, err := workflow.NewCheckoutRoute(*seat, *plan, session.seats.SelectedDate)
	if err != nil {
		app.conflictResponse(w, r, err)
		return
	}

	session.nav.Navigate(route)
	session.checkout.SetCheckoutData(seat, plan, session.seats.SelectedDate)

	resp := CheckoutSummaryResponse{
		Seat:     toSeatResponse(*seat),
		Plan:     toPlanResponse(*plan),
		Date:     session.checkout.SelectedDate.Format("2006-01-02"),
		Subtotal: session.checkout.Subtotal().StringFixed(2),
		Gst:      session.checkout.GST().StringFixed(2),
		Total:    session.checkout.Total().StringFixed(2),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

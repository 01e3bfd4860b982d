package app

import (
	"fmt"
	"net/http"

	"github.com/studyspot/booking-system/internal/async"
	"github.com/studyspot/booking-system/internal/domain"
	"github.com/studyspot/booking-system/internal/workflow"
)

func (app *application) GetPlansHandler(w http.ResponseWriter, r *http.Request) {
	session := app.session(r)
	session.mu.Lock()
	defer session.mu.Unlock()

	// Plan selection is only reachable with a seat and date accumulated;
	// the route constructor enforces that.
	seat := session.seats.SelectedSeat
	if seat == nil {
		app.conflictResponse(w, r, fmt.Errorf("select a seat before choosing a plan"))
		return
	}

	route, err := workflow.NewSelectPlanRoute(*seat, session.seats.SelectedDate)
	if err != nil {
		app.conflictResponse(w, r, err)
		return
	}

	session.nav.Navigate(route)

	result := session.plans.LoadPlans(r.Context())

	err = app.writeJSON(w, http.StatusOK, toPlanCatalogResponse(session, result), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) SelectPlanHandler(w http.ResponseWriter, r *http.Request) {
	var input SelectPlanRequest

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

	plans, ok := session.plans.State().Value()
	if !ok {
		app.conflictResponse(w, r, fmt.Errorf("plan catalog has not been loaded yet"))
		return
	}

	var plan *domain.Plan
	for i := range plans {
		if plans[i].ID == input.PlanId {
			plan = &plans[i]
			break
		}
	}

	if plan == nil {
		app.notFoundResponse(w, r)
		return
	}

	session.plans.SelectPlan(*plan)

	err = app.writeJSON(w, http.StatusOK, toPlanCatalogResponse(session, session.plans.State()), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toPlanCatalogResponse(session *workflowSession, result async.Result[[]domain.Plan]) PlanCatalogResponse {
	resp := PlanCatalogResponse{
		State: stateOf(result),
		Error: result.Message(),
	}

	if plans, ok := result.Value(); ok {
		resp.Plans = make([]PlanResponse, len(plans))
		for i, plan := range plans {
			resp.Plans[i] = toPlanResponse(plan)
		}
	}

	if selected := session.plans.SelectedPlan; selected != nil {
		resp.SelectedPlanId = &selected.ID
	}

	return resp
}

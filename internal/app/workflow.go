package app

import (
	"net/http"
)

func (app *application) WorkflowStateHandler(w http.ResponseWriter, r *http.Request) {
	session := app.session(r)
	session.mu.Lock()
	defer session.mu.Unlock()

	err := app.writeJSON(w, http.StatusOK, toWorkflowStateResponse(session), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GoBackHandler(w http.ResponseWriter, r *http.Request) {
	session := app.session(r)
	session.mu.Lock()
	defer session.mu.Unlock()

	session.nav.GoBack()

	err := app.writeJSON(w, http.StatusOK, toWorkflowStateResponse(session), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) ResetWorkflowHandler(w http.ResponseWriter, r *http.Request) {
	session := app.session(r)
	session.mu.Lock()
	defer session.mu.Unlock()

	session.nav.GoToRoot()

	err := app.writeJSON(w, http.StatusOK, toWorkflowStateResponse(session), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toWorkflowStateResponse(session *workflowSession) WorkflowStateResponse {
	routes := session.nav.Routes()

	resp := WorkflowStateResponse{
		Current: session.nav.Current().Key(),
		Routes:  make([]string, len(routes)),
		Depth:   session.nav.Depth(),
	}

	for i, route := range routes {
		resp.Routes[i] = route.Key()
	}

	return resp
}

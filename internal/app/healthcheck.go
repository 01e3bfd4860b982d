package app

import (
	"net/http"
)

func (app *application) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:      "available",
		Environment: app.config.env,
		Version:     version,
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

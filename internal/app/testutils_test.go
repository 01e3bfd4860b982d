package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"

	"github.com/studyspot/booking-system/internal/mailer"
	"github.com/studyspot/booking-system/internal/mocks"
	"github.com/studyspot/booking-system/internal/validator"
)

func newTestApplication(opts ...func(*application)) *application {
	sessionManager := scs.New()
	sessionManager.Store = memstore.New()

	app := &application{
		config:          config{env: "test", hall: "hall_1"},
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		validator:       validator.NewValidator(),
		sessionManager:  sessionManager,
		mailer:          mailer.NewMockMailer(),
		repo:            &mocks.MockRepository{},
		paymentProvider: &mocks.MockPaymentProvider{},
		sessions:        newSessionRegistry(),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func setupTestSession(t *testing.T, app *application, r *http.Request) *http.Request {
	t.Helper()

	ctx, err := app.sessionManager.Load(r.Context(), "session")
	if err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}

	return r.WithContext(ctx)
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()

	var reader io.Reader

	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantErrMessage string) {
	t.Helper()

	if wantStatus >= 200 && wantStatus < 300 {
		return
	}

	switch wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", wantErrMessage)
		}

	default:
		var errorResp ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if wantErrMessage != "" && errorResp.Message != wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, wantErrMessage)
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}

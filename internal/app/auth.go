package app

import (
	"net/http"

	"github.com/studyspot/booking-system/internal/workflow"
)

func (app *application) SendOTPHandler(w http.ResponseWriter, r *http.Request) {
	var input SendOTPRequest

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

	session.login.PhoneNumber = input.Phone
	session.login.SendOTP(r.Context())

	if !session.login.IsOTPSent {
		app.unauthorizedResponse(w, r, session.login.ErrorMessage)
		return
	}

	err = app.writeJSON(w, http.StatusOK, SendOTPResponse{OtpSent: true}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) VerifyOTPHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input VerifyOTPRequest

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

	session.login.PhoneNumber = input.Phone
	session.login.OTP = input.Otp
	session.login.VerifyOTP(r.Context())

	if !session.login.IsLoggedIn {
		logger.Warn("OTP verification failed")
		app.unauthorizedResponse(w, r, session.login.ErrorMessage)
		return
	}

	app.completeLogin(w, r, session)
}

func (app *application) EmailLoginHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input EmailLoginRequest

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

	session.login.Email = input.Email
	session.login.Password = input.Password
	session.login.LoginWithEmail(r.Context())

	if !session.login.IsLoggedIn {
		logger.Warn("email login failed")
		app.unauthorizedResponse(w, r, session.login.ErrorMessage)
		return
	}

	app.completeLogin(w, r, session)
}

func (app *application) GoogleLoginHandler(w http.ResponseWriter, r *http.Request) {
	session := app.session(r)
	session.mu.Lock()
	defer session.mu.Unlock()

	session.login.LoginWithGoogle(r.Context())

	if !session.login.IsLoggedIn {
		app.unauthorizedResponse(w, r, session.login.ErrorMessage)
		return
	}

	app.completeLogin(w, r, session)
}

// completeLogin navigates to the dashboard and clears the transient login
// form so a subsequent login starts clean. Caller holds the session lock.
func (app *application) completeLogin(w http.ResponseWriter, r *http.Request, session *workflowSession) {
	user := session.login.CurrentUser
	accessToken := session.login.Token

	session.dashboard.CurrentUser = user

	session.nav.GoToRoot()
	session.nav.Navigate(workflow.Dashboard)

	session.login.Reset()

	resp := LoginResponse{
		User:  toUserResponse(*user),
		Token: accessToken,
		Route: session.nav.Current().Key(),
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	session := app.session(r)
	session.mu.Lock()

	err := session.dashboard.Logout(r.Context())
	if err != nil {
		session.mu.Unlock()
		app.serverErrorResponse(w, r, err)
		return
	}

	session.nav.GoToRoot()
	session.mu.Unlock()

	app.sessions.remove(app.sessionManager.Token(r.Context()))

	err = app.sessionManager.Destroy(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Package controller holds one controller per workflow screen. Each owns
// only transient UI state, talks to the data layer exclusively through
// domain.Repository and projects fetch lifecycles into async results.
package controller

import (
	"context"
	"strings"

	"github.com/studyspot/booking-system/internal/domain"
)

type LoginMode string

const (
	LoginModePhone LoginMode = "phone"
	LoginModeEmail LoginMode = "email"
)

// LoginController drives both the OTP and the email login paths. After a
// successful login the caller navigates to the dashboard and invokes
// Reset so a later login starts from a clean form.
type LoginController struct {
	repo domain.Repository

	Mode         LoginMode
	PhoneNumber  string
	OTP          string
	Email        string
	Password     string
	IsOTPSent    bool
	IsLoading    bool
	ErrorMessage string
	IsLoggedIn   bool
	CurrentUser  *domain.User
	Token        string
}

func NewLoginController(repo domain.Repository) *LoginController {
	return &LoginController{
		repo: repo,
		Mode: LoginModePhone,
	}
}

// SendOTP requests a verification code. An empty phone number is rejected
// before any repository call.
func (c *LoginController) SendOTP(ctx context.Context) {
	if strings.TrimSpace(c.PhoneNumber) == "" {
		c.ErrorMessage = "Please enter a phone number"
		return
	}

	c.IsLoading = true
	c.ErrorMessage = ""

	ok, err := c.repo.SendOTP(ctx, c.PhoneNumber)

	c.IsLoading = false

	if err != nil || !ok {
		c.ErrorMessage = "Failed to send OTP. Please try again."
		return
	}

	c.IsOTPSent = true
}

// VerifyOTP completes the phone login path. The resulting user is
// persisted through the repository before the logged-in flag is raised.
func (c *LoginController) VerifyOTP(ctx context.Context) {
	if strings.TrimSpace(c.OTP) == "" {
		c.ErrorMessage = "Please enter the OTP"
		return
	}

	c.IsLoading = true
	c.ErrorMessage = ""

	result, err := c.repo.LoginWithOTP(ctx, c.PhoneNumber, c.OTP)

	c.IsLoading = false

	if err != nil {
		c.ErrorMessage = err.Error()
		return
	}

	c.completeLogin(ctx, result, "Invalid OTP")
}

// LoginWithEmail validates both fields before touching the repository.
func (c *LoginController) LoginWithEmail(ctx context.Context) {
	if strings.TrimSpace(c.Email) == "" {
		c.ErrorMessage = "Please enter your email"
		return
	}
	if c.Password == "" {
		c.ErrorMessage = "Please enter your password"
		return
	}

	c.IsLoading = true
	c.ErrorMessage = ""

	result, err := c.repo.Login(ctx, c.Email, c.Password)

	c.IsLoading = false

	if err != nil {
		c.ErrorMessage = err.Error()
		return
	}

	c.completeLogin(ctx, result, "Login failed")
}

// LoginWithGoogle is the mocked federated path: it fabricates a fixed
// user and persists it like any other successful login.
func (c *LoginController) LoginWithGoogle(ctx context.Context) {
	c.IsLoading = true
	c.ErrorMessage = ""

	user := domain.NewUser("Google User", "google.user@gmail.com", nil, nil)

	c.IsLoading = false

	if err := c.repo.SaveUser(ctx, user); err != nil {
		c.ErrorMessage = err.Error()
		return
	}

	c.CurrentUser = &user
	c.IsLoggedIn = true
}

func (c *LoginController) completeLogin(ctx context.Context, result *domain.LoginResult, fallback string) {
	if !result.Success || result.User == nil {
		if result.Message != "" {
			c.ErrorMessage = result.Message
		} else {
			c.ErrorMessage = fallback
		}
		return
	}

	if err := c.repo.SaveUser(ctx, *result.User); err != nil {
		// Storage failures are surfaced, not swallowed.
		c.ErrorMessage = err.Error()
		return
	}

	c.CurrentUser = result.User
	c.Token = result.Token
	c.IsLoggedIn = true
}

func (c *LoginController) ToggleMode() {
	if c.Mode == LoginModePhone {
		c.Mode = LoginModeEmail
	} else {
		c.Mode = LoginModePhone
	}

	c.ErrorMessage = ""
}

// ResetOTP returns to the phone entry step without clearing the number.
func (c *LoginController) ResetOTP() {
	c.IsOTPSent = false
	c.OTP = ""
}

// Reset clears all transient login state. Called after the successful
// login has been navigated away from.
func (c *LoginController) Reset() {
	c.PhoneNumber = ""
	c.OTP = ""
	c.Email = ""
	c.Password = ""
	c.IsOTPSent = false
	c.IsLoading = false
	c.ErrorMessage = ""
	c.IsLoggedIn = false
}

package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/studyspot/booking-system/internal/domain"
	"github.com/studyspot/booking-system/internal/mocks"
)

type LoginControllerTestSuite struct {
	suite.Suite
	repo       *mocks.MockRepository
	controller *LoginController
}

func (s *LoginControllerTestSuite) SetupTest() {
	s.repo = new(mocks.MockRepository)
	s.controller = NewLoginController(s.repo)
}

func TestLoginControllerSuite(t *testing.T) {
	suite.Run(t, new(LoginControllerTestSuite))
}

func (s *LoginControllerTestSuite) TestSendOTP() {
	tests := []struct {
		name           string
		phone          string
		setupMocks     func()
		wantOTPSent    bool
		wantErrMessage string
	}{
		{
			name:           "should reject an empty phone number without calling the repository",
			phone:          "   ",
			wantErrMessage: "Please enter a phone number",
		},
		{
			name:  "should surface a delivery failure",
			phone: "+91 9876543210",
			setupMocks: func() {
				s.repo.On("SendOTP", mock.Anything, "+91 9876543210").Return(false, errors.New("gateway timeout"))
			},
			wantErrMessage: "Failed to send OTP. Please try again.",
		},
		{
			name:  "should mark the OTP as sent on success",
			phone: "+91 9876543210",
			setupMocks: func() {
				s.repo.On("SendOTP", mock.Anything, "+91 9876543210").Return(true, nil)
			},
			wantOTPSent: true,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.repo.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			s.controller.PhoneNumber = tt.phone
			s.controller.SendOTP(context.Background())

			s.Equal(tt.wantOTPSent, s.controller.IsOTPSent)
			s.Equal(tt.wantErrMessage, s.controller.ErrorMessage)
			s.False(s.controller.IsLoading)
		})
	}
}

func (s *LoginControllerTestSuite) TestVerifyOTP() {
	user := domain.NewUser("John Doe", "john@example.com", nil, nil)

	tests := []struct {
		name           string
		otp            string
		setupMocks     func()
		wantLoggedIn   bool
		wantErrMessage string
	}{
		{
			name:           "should reject an empty OTP without calling the repository",
			otp:            "",
			wantErrMessage: "Please enter the OTP",
		},
		{
			name: "should surface the backend rejection message",
			otp:  "0000",
			setupMocks: func() {
				s.repo.On("LoginWithOTP", mock.Anything, "+91 9876543210", "0000").Return(&domain.LoginResult{
					Success: false,
					Message: "Invalid OTP. Please try again.",
				}, nil)
			},
			wantErrMessage: "Invalid OTP. Please try again.",
		},
		{
			name: "should persist the user and log in on success",
			otp:  "123456",
			setupMocks: func() {
				s.repo.On("LoginWithOTP", mock.Anything, "+91 9876543210", "123456").Return(&domain.LoginResult{
					Success: true,
					User:    &user,
					Token:   "token-abc",
				}, nil)
				s.repo.On("SaveUser", mock.Anything, user).Return(nil)
			},
			wantLoggedIn: true,
		},
		{
			name: "should surface a storage failure instead of logging in",
			otp:  "123456",
			setupMocks: func() {
				s.repo.On("LoginWithOTP", mock.Anything, "+91 9876543210", "123456").Return(&domain.LoginResult{
					Success: true,
					User:    &user,
				}, nil)
				s.repo.On("SaveUser", mock.Anything, user).Return(errors.New("storage: disk full"))
			},
			wantErrMessage: "storage: disk full",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.repo.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			s.controller.PhoneNumber = "+91 9876543210"
			s.controller.OTP = tt.otp
			s.controller.VerifyOTP(context.Background())

			s.Equal(tt.wantLoggedIn, s.controller.IsLoggedIn)
			s.Equal(tt.wantErrMessage, s.controller.ErrorMessage)

			if tt.wantLoggedIn {
				s.Require().NotNil(s.controller.CurrentUser)
				s.Equal(user.ID, s.controller.CurrentUser.ID)
				s.Equal("token-abc", s.controller.Token)
			}
		})
	}
}

func (s *LoginControllerTestSuite) TestLoginWithEmail() {
	user := domain.NewUser("John Doe", "john@example.com", nil, nil)

	tests := []struct {
		name           string
		email          string
		password       string
		setupMocks     func()
		wantLoggedIn   bool
		wantErrMessage string
	}{
		{
			name:           "should require an email before a password",
			email:          "",
			password:       "",
			wantErrMessage: "Please enter your email",
		},
		{
			name:           "should require a password",
			email:          "john@example.com",
			password:       "",
			wantErrMessage: "Please enter your password",
		},
		{
			name:     "should log in on success",
			email:    "john@example.com",
			password: "hunter2hunter2",
			setupMocks: func() {
				s.repo.On("Login", mock.Anything, "john@example.com", "hunter2hunter2").Return(&domain.LoginResult{
					Success: true,
					User:    &user,
					Token:   "token-xyz",
				}, nil)
				s.repo.On("SaveUser", mock.Anything, user).Return(nil)
			},
			wantLoggedIn: true,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.repo.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			s.controller.Email = tt.email
			s.controller.Password = tt.password
			s.controller.LoginWithEmail(context.Background())

			s.Equal(tt.wantLoggedIn, s.controller.IsLoggedIn)
			s.Equal(tt.wantErrMessage, s.controller.ErrorMessage)
		})
	}
}

func (s *LoginControllerTestSuite) TestToggleModeClearsError() {
	s.controller.ErrorMessage = "Please enter a phone number"

	s.controller.ToggleMode()

	s.Equal(LoginModeEmail, s.controller.Mode)
	s.Empty(s.controller.ErrorMessage)

	s.controller.ToggleMode()

	s.Equal(LoginModePhone, s.controller.Mode)
}

func (s *LoginControllerTestSuite) TestResetOTPKeepsPhoneNumber() {
	s.controller.PhoneNumber = "+91 9876543210"
	s.controller.OTP = "123456"
	s.controller.IsOTPSent = true

	s.controller.ResetOTP()

	s.Equal("+91 9876543210", s.controller.PhoneNumber)
	s.Empty(s.controller.OTP)
	s.False(s.controller.IsOTPSent)
}

func (s *LoginControllerTestSuite) TestResetClearsTransientState() {
	s.controller.PhoneNumber = "+91 9876543210"
	s.controller.Email = "john@example.com"
	s.controller.Password = "hunter2hunter2"
	s.controller.IsOTPSent = true
	s.controller.IsLoggedIn = true

	s.controller.Reset()

	s.Empty(s.controller.PhoneNumber)
	s.Empty(s.controller.Email)
	s.Empty(s.controller.Password)
	s.False(s.controller.IsOTPSent)
	s.False(s.controller.IsLoggedIn)
}

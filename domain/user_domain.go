package domain

import (
	"errors"
)

var (
	MessageSuccessRegister      = "registration successful"
	MessageSuccessLogin         = "login successful"
	MessageSuccessLogout        = "logged out"
	MessageSuccessGetProfile    = "success get profile"
	MessageSuccessForgotRequest = "password reset email sent"
	MessageSuccessResetPassword = "password reset successful"

	MessageFailedRegister      = "Registration failed. Please try again."
	MessageFailedUsernameTaken = "Username already exists. Please choose another."
	MessageFailedLogin         = "Incorrect password. Try again."
	MessageFailedGetProfile    = "An error occurred while loading the profile page"
	MessageFailedForgotRequest = "failed to send password reset email"
	MessageFailedResetPassword = "failed to reset password"

	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrResetTokenInvalid  = errors.New("reset token invalid or expired")
	ErrNoResetEmail       = errors.New("no email address on account")
)

type (
	RegisterRequest struct {
		Username string `json:"username" form:"username" validate:"required"`
		Email    string `json:"email" form:"email" validate:"omitempty,email"`
		Password string `json:"password" form:"password" validate:"required"`
	}

	LoginRequest struct {
		Username string `json:"username" form:"username" validate:"required"`
		Password string `json:"password" form:"password" validate:"required"`
	}

	// ForgotPasswordRequest carries no email address. The reset link only
	// ever goes to the address stored on the account itself.
	ForgotPasswordRequest struct {
		Username string `json:"username" form:"username" validate:"required"`
	}

	ResetPasswordRequest struct {
		Token    string `json:"token" form:"token" validate:"required"`
		Password string `json:"password" form:"password" validate:"required"`
	}

	UserResponse struct {
		ID       string `json:"user_id"`
		Username string `json:"username"`
	}

	ProfileResponse struct {
		User      UserResponse       `json:"user"`
		Recipes   []Recipe           `json:"recipes"`
		Cookbooks []CookbookResponse `json:"cookbooks"`
	}
)

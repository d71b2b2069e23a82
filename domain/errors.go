package domain

import "errors"

// Validation errors, checked before any remote call
var (
	ErrMobileNumberRequired = errors.New("mobile number is required")
	ErrCodeRequired         = errors.New("verification code is required")
	ErrCredentialsRequired  = errors.New("username and password are required")
	ErrCategoryRequired     = errors.New("category is required")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAdminNotFound      = errors.New("admin account not found")
	ErrMemberNotFound     = errors.New("member not found")
)

// Verification code errors
var (
	ErrCodeExpired     = errors.New("verification code has expired")
	ErrCodeInvalid     = errors.New("invalid verification code")
	ErrCodeMaxAttempts = errors.New("maximum verification attempts exceeded")
	ErrCodeNotFound    = errors.New("verification code not found")
	ErrCodeResendLimit = errors.New("verification code resend limit exceeded")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Business rule violations
var (
	ErrClientNotRegistered  = errors.New("client is not registered")
	ErrAlreadyRegistered    = errors.New("already registered for this category")
	ErrRegistrationLimit    = errors.New("registration limit reached")
	ErrCategoryNotEligible  = errors.New("not eligible for this category")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrInvalidStatus        = errors.New("invalid registration status")
)

// Workflow errors
var (
	ErrOperationInFlight = errors.New("another operation is in flight")
	ErrNoVerifiedClient  = errors.New("no verified client in this flow")
)

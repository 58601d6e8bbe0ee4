package apperrors

import (
	"fmt"
	"net/http"
	"time"
)

// Predefined auth and account-status errors.

// ErrInvalidCredentials uses one message for both "no such account" and
// "wrong password" so the API does not leak which emails are registered.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

var ErrTokenRequired = New(
	CodeUnauthorized,
	"auth",
	"Authorization token required",
	http.StatusUnauthorized,
)

var ErrTokenExpired = New(
	CodeTokenExpired,
	"auth",
	"Token has expired",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid token",
	http.StatusUnauthorized,
)

var ErrAccountBlocked = New(
	CodeAccountBlocked,
	"auth",
	"Account blocked. Please contact support.",
	http.StatusForbidden,
)

// ErrAccountSuspended builds the suspension failure; when the suspension has a
// known end the message includes it, matching the login contract.
func ErrAccountSuspended(until *time.Time) *AppError {
	message := "Account suspended. Please contact support."
	if until != nil {
		message = fmt.Sprintf("%s Suspension ends on: %s", message, until.Format(time.RFC1123))
	}
	return New(CodeAccountSuspended, "auth", message, http.StatusForbidden)
}

// Accounts

var ErrAccountNotFound = New(
	CodeNotFound,
	"account",
	"Account not found",
	http.StatusNotFound,
)

var ErrDuplicateAccount = New(
	CodeAlreadyExists,
	"account",
	"An account with this email or phone number already exists",
	http.StatusConflict,
)

var ErrInvalidPlan = New(
	CodeValidationFailed,
	"account",
	"Invalid plan",
	http.StatusBadRequest,
)

var ErrInvalidSuspensionWindow = New(
	CodeValidationFailed,
	"account",
	"Invalid suspension dates",
	http.StatusBadRequest,
)

// Content

var ErrContentNotFound = New(
	CodeNotFound,
	"content",
	"Content not found",
	http.StatusNotFound,
)

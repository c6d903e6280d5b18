package errors

import (
	"net/http"

	"farmdesk/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyOnboarded = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_ONBOARDED",
		"User already belongs to a farm",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Failed to create user",
		"",
	)

	ErrUserUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_UPDATE_FAILED",
		"Failed to update user",
		"",
	)

	// Authentication-related errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Missing or invalid credentials",
		"",
	)

	ErrIdentityTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"IDENTITY_TOKEN_INVALID",
		"Invalid or expired identity token",
		"",
	)

	// Farm-related errors
	ErrFarmNotFound = NewBaseError(
		http.StatusNotFound,
		"FARM_NOT_FOUND",
		"Farm not found",
		"",
	)

	ErrNoFarm = NewBaseError(
		http.StatusForbidden,
		"NO_FARM",
		"Complete onboarding or accept an invitation first",
		"",
	)

	ErrFarmOwnerRequired = NewBaseError(
		http.StatusForbidden,
		"FARM_OWNER_REQUIRED",
		"Only the farm owner can perform this action",
		"",
	)

	ErrOwnerCannotLeave = NewBaseError(
		http.StatusConflict,
		"OWNER_CANNOT_LEAVE",
		"The farm owner cannot leave their own farm",
		"",
	)

	ErrStaffNotFound = NewBaseError(
		http.StatusNotFound,
		"STAFF_NOT_FOUND",
		"User is not a member of this farm",
		"",
	)

	// Field-related errors
	ErrFieldNotFound = NewBaseError(
		http.StatusNotFound,
		"FIELD_NOT_FOUND",
		"Field not found",
		"",
	)

	ErrInvalidBoundary = NewBaseError(
		http.StatusBadRequest,
		"INVALID_BOUNDARY",
		"Field boundary must be a valid GeoJSON polygon",
		"",
	)

	// Record-related errors
	ErrRecordNotFound = NewBaseError(
		http.StatusNotFound,
		"RECORD_NOT_FOUND",
		"Record not found",
		"",
	)

	ErrUnknownRecordKind = NewBaseError(
		http.StatusNotFound,
		"UNKNOWN_RECORD_KIND",
		"Unknown record kind",
		"",
	)

	// Invitation-related errors
	ErrInvitationNotFound = NewBaseError(
		http.StatusNotFound,
		"INVITATION_NOT_FOUND",
		"Invitation not found",
		"",
	)

	ErrInvitationNotPending = NewBaseError(
		http.StatusConflict,
		"INVITATION_NOT_PENDING",
		"Invitation has already been answered",
		"",
	)

	ErrInvitationDuplicate = NewBaseError(
		http.StatusConflict,
		"INVITATION_DUPLICATE",
		"A pending invitation already exists for this user",
		"",
	)

	ErrInviteeNotRegistered = NewBaseError(
		http.StatusNotFound,
		"INVITEE_NOT_REGISTERED",
		"No account is registered with this email",
		"",
	)

	ErrInviteeHasFarm = NewBaseError(
		http.StatusConflict,
		"INVITEE_HAS_FARM",
		"The invited user already belongs to a farm",
		"",
	)

	ErrCannotInviteSelf = NewBaseError(
		http.StatusBadRequest,
		"CANNOT_INVITE_SELF",
		"You cannot invite yourself",
		"",
	)

	// Notification-related errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	// Billing-related errors
	ErrUnknownPlan = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_PLAN",
		"Unknown subscription plan",
		"",
	)

	ErrBillingUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"BILLING_UNAVAILABLE",
		"Billing is not configured",
		"",
	)

	ErrWebhookSignature = NewBaseError(
		http.StatusBadRequest,
		"WEBHOOK_SIGNATURE_INVALID",
		"Webhook signature verification failed",
		"",
	)

	ErrSubscriptionRequired = NewBaseError(
		http.StatusPaymentRequired,
		"SUBSCRIPTION_REQUIRED",
		"An active subscription is required",
		"",
	)

	// Advisor-related errors
	ErrAdvisorUnavailable = NewBaseError(
		http.StatusBadGateway,
		"ADVISOR_UNAVAILABLE",
		"The advisor could not produce an answer",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

package errors

import (
	"net/http"

	"coderr/internal/errors"
)

// Kind classifies an error for callers that need to branch on it.
type Kind string

const (
	KindUnauthorized    Kind = "unauthorized"
	KindForbidden       Kind = "forbidden"
	KindValidation      Kind = "validation"
	KindNotFound        Kind = "not_found"
	KindDuplicateReview Kind = "duplicate_review"
	KindFatal           Kind = "fatal"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches on the error code so copies made by WithDetails still compare equal.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) Kind() Kind {
	return e.kind
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying field-level context.
func (e *BaseError) WithDetails(details string) *BaseError {
	cloned := *e
	cloned.details = details

	return &cloned
}

func unauthorized(code, message string) *BaseError {
	return NewBaseError(KindUnauthorized, http.StatusUnauthorized, code, message)
}

func forbidden(code, message string) *BaseError {
	return NewBaseError(KindForbidden, http.StatusForbidden, code, message)
}

func validation(code, message string) *BaseError {
	return NewBaseError(KindValidation, http.StatusBadRequest, code, message)
}

func notFound(code, message string) *BaseError {
	return NewBaseError(KindNotFound, http.StatusNotFound, code, message)
}

// Authentication
var (
	ErrUnauthorized       = unauthorized("UNAUTHORIZED", "Authentication credentials were not provided.")
	ErrInvalidToken       = unauthorized("INVALID_TOKEN", "Invalid or expired token.")
	ErrInvalidCredentials = unauthorized("INVALID_CREDENTIALS", "Invalid username or password.")
)

// Authorization. Every denial names the violated rule.
var (
	ErrForbidden           = forbidden("FORBIDDEN", "You do not have permission to perform this action.")
	ErrNotBusinessUser     = forbidden("NOT_BUSINESS_USER", "Only business users can perform this action.")
	ErrNotCustomerUser     = forbidden("NOT_CUSTOMER_USER", "Only customer users can perform this action.")
	ErrNotStaff            = forbidden("NOT_STAFF", "Only staff members can delete orders.")
	ErrNotOfferOwner       = forbidden("NOT_OFFER_OWNER", "Only the owner of this offer can modify it.")
	ErrNotOrderBusiness    = forbidden("NOT_ORDER_BUSINESS", "Only the business user of this order can update its status.")
	ErrNotOrderParticipant = forbidden("NOT_ORDER_PARTICIPANT", "Only the customer, the business user or staff can view this order.")
	ErrNotReviewer         = forbidden("NOT_REVIEWER", "Only the author of this review can modify it.")
	ErrNotProfileOwner     = forbidden("NOT_PROFILE_OWNER", "You can only edit your own profile.")
	ErrUnknownPermission   = forbidden("UNKNOWN_PERMISSION", "No permission rule exists for this action.")
)

// Validation
var (
	ErrValidationFailed        = validation("VALIDATION_FAILED", "Input validation failed.")
	ErrInvalidID               = validation("INVALID_ID", "Identifier must be a positive integer.")
	ErrInvalidOfferType        = validation("INVALID_OFFER_TYPE", "offer_type must be one of basic, standard or premium.")
	ErrInvalidOfferDetails     = validation("INVALID_OFFER_DETAILS", "details must be a list of offer details.")
	ErrDuplicateOfferType      = validation("DUPLICATE_OFFER_TYPE", "Each offer_type may appear only once per offer.")
	ErrInvalidRevisions        = validation("INVALID_REVISIONS", "revisions must not be negative.")
	ErrInvalidPrice            = validation("INVALID_PRICE", "price must not be negative.")
	ErrInvalidDeliveryTime     = validation("INVALID_DELIVERY_TIME", "delivery_time_in_days must not be negative.")
	ErrInvalidRating           = validation("INVALID_RATING", "rating must be an integer between 1 and 5.")
	ErrInvalidOrderStatus      = validation("INVALID_ORDER_STATUS", "status must be one of in_progress, completed or cancelled.")
	ErrOrderStatusTerminal     = validation("ORDER_STATUS_TERMINAL", "Completed or cancelled orders cannot change status.")
	ErrOfferDetailIDRequired   = validation("OFFER_DETAIL_ID_REQUIRED", "offer_detail_id is required.")
	ErrInvalidFilter           = validation("INVALID_FILTER", "Invalid filter value.")
	ErrInvalidOrdering         = validation("INVALID_ORDERING", "Invalid ordering field.")
	ErrInvalidWorkingHours     = validation("INVALID_WORKING_HOURS", "working_hours must look like 8-17.")
	ErrPasswordsDoNotMatch     = validation("PASSWORDS_DO_NOT_MATCH", "Passwords do not match.")
	ErrUsernameTaken           = validation("USERNAME_TAKEN", "This username is already taken.")
	ErrReservedUsername        = validation("RESERVED_USERNAME", "Usernames starting with guest_ are reserved.")
	ErrInvalidRole             = validation("INVALID_ROLE", "type must be customer or business.")
	ErrReviewTargetNotBusiness = validation("REVIEW_TARGET_NOT_BUSINESS", "Reviews can only be written for business profiles.")
)

// ErrDuplicateReview is kept apart from validation failures so clients can special-case it.
var ErrDuplicateReview = NewBaseError(
	KindDuplicateReview,
	http.StatusBadRequest,
	"DUPLICATE_REVIEW",
	"You have already reviewed this business profile.",
)

// Missing resources
var (
	ErrNotFound            = notFound("NOT_FOUND", "The requested resource was not found.")
	ErrProfileNotFound     = notFound("PROFILE_NOT_FOUND", "Profile not found.")
	ErrOfferNotFound       = notFound("OFFER_NOT_FOUND", "Offer not found.")
	ErrOfferDetailNotFound = notFound("OFFER_DETAIL_NOT_FOUND", "Offer detail not found.")
	ErrOrderNotFound       = notFound("ORDER_NOT_FOUND", "Order not found.")
	ErrReviewNotFound      = notFound("REVIEW_NOT_FOUND", "Review not found.")
)

// Infrastructure
var (
	ErrInternalError = NewBaseError(KindFatal, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error.")
	ErrTokenIssue    = NewBaseError(KindFatal, http.StatusInternalServerError, "TOKEN_ISSUE_FAILED", "Could not issue an access token.")
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

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed: "+e.details).Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) Kind() Kind {
	return KindFatal
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed."
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// KindOf reports the kind of the first AppError in err's chain; anything else is fatal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindFatal
}

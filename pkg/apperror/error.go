package apperror

import (
	"errors"
	"net/http"
)

// Stable error identifiers returned to clients in the error envelope.
const (
	ReasonBadRequest     = "BAD_REQUEST"
	ReasonValidation     = "VALIDATION_FAILED"
	ReasonUnauthorized   = "UNAUTHORIZED"
	ReasonForbidden      = "FORBIDDEN"
	ReasonNotFound       = "NOT_FOUND"
	ReasonConflict       = "CONFLICT"
	ReasonDuplicateSwipe = "DUPLICATE_SWIPE"
	ReasonInvalidState   = "INVALID_STATE"
	ReasonMatchInactive  = "MATCH_INACTIVE"
	ReasonRateLimited    = "RATE_LIMITED"
	ReasonInternal       = "INTERNAL"
)

type AppError struct {
	Code    int    `json:"code"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *AppError with the same reason, so callers can
// write errors.Is(err, apperror.ErrDuplicateSwipe).
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Reason != "" && t.Reason == e.Reason
}

// Sentinels for errors.Is comparisons.
var (
	ErrValidation     = &AppError{Reason: ReasonValidation}
	ErrForbidden      = &AppError{Reason: ReasonForbidden}
	ErrNotFound       = &AppError{Reason: ReasonNotFound}
	ErrDuplicateSwipe = &AppError{Reason: ReasonDuplicateSwipe}
	ErrInvalidState   = &AppError{Reason: ReasonInvalidState}
	ErrMatchInactive  = &AppError{Reason: ReasonMatchInactive}
	ErrInternal       = &AppError{Reason: ReasonInternal}
)

func New(code int, reason, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Reason:  reason,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, ReasonBadRequest, message, nil)
}

func Validation(message string) *AppError {
	return New(http.StatusBadRequest, ReasonValidation, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, ReasonUnauthorized, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, ReasonForbidden, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, ReasonNotFound, message, nil)
}

func Conflict(message string) *AppError {
	return New(http.StatusConflict, ReasonConflict, message, nil)
}

func DuplicateSwipe(message string) *AppError {
	return New(http.StatusConflict, ReasonDuplicateSwipe, message, nil)
}

func InvalidState(message string) *AppError {
	return New(http.StatusBadRequest, ReasonInvalidState, message, nil)
}

// MatchInactive is the InvalidState variant for messaging on an unmatched pair.
func MatchInactive(message string) *AppError {
	return New(http.StatusBadRequest, ReasonMatchInactive, message, nil)
}

func TooManyRequests(message string) *AppError {
	return New(http.StatusTooManyRequests, ReasonRateLimited, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, ReasonInternal, "Internal Server Error", err)
}

// ReasonOf returns the stable reason of err, or ReasonInternal for foreign errors.
func ReasonOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Reason
	}
	return ReasonInternal
}

// IsInvalidState matches both the generic and the match-inactive variant.
func IsInvalidState(err error) bool {
	return errors.Is(err, ErrInvalidState) || errors.Is(err, ErrMatchInactive)
}

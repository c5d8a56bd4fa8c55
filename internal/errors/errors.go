package errors

import (
	"errors"
	"net/http"
)

// Sentinel errors double as the API-visible messages, so their text
// matches what the admin dashboard and public form display.
var (
	// ErrInvalidCredentials is returned for unknown accounts, non-admin
	// accounts and wrong passwords alike, to avoid existence disclosure.
	ErrInvalidCredentials = errors.New("Invalid admin credentials")
	// ErrPasswordNotSet is returned when the admin row has no password hash.
	ErrPasswordNotSet = errors.New("Admin password not set")
	// ErrCurrentPasswordWrong is returned when re-verification fails on password change.
	ErrCurrentPasswordWrong = errors.New("Current password is incorrect")
	// ErrPasswordTooShort is returned when a new password is under 8 characters.
	ErrPasswordTooShort = errors.New("Password must be at least 8 characters long")
	// ErrAdminNotFound is returned for reset attempts against missing or
	// non-admin accounts; one message for both cases.
	ErrAdminNotFound = errors.New("Admin user not found")
	// ErrUserNotFound is returned when a valid token no longer maps to a row.
	ErrUserNotFound = errors.New("User not found")
	// ErrInvalidResetCode is returned when a reset code is wrong, consumed or expired.
	ErrInvalidResetCode = errors.New("Invalid or expired verification code")
	// ErrResetCodeSendFailed is returned when the email provider rejects the code.
	ErrResetCodeSendFailed = errors.New("Failed to send reset code")
	// ErrTestimonialNotFound is returned when a moderation target id does not exist.
	ErrTestimonialNotFound = errors.New("Testimonial not found")
	// ErrNameRequired is returned for empty or whitespace-only submission names.
	ErrNameRequired = errors.New("Name is required")
	// ErrQuoteRequired is returned for empty or whitespace-only quotes.
	ErrQuoteRequired = errors.New("Quote is required")
	// ErrEmptyImageURL is returned when an image update carries an empty string.
	ErrEmptyImageURL = errors.New("Image URL must be null to clear, not empty")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors
// become a generic 500 so upstream failure detail never reaches clients.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case ErrPasswordNotSet:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "PASSWORD_NOT_SET")
	case ErrCurrentPasswordWrong:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "CURRENT_PASSWORD_INCORRECT")
	case ErrAdminNotFound:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "ADMIN_NOT_FOUND")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "USER_NOT_FOUND")
	case ErrInvalidResetCode:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_RESET_CODE")
	case ErrPasswordTooShort:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PASSWORD_TOO_SHORT")
	case ErrNameRequired:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NAME_REQUIRED")
	case ErrQuoteRequired:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "QUOTE_REQUIRED")
	case ErrEmptyImageURL:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_IMAGE_URL")
	case ErrTestimonialNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "TESTIMONIAL_NOT_FOUND")
	case ErrResetCodeSendFailed:
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "RESET_CODE_SEND_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

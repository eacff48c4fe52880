package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes
const (
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeInvalidInput       = "INVALID_INPUT"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeConflict           = "CONFLICT"
	ErrCodeRateLimited        = "RATE_LIMITED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// APIError is the JSON envelope of every error response.
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

func NewAPIError(code, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
	}
}

func NewAPIErrorWithDetails(code, message string, details interface{}) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// RespondWithError writes err and aborts the remaining handler chain.
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	c.AbortWithStatusJSON(statusCode, err)
}

func respond(c *gin.Context, status int, code, message, fallback string) {
	if message == "" {
		message = fallback
	}
	RespondWithError(c, status, NewAPIError(code, message))
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	respond(c, http.StatusUnauthorized, ErrCodeUnauthorized, message, "Authentication required")
}

// InvalidCredentials sends a 401 response for a failed login.
func InvalidCredentials(c *gin.Context) {
	respond(c, http.StatusUnauthorized, ErrCodeInvalidCredentials, "", "Invalid email or password")
}

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, message string) {
	respond(c, http.StatusForbidden, ErrCodeForbidden, message, "Access denied")
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	respond(c, http.StatusNotFound, ErrCodeNotFound, message, "Resource not found")
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	respond(c, http.StatusBadRequest, ErrCodeInvalidInput, message, "Invalid request")
}

// BadRequestWithDetails sends a 400 response with details
func BadRequestWithDetails(c *gin.Context, message string, details interface{}) {
	RespondWithError(c, http.StatusBadRequest, NewAPIErrorWithDetails(ErrCodeInvalidInput, message, details))
}

// Conflict sends a 409 response
func Conflict(c *gin.Context, message string) {
	respond(c, http.StatusConflict, ErrCodeConflict, message, "Resource conflict")
}

// TooManyRequests sends a 429 response
func TooManyRequests(c *gin.Context, message string) {
	respond(c, http.StatusTooManyRequests, ErrCodeRateLimited, message, "Too many requests, please try again later")
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	respond(c, http.StatusInternalServerError, ErrCodeInternalError, message, "Internal server error")
}

// ServiceUnavailable sends a 503 response
func ServiceUnavailable(c *gin.Context, message string) {
	respond(c, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, message, "Service temporarily unavailable")
}

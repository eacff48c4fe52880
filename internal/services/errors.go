package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/contest-tracker/internal/constants"
)

// Error taxonomy. Handlers map these onto HTTP statuses with errors.Is;
// the specific errors below wrap exactly one of them.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict or store failure")
)

var (
	ErrContestNotFound       = fmt.Errorf("contest not found: %w", ErrNotFound)
	ErrSolutionNotFound      = fmt.Errorf("solution not found: %w", ErrNotFound)
	ErrUserNotFound          = fmt.Errorf("user not found: %w", ErrNotFound)
	ErrNotContestCreator     = fmt.Errorf("only the contest creator can perform this action: %w", ErrForbidden)
	ErrContestDeleteConflict = fmt.Errorf("contest was not deleted: %w", ErrConflict)
	ErrEmailTaken            = fmt.Errorf("email already registered: %w", ErrConflict)
	ErrInvalidCredentials    = fmt.Errorf("invalid email or password: %w", ErrUnauthorized)
	ErrIncorrectPassword     = fmt.Errorf("current password is incorrect: %w", ErrInvalidInput)
	ErrInvalidLink           = fmt.Errorf("link must be an absolute http(s) URL: %w", ErrInvalidInput)
	ErrInvalidWebsite        = fmt.Errorf("website must be an absolute http(s) URL: %w", ErrInvalidInput)
	ErrInvalidSchedule       = fmt.Errorf("start_date must be before end_date: %w", ErrInvalidInput)
	ErrInvalidStatusFilter   = fmt.Errorf("status must be one of upcoming, ongoing, completed or all: %w", ErrInvalidInput)
	ErrPasswordTooShort      = fmt.Errorf("password too short: %w", ErrInvalidInput)
	ErrPasswordTooLong       = fmt.Errorf("password must be at most %d bytes: %w", constants.MaxPasswordLength, ErrInvalidInput)

	ErrAIServiceNotConfigured = errors.New("AI service is not configured")
	ErrAINoDraft              = errors.New("AI did not return a contest draft")
)

// requiredField builds the InvalidInput error for a missing field.
func requiredField(name string) error {
	return fmt.Errorf("%s is required: %w", name, ErrInvalidInput)
}

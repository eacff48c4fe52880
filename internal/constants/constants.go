package constants

import "time"

// Context and session keys
const (
	ContextKeyUserID    = "user_id"
	ContextKeyRequestID = "request_id"

	SessionCookieName     = "contest_session"
	SessionKeyCallbackURL = "callback_url"
)

// Credential cookies. AuthTokenCookie wins when both are present.
const (
	AuthTokenCookie   = "AUTH_TOKEN"
	LegacyTokenCookie = "token"
	DefaultTokenTTL   = 7 * 24 * time.Hour
)

// Pagination
const (
	MinPageSize             = 1
	MaxPageSize             = 100
	DefaultPageSize         = 10
	ContestPageSize         = 9
	SolutionPageSize        = 10
	DefaultUpcomingContests = 6
)

// Filter value meaning "no filter" for platform, category and status.
const FilterAll = "all"

// Accounts
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72 // bcrypt input limit in bytes
	MaxNameLength     = 100
)

// Contest draft extraction
const MaxDraftTextLength = 8000

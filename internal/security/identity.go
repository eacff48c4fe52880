package security

import (
	"net/http"
	"strings"

	"github.com/yukikurage/contest-tracker/internal/constants"
)

// IdentityResolver extracts the current user id from an incoming request.
type IdentityResolver struct {
	tokens *TokenManager
}

func NewIdentityResolver(tokens *TokenManager) *IdentityResolver {
	return &IdentityResolver{tokens: tokens}
}

// Resolve returns the user id carried by the request credential.
// It reports false for a missing, malformed, wrongly signed or expired
// credential and never returns an error.
func (r *IdentityResolver) Resolve(req *http.Request) (uint64, bool) {
	raw := TokenFromRequest(req)
	if raw == "" {
		return 0, false
	}

	claims, err := r.tokens.Parse(raw)
	if err != nil {
		return 0, false
	}

	id, err := claims.NumericUserID()
	if err != nil {
		return 0, false
	}
	return id, true
}

// TokenFromRequest picks the credential from the AUTH_TOKEN cookie, then the
// legacy token cookie, then an Authorization bearer header.
func TokenFromRequest(req *http.Request) string {
	for _, name := range []string{constants.AuthTokenCookie, constants.LegacyTokenCookie} {
		if cookie, err := req.Cookie(name); err == nil && cookie.Value != "" {
			return cookie.Value
		}
	}

	header := req.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

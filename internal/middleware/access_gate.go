package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/contest-tracker/internal/constants"
)

const (
	loginPath    = "/auth/login"
	registerPath = "/auth/register"
)

// GateDecision is what the access gate does with a page request.
type GateDecision int

const (
	GatePass GateDecision = iota
	GateRedirectLogin
	GateRedirectHome
)

// IsGatedPath reports whether the access gate inspects the path at all.
func IsGatedPath(path string) bool {
	switch {
	case matchesPrefix(path, "/profile"),
		matchesPrefix(path, "/bookmarks"),
		matchesPrefix(path, "/solutions"),
		matchesPrefix(path, "/auth"),
		path == "/contests/new":
		return true
	}

	// /contests/:id/edit
	if rest, ok := strings.CutPrefix(path, "/contests/"); ok {
		id, tail, found := strings.Cut(rest, "/")
		return found && id != "" && tail == "edit"
	}
	return false
}

// IsPublicPath reports whether a page is reachable without signing in.
func IsPublicPath(path string) bool {
	switch {
	case path == "/", path == loginPath, path == registerPath:
		return true
	case strings.HasPrefix(path, "/api/auth"):
		return true
	case strings.HasPrefix(path, "/contests"):
		return !strings.Contains(path, "/new") && !strings.Contains(path, "/edit")
	}
	return false
}

// ClassifyPath decides how the gate treats a page request. A trailing slash
// does not change the decision.
func ClassifyPath(path string, authenticated bool) GateDecision {
	path = trimTrailingSlash(path)
	if !IsGatedPath(path) {
		return GatePass
	}
	if !authenticated && !IsPublicPath(path) {
		return GateRedirectLogin
	}
	if authenticated && (path == loginPath || path == registerPath) {
		return GateRedirectHome
	}
	return GatePass
}

// LoginRedirectURL is the sign-in page remembering where to return.
func LoginRedirectURL(callback string) string {
	return loginPath + "?callbackUrl=" + url.QueryEscape(callback)
}

// AccessGate redirects anonymous visitors away from protected pages and
// signed-in users away from the sign-in pages. The requested path is kept in
// the session so login can send the user back.
func AccessGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		_, authenticated := GetUserID(c)

		switch ClassifyPath(path, authenticated) {
		case GateRedirectLogin:
			session := sessions.Default(c)
			session.Set(constants.SessionKeyCallbackURL, path)
			if err := session.Save(); err != nil {
				slog.WarnContext(c.Request.Context(), "failed to store login callback", "error", err)
			}
			c.Redirect(http.StatusFound, LoginRedirectURL(path))
			c.Abort()
		case GateRedirectHome:
			c.Redirect(http.StatusFound, "/")
			c.Abort()
		default:
			c.Next()
		}
	}
}

// TakeCallbackURL removes and returns the stored post-login destination,
// defaulting to "/". Only same-site absolute paths are honored.
func TakeCallbackURL(c *gin.Context) string {
	session := sessions.Default(c)
	value, _ := session.Get(constants.SessionKeyCallbackURL).(string)
	if value == "" {
		return "/"
	}

	session.Delete(constants.SessionKeyCallbackURL)
	if err := session.Save(); err != nil {
		slog.WarnContext(c.Request.Context(), "failed to clear login callback", "error", err)
	}

	if !strings.HasPrefix(value, "/") || strings.HasPrefix(value, "//") {
		return "/"
	}
	return value
}

func trimTrailingSlash(path string) string {
	if len(path) > 1 {
		return strings.TrimRight(path, "/")
	}
	return path
}

func matchesPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

package handlers

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/contest-tracker/internal/errors"
	"github.com/yukikurage/contest-tracker/internal/services"
)

// respondServiceError maps a service error onto the API error envelope.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c)
	case errors.Is(err, services.ErrUnauthorized):
		apierrors.Unauthorized(c, "")
	case errors.Is(err, services.ErrForbidden):
		apierrors.Forbidden(c, message(err, services.ErrForbidden))
	case errors.Is(err, services.ErrNotFound):
		apierrors.NotFound(c, message(err, services.ErrNotFound))
	case errors.Is(err, services.ErrInvalidInput):
		apierrors.BadRequest(c, message(err, services.ErrInvalidInput))
	case errors.Is(err, services.ErrConflict):
		apierrors.Conflict(c, message(err, services.ErrConflict))
	case errors.Is(err, services.ErrAIServiceNotConfigured):
		apierrors.ServiceUnavailable(c, "Contest draft extraction is not configured")
	case errors.Is(err, services.ErrAINoDraft):
		apierrors.BadRequest(c, "No contest could be extracted from the text")
	default:
		slog.ErrorContext(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
		_ = c.Error(err)
		apierrors.InternalError(c, "")
	}
}

// message strips the taxonomy suffix from a wrapped sentinel's text.
func message(err, sentinel error) string {
	return strings.TrimSuffix(err.Error(), ": "+sentinel.Error())
}

// parseIDParam reads a positive numeric path parameter. It writes a 400 and
// returns false when the value is not one.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		apierrors.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}

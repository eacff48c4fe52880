package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/contest-tracker/internal/dto"
	"github.com/yukikurage/contest-tracker/internal/middleware"
	"github.com/yukikurage/contest-tracker/internal/services"
)

type BookmarkHandler struct {
	bookmarkService *services.BookmarkService
}

func NewBookmarkHandler(bookmarkService *services.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{
		bookmarkService: bookmarkService,
	}
}

// ToggleBookmark flips the current user's bookmark on a contest
func (h *BookmarkHandler) ToggleBookmark(c *gin.Context) {
	contestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	bookmarked, err := h.bookmarkService.Toggle(c.Request.Context(), contestID, middleware.ViewerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contest_id":    contestID,
		"is_bookmarked": bookmarked,
	})
}

// ListBookmarks returns the current user's bookmarked contests
func (h *BookmarkHandler) ListBookmarks(c *gin.Context) {
	views, err := h.bookmarkService.ListForUser(c.Request.Context(), middleware.ViewerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contests": dto.ToContestDTOs(views),
	})
}

package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/contest-tracker/internal/constants"
	"github.com/yukikurage/contest-tracker/internal/dto"
	apierrors "github.com/yukikurage/contest-tracker/internal/errors"
	"github.com/yukikurage/contest-tracker/internal/middleware"
	"github.com/yukikurage/contest-tracker/internal/services"
	"github.com/yukikurage/contest-tracker/internal/utils"
)

type ContestHandler struct {
	contestService *services.ContestService
}

func NewContestHandler(contestService *services.ContestService) *ContestHandler {
	return &ContestHandler{
		contestService: contestService,
	}
}

// ListContests returns one page of contests.
// Filters: platform, category, status (upcoming, ongoing, completed or all)
func (h *ContestHandler) ListContests(c *gin.Context) {
	params := utils.GetPaginationParams(c, constants.ContestPageSize)

	page, err := h.contestService.List(c.Request.Context(), services.ListContestsInput{
		Platform: c.Query("platform"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Page:     params.Page,
		PageSize: params.Limit,
		ViewerID: middleware.ViewerID(c),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToContestListResponse(page))
}

// ListUpcoming returns the next contests to start, soonest first.
func (h *ContestHandler) ListUpcoming(c *gin.Context) {
	limit := constants.DefaultUpcomingContests
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > constants.MaxPageSize {
			apierrors.BadRequest(c, "Invalid limit")
			return
		}
		limit = n
	}

	views, err := h.contestService.ListUpcoming(c.Request.Context(), limit, middleware.ViewerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contests": dto.ToContestDTOs(views),
	})
}

// GetContest returns a contest with the viewer's bookmark and solution.
func (h *ContestHandler) GetContest(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.contestService.GetByID(c.Request.Context(), id, middleware.ViewerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if view == nil {
		apierrors.NotFound(c, "Contest not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToContestDetailDTO(*view))
}

// CreateContest stores a contest owned by the current user.
func (h *ContestHandler) CreateContest(c *gin.Context) {
	type CreateContestRequest struct {
		Title       string    `json:"title"`
		Platform    string    `json:"platform"`
		Category    string    `json:"category"`
		Description string    `json:"description"`
		Rules       *string   `json:"rules"`
		Prizes      *string   `json:"prizes"`
		Website     *string   `json:"website"`
		StartDate   time.Time `json:"start_date"`
		EndDate     time.Time `json:"end_date"`
		Duration    *string   `json:"duration"`
	}

	var req CreateContestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.contestService.Create(c.Request.Context(), services.CreateContestInput{
		Title:       req.Title,
		Platform:    req.Platform,
		Category:    req.Category,
		Description: req.Description,
		Rules:       req.Rules,
		Prizes:      req.Prizes,
		Website:     req.Website,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Duration:    req.Duration,
	}, middleware.ViewerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToContestDetailDTO(*view))
}

// UpdateContest applies a partial update. Only the creator may edit.
func (h *ContestHandler) UpdateContest(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type UpdateContestRequest struct {
		Title       *string    `json:"title"`
		Platform    *string    `json:"platform"`
		Category    *string    `json:"category"`
		Description *string    `json:"description"`
		Rules       *string    `json:"rules"`
		Prizes      *string    `json:"prizes"`
		Website     *string    `json:"website"`
		StartDate   *time.Time `json:"start_date"`
		EndDate     *time.Time `json:"end_date"`
		Duration    *string    `json:"duration"`
	}

	var req UpdateContestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.contestService.Update(c.Request.Context(), id, services.UpdateContestInput{
		Title:       req.Title,
		Platform:    req.Platform,
		Category:    req.Category,
		Description: req.Description,
		Rules:       req.Rules,
		Prizes:      req.Prizes,
		Website:     req.Website,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Duration:    req.Duration,
	}, middleware.ViewerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToContestDetailDTO(*view))
}

// DeleteContest removes a contest with its bookmarks and solutions.
func (h *ContestHandler) DeleteContest(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.contestService.Delete(c.Request.Context(), id, middleware.ViewerID(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Contest deleted successfully",
	})
}

// DraftContest suggests contest fields from pasted announcement text.
// Nothing is stored.
func (h *ContestHandler) DraftContest(c *gin.Context) {
	type DraftRequest struct {
		Text string `json:"text" binding:"required"`
	}

	var req DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	draft, err := h.contestService.DraftFromText(c.Request.Context(), req.Text, middleware.ViewerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToContestDraftDTO(*draft))
}

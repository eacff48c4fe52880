package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/contest-tracker/internal/constants"
	"github.com/yukikurage/contest-tracker/internal/dto"
	apierrors "github.com/yukikurage/contest-tracker/internal/errors"
	"github.com/yukikurage/contest-tracker/internal/middleware"
	"github.com/yukikurage/contest-tracker/internal/services"
	"github.com/yukikurage/contest-tracker/internal/utils"
)

type SolutionHandler struct {
	solutionService *services.SolutionService
}

func NewSolutionHandler(solutionService *services.SolutionService) *SolutionHandler {
	return &SolutionHandler{
		solutionService: solutionService,
	}
}

// SaveSolution creates or replaces the current user's solution for a contest
func (h *SolutionHandler) SaveSolution(c *gin.Context) {
	contestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type SaveSolutionRequest struct {
		Link  string  `json:"link"`
		Notes *string `json:"notes"`
	}

	var req SaveSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	solution, err := h.solutionService.Save(c.Request.Context(), contestID, services.SaveSolutionInput{
		Link:  req.Link,
		Notes: req.Notes,
	}, middleware.ViewerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSolutionDTO(*solution))
}

// DeleteSolution removes the current user's solution for a contest
func (h *SolutionHandler) DeleteSolution(c *gin.Context) {
	contestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.solutionService.Delete(c.Request.Context(), contestID, middleware.ViewerID(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Solution deleted successfully",
	})
}

// ListContestSolutions returns one page of everyone's solutions for a contest
func (h *SolutionHandler) ListContestSolutions(c *gin.Context) {
	contestID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c, constants.SolutionPageSize)
	page, err := h.solutionService.ListForContest(c.Request.Context(), contestID, params.Page, params.Limit, middleware.ViewerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToContestSolutionListResponse(page))
}

// ListMySolutions returns the current user's solutions, most recently updated first
func (h *SolutionHandler) ListMySolutions(c *gin.Context) {
	views, err := h.solutionService.ListForUser(c.Request.Context(), middleware.ViewerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"solutions": dto.ToUserSolutionDTOs(views),
	})
}

package dto

import (
	"time"

	"github.com/yukikurage/contest-tracker/internal/models"
	"github.com/yukikurage/contest-tracker/internal/services"
)

// ContestDTO represents a contest in API responses
type ContestDTO struct {
	ID           uint64               `json:"id"`
	Title        string               `json:"title"`
	Platform     string               `json:"platform"`
	Category     string               `json:"category"`
	Description  string               `json:"description"`
	Rules        *string              `json:"rules"`
	Prizes       *string              `json:"prizes"`
	Website      *string              `json:"website"`
	StartDate    time.Time            `json:"start_date"`
	EndDate      time.Time            `json:"end_date"`
	Duration     string               `json:"duration"`
	Status       models.ContestStatus `json:"status"`
	CreatedBy    CreatorDTO           `json:"created_by"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
	IsBookmarked bool                 `json:"is_bookmarked"`
	CanEdit      bool                 `json:"can_edit"`
}

// ContestDetailDTO adds the viewer's own solution to a contest
type ContestDetailDTO struct {
	ContestDTO
	UserSolution *SolutionDTO `json:"user_solution"`
}

// ContestListResponse represents a paginated list of contests
type ContestListResponse struct {
	Contests   []ContestDTO `json:"contests"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	TotalCount int64        `json:"total_count"`
	TotalPages int          `json:"total_pages"`
}

// ContestDraftDTO is an unsaved contest suggested from free text
type ContestDraftDTO struct {
	Title       string     `json:"title"`
	Platform    string     `json:"platform"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Website     string     `json:"website"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// ToContestDTO converts a contest view to ContestDTO
func ToContestDTO(view services.ContestView) ContestDTO {
	c := view.Contest
	return ContestDTO{
		ID:          c.ID,
		Title:       c.Title,
		Platform:    c.Platform,
		Category:    c.Category,
		Description: c.Description,
		Rules:       c.Rules,
		Prizes:      c.Prizes,
		Website:     c.Website,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		Duration:    view.Duration,
		Status:      view.Status,
		CreatedBy: CreatorDTO{
			ID:   c.Creator.ID,
			Name: c.Creator.Name,
		},
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
		IsBookmarked: view.IsBookmarked,
		CanEdit:      view.CanEdit,
	}
}

// ToContestDetailDTO converts a contest view including the viewer's solution
func ToContestDetailDTO(view services.ContestView) ContestDetailDTO {
	detail := ContestDetailDTO{ContestDTO: ToContestDTO(view)}
	if view.UserSolution != nil {
		solution := ToSolutionDTO(*view.UserSolution)
		detail.UserSolution = &solution
	}
	return detail
}

// ToContestDTOs converts a slice of contest views
func ToContestDTOs(views []services.ContestView) []ContestDTO {
	items := make([]ContestDTO, len(views))
	for i, view := range views {
		items[i] = ToContestDTO(view)
	}
	return items
}

// ToContestListResponse converts a page of contests to ContestListResponse
func ToContestListResponse(page *services.ContestPage) ContestListResponse {
	return ContestListResponse{
		Contests:   ToContestDTOs(page.Items),
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalCount: page.Total,
		TotalPages: page.TotalPages,
	}
}

func ToContestDraftDTO(draft services.ContestDraft) ContestDraftDTO {
	return ContestDraftDTO{
		Title:       draft.Title,
		Platform:    draft.Platform,
		Category:    draft.Category,
		Description: draft.Description,
		Website:     draft.Website,
		StartDate:   draft.StartDate,
		EndDate:     draft.EndDate,
	}
}

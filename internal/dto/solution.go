package dto

import (
	"time"

	"github.com/yukikurage/contest-tracker/internal/models"
	"github.com/yukikurage/contest-tracker/internal/services"
)

// SolutionDTO represents a solution in API responses
type SolutionDTO struct {
	ID        uint64    `json:"id"`
	ContestID uint64    `json:"contest_id"`
	UserID    uint64    `json:"user_id"`
	Link      string    `json:"link"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SolutionContestDTO is the contest summary attached to a user's solution
type SolutionContestDTO struct {
	ID        uint64               `json:"id"`
	Title     string               `json:"title"`
	Platform  string               `json:"platform"`
	StartDate time.Time            `json:"start_date"`
	EndDate   time.Time            `json:"end_date"`
	Status    models.ContestStatus `json:"status"`
}

// UserSolutionDTO is an entry of the current user's solution list
type UserSolutionDTO struct {
	SolutionDTO
	Contest SolutionContestDTO `json:"contest"`
}

// ContestSolutionDTO is an entry of a contest's solution list
type ContestSolutionDTO struct {
	SolutionDTO
	User    SubmitterDTO `json:"user"`
	IsOwner bool         `json:"is_owner"`
}

// ContestSolutionListResponse represents a paginated list of a contest's solutions
type ContestSolutionListResponse struct {
	Solutions  []ContestSolutionDTO `json:"solutions"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	TotalCount int64                `json:"total_count"`
	TotalPages int                  `json:"total_pages"`
}

func ToSolutionDTO(solution models.Solution) SolutionDTO {
	return SolutionDTO{
		ID:        solution.ID,
		ContestID: solution.ContestID,
		UserID:    solution.UserID,
		Link:      solution.Link,
		Notes:     solution.Notes,
		CreatedAt: solution.CreatedAt,
		UpdatedAt: solution.UpdatedAt,
	}
}

func ToUserSolutionDTOs(views []services.SolutionView) []UserSolutionDTO {
	items := make([]UserSolutionDTO, len(views))
	for i, view := range views {
		contest := view.Solution.Contest
		items[i] = UserSolutionDTO{
			SolutionDTO: ToSolutionDTO(view.Solution),
			Contest: SolutionContestDTO{
				ID:        contest.ID,
				Title:     contest.Title,
				Platform:  contest.Platform,
				StartDate: contest.StartDate,
				EndDate:   contest.EndDate,
				Status:    view.ContestStatus,
			},
		}
	}
	return items
}

func ToContestSolutionListResponse(page *services.SolutionPage) ContestSolutionListResponse {
	items := make([]ContestSolutionDTO, len(page.Items))
	for i, view := range page.Items {
		user := view.Solution.User
		items[i] = ContestSolutionDTO{
			SolutionDTO: ToSolutionDTO(view.Solution),
			User: SubmitterDTO{
				ID:    user.ID,
				Name:  user.Name,
				Email: user.Email,
			},
			IsOwner: view.IsOwner,
		}
	}

	return ContestSolutionListResponse{
		Solutions:  items,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalCount: page.Total,
		TotalPages: page.TotalPages,
	}
}

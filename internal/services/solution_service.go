package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yukikurage/contest-tracker/internal/constants"
	"github.com/yukikurage/contest-tracker/internal/metrics"
	"github.com/yukikurage/contest-tracker/internal/models"
	"github.com/yukikurage/contest-tracker/internal/policy"
	"github.com/yukikurage/contest-tracker/internal/repository"
	"github.com/yukikurage/contest-tracker/internal/status"
	"github.com/yukikurage/contest-tracker/internal/utils"
)

// SolutionService handles the single solution each user may record per contest
type SolutionService struct {
	solutionRepo repository.SolutionRepository
	contests     *ContestService
	now          Clock
}

func NewSolutionService(solutionRepo repository.SolutionRepository, contests *ContestService, clock Clock) *SolutionService {
	return &SolutionService{
		solutionRepo: solutionRepo,
		contests:     contests,
		now:          orSystemClock(clock),
	}
}

// SaveSolutionInput represents input for saving a solution
type SaveSolutionInput struct {
	Link  string
	Notes *string
}

// SolutionView is a solution with the fields derived for a particular viewer.
type SolutionView struct {
	Solution      models.Solution
	ContestStatus models.ContestStatus
	IsOwner       bool
}

// SolutionPage is one page of a contest's solutions.
type SolutionPage struct {
	Items      []SolutionView
	Page       int
	PageSize   int
	Total      int64
	TotalPages int
}

// Save creates or overwrites the user's solution for the contest
func (s *SolutionService) Save(ctx context.Context, contestID uint64, input SaveSolutionInput, userID uint64) (*models.Solution, error) {
	if err := policy.RequireAuthenticated(userID); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	link := strings.TrimSpace(input.Link)
	if !utils.IsHTTPURL(link) {
		return nil, ErrInvalidLink
	}

	if _, err := s.contests.findContest(ctx, contestID); err != nil {
		return nil, err
	}

	now := s.now()
	solution := &models.Solution{
		UserID:    userID,
		ContestID: contestID,
		Link:      link,
		Notes:     optionalText(input.Notes),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.solutionRepo.Upsert(ctx, solution); err != nil {
		return nil, fmt.Errorf("failed to save solution: %w", err)
	}

	saved, err := s.solutionRepo.FindByPair(ctx, userID, contestID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload solution: %w", err)
	}

	metrics.SolutionSavesTotal.Inc()
	return saved, nil
}

// Delete removes the user's solution for the contest
func (s *SolutionService) Delete(ctx context.Context, contestID, userID uint64) error {
	if err := policy.RequireAuthenticated(userID); err != nil {
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	affected, err := s.solutionRepo.DeleteByPair(ctx, userID, contestID)
	if err != nil {
		return fmt.Errorf("failed to delete solution: %w", err)
	}
	if affected == 0 {
		return ErrSolutionNotFound
	}

	return nil
}

// ListForUser returns the user's solutions with their contests, most recently updated first
func (s *SolutionService) ListForUser(ctx context.Context, userID uint64) ([]SolutionView, error) {
	if err := policy.RequireAuthenticated(userID); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	solutions, err := s.solutionRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list solutions: %w", err)
	}

	now := s.now()
	views := make([]SolutionView, len(solutions))
	for i, solution := range solutions {
		views[i] = SolutionView{
			Solution:      solution,
			ContestStatus: status.Derive(solution.Contest.StartDate, solution.Contest.EndDate, now),
			IsOwner:       true,
		}
	}

	return views, nil
}

// ListForContest returns one page of a contest's solutions, flagging those owned by viewerID
func (s *SolutionService) ListForContest(ctx context.Context, contestID uint64, page, pageSize int, viewerID uint64) (*SolutionPage, error) {
	params := utils.NewPaginationParams(page, pageSize, constants.SolutionPageSize)

	solutions, total, err := s.solutionRepo.ListForContest(ctx, contestID, params.Page, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list contest solutions: %w", err)
	}

	items := make([]SolutionView, len(solutions))
	for i, solution := range solutions {
		items[i] = SolutionView{
			Solution: solution,
			IsOwner:  viewerID != 0 && solution.User.ID == viewerID,
		}
	}

	return &SolutionPage{
		Items:      items,
		Page:       params.Page,
		PageSize:   params.Limit,
		Total:      total,
		TotalPages: utils.TotalPages(total, params.Limit),
	}, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/contest-tracker/internal/constants"
	"github.com/yukikurage/contest-tracker/internal/models"
	"github.com/yukikurage/contest-tracker/internal/policy"
	"github.com/yukikurage/contest-tracker/internal/repository"
	"github.com/yukikurage/contest-tracker/internal/status"
	"github.com/yukikurage/contest-tracker/internal/utils"
	"gorm.io/gorm"
)

// ContestService handles contest business logic
type ContestService struct {
	contestRepo  repository.ContestRepository
	bookmarkRepo repository.BookmarkRepository
	solutionRepo repository.SolutionRepository
	aiService    *AIService
	now          Clock
}

// NewContestService creates a new ContestService. A nil clock uses SystemClock.
func NewContestService(
	contestRepo repository.ContestRepository,
	bookmarkRepo repository.BookmarkRepository,
	solutionRepo repository.SolutionRepository,
	aiService *AIService,
	clock Clock,
) *ContestService {
	return &ContestService{
		contestRepo:  contestRepo,
		bookmarkRepo: bookmarkRepo,
		solutionRepo: solutionRepo,
		aiService:    aiService,
		now:          orSystemClock(clock),
	}
}

// ContestView is a contest with the fields derived for a particular viewer.
type ContestView struct {
	Contest      models.Contest
	Status       models.ContestStatus
	Duration     string
	IsBookmarked bool
	CanEdit      bool
	UserSolution *models.Solution
}

// ContestPage is one page of a contest listing.
type ContestPage struct {
	Items      []ContestView
	Page       int
	PageSize   int
	Total      int64
	TotalPages int
}

// CreateContestInput represents input for creating a contest
type CreateContestInput struct {
	Title       string
	Platform    string
	Category    string
	Description string
	Rules       *string
	Prizes      *string
	Website     *string
	StartDate   time.Time
	EndDate     time.Time
	Duration    *string
}

// UpdateContestInput represents input for updating a contest.
// Nil fields are left unchanged; an empty optional text clears it.
type UpdateContestInput struct {
	Title       *string
	Platform    *string
	Category    *string
	Description *string
	Rules       *string
	Prizes      *string
	Website     *string
	StartDate   *time.Time
	EndDate     *time.Time
	Duration    *string
}

// ListContestsInput represents filters for listing contests
type ListContestsInput struct {
	Platform string
	Category string
	Status   string
	Page     int
	PageSize int
	ViewerID uint64
}

// Create validates the input and stores a contest owned by creatorID
func (s *ContestService) Create(ctx context.Context, input CreateContestInput, creatorID uint64) (*ContestView, error) {
	if err := policy.RequireAuthenticated(creatorID); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	now := s.now()
	contest := &models.Contest{
		Title:       strings.TrimSpace(input.Title),
		Platform:    strings.TrimSpace(input.Platform),
		Category:    strings.TrimSpace(input.Category),
		Description: strings.TrimSpace(input.Description),
		Rules:       optionalText(input.Rules),
		Prizes:      optionalText(input.Prizes),
		Website:     optionalText(input.Website),
		StartDate:   input.StartDate.UTC(),
		EndDate:     input.EndDate.UTC(),
		Duration:    optionalText(input.Duration),
		CreatorID:   creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := validateContest(contest); err != nil {
		return nil, err
	}

	if err := s.contestRepo.Create(ctx, contest); err != nil {
		return nil, fmt.Errorf("failed to create contest: %w", err)
	}

	return s.GetByID(ctx, contest.ID, creatorID)
}

// Update merges the provided fields into a contest owned by requesterID
func (s *ContestService) Update(ctx context.Context, id uint64, input UpdateContestInput, requesterID uint64) (*ContestView, error) {
	if err := policy.RequireAuthenticated(requesterID); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	contest, err := s.findContest(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.RequireOwner(contest.CreatorID, requesterID); err != nil {
		return nil, ErrNotContestCreator
	}

	if input.Title != nil {
		contest.Title = strings.TrimSpace(*input.Title)
	}
	if input.Platform != nil {
		contest.Platform = strings.TrimSpace(*input.Platform)
	}
	if input.Category != nil {
		contest.Category = strings.TrimSpace(*input.Category)
	}
	if input.Description != nil {
		contest.Description = strings.TrimSpace(*input.Description)
	}
	if input.Rules != nil {
		contest.Rules = optionalText(input.Rules)
	}
	if input.Prizes != nil {
		contest.Prizes = optionalText(input.Prizes)
	}
	if input.Website != nil {
		contest.Website = optionalText(input.Website)
	}
	if input.StartDate != nil {
		contest.StartDate = input.StartDate.UTC()
	}
	if input.EndDate != nil {
		contest.EndDate = input.EndDate.UTC()
	}
	if input.Duration != nil {
		contest.Duration = optionalText(input.Duration)
	}

	if err := validateContest(contest); err != nil {
		return nil, err
	}

	contest.UpdatedAt = s.now()

	if err := s.contestRepo.Update(ctx, contest); err != nil {
		return nil, fmt.Errorf("failed to update contest: %w", err)
	}

	return s.GetByID(ctx, contest.ID, requesterID)
}

// Delete removes a contest owned by requesterID along with its bookmarks and solutions
func (s *ContestService) Delete(ctx context.Context, id, requesterID uint64) error {
	if err := policy.RequireAuthenticated(requesterID); err != nil {
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	contest, err := s.findContest(ctx, id)
	if err != nil {
		return err
	}

	if err := policy.RequireOwner(contest.CreatorID, requesterID); err != nil {
		return ErrNotContestCreator
	}

	if err := s.contestRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return ErrContestDeleteConflict
		}
		return fmt.Errorf("failed to delete contest: %w", err)
	}

	return nil
}

// GetByID returns the contest personalized for viewerID, or nil when it does not exist.
// viewerID 0 means anonymous.
func (s *ContestService) GetByID(ctx context.Context, id, viewerID uint64) (*ContestView, error) {
	contest, err := s.contestRepo.FindByID(ctx, id, "Creator")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find contest: %w", err)
	}

	view := s.newView(*contest)
	if viewerID == 0 {
		return &view, nil
	}

	view.CanEdit = policy.CanEdit(contest.CreatorID, viewerID)

	bookmarked, err := s.bookmarkRepo.Exists(ctx, viewerID, contest.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check bookmark: %w", err)
	}
	view.IsBookmarked = bookmarked

	solution, err := s.solutionRepo.FindByPair(ctx, viewerID, contest.ID)
	switch {
	case err == nil:
		view.UserSolution = solution
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return nil, fmt.Errorf("failed to find solution: %w", err)
	}

	return &view, nil
}

// List returns one page of contests matching the filters
func (s *ContestService) List(ctx context.Context, input ListContestsInput) (*ContestPage, error) {
	contestStatus, err := parseStatusFilter(input.Status)
	if err != nil {
		return nil, err
	}

	params := utils.NewPaginationParams(input.Page, input.PageSize, constants.ContestPageSize)
	filter := repository.ContestFilter{
		Platform: normalizeFilter(input.Platform),
		Category: normalizeFilter(input.Category),
		Status:   contestStatus,
		Now:      s.now(),
		Page:     params.Page,
		PageSize: params.Limit,
	}

	contests, total, err := s.contestRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list contests: %w", err)
	}

	items, err := s.viewsFor(ctx, contests, input.ViewerID)
	if err != nil {
		return nil, err
	}

	return &ContestPage{
		Items:      items,
		Page:       params.Page,
		PageSize:   params.Limit,
		Total:      total,
		TotalPages: utils.TotalPages(total, params.Limit),
	}, nil
}

// ListUpcoming returns at most limit contests that have not started yet, soonest first
func (s *ContestService) ListUpcoming(ctx context.Context, limit int, viewerID uint64) ([]ContestView, error) {
	if limit <= 0 || limit > constants.MaxPageSize {
		limit = constants.DefaultUpcomingContests
	}

	contests, err := s.contestRepo.ListUpcoming(ctx, s.now(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming contests: %w", err)
	}

	return s.viewsFor(ctx, contests, viewerID)
}

// DraftFromText uses AI to extract an unsaved contest draft from announcement text
func (s *ContestService) DraftFromText(ctx context.Context, text string, requesterID uint64) (*ContestDraft, error) {
	if err := policy.RequireAuthenticated(requesterID); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	if s.aiService == nil {
		return nil, ErrAIServiceNotConfigured
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, requiredField("text")
	}
	if len(text) > constants.MaxDraftTextLength {
		return nil, fmt.Errorf("text exceeds %d characters: %w", constants.MaxDraftTextLength, ErrInvalidInput)
	}

	draft, err := s.aiService.ExtractContestDraft(ctx, text, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to extract contest draft: %w", err)
	}

	if draft.StartDate != nil && draft.EndDate != nil && !draft.StartDate.Before(*draft.EndDate) {
		draft.EndDate = nil
	}

	return draft, nil
}

func (s *ContestService) findContest(ctx context.Context, id uint64) (*models.Contest, error) {
	contest, err := s.contestRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContestNotFound
		}
		return nil, fmt.Errorf("failed to find contest: %w", err)
	}
	return contest, nil
}

func (s *ContestService) newView(contest models.Contest) ContestView {
	view := ContestView{
		Contest: contest,
		Status:  status.Derive(contest.StartDate, contest.EndDate, s.now()),
	}
	if contest.Duration != nil {
		view.Duration = *contest.Duration
	} else {
		view.Duration = status.Duration(contest.StartDate, contest.EndDate)
	}
	return view
}

// viewsFor derives status for each contest and marks the viewer's bookmarks
func (s *ContestService) viewsFor(ctx context.Context, contests []models.Contest, viewerID uint64) ([]ContestView, error) {
	views := make([]ContestView, len(contests))
	for i, contest := range contests {
		views[i] = s.newView(contest)
	}

	if viewerID == 0 || len(contests) == 0 {
		return views, nil
	}

	ids := make([]uint64, len(contests))
	for i, contest := range contests {
		ids[i] = contest.ID
	}

	bookmarked, err := s.bookmarkRepo.BookmarkedContestIDs(ctx, viewerID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookmarks: %w", err)
	}

	for i := range views {
		views[i].IsBookmarked = bookmarked[views[i].Contest.ID]
		views[i].CanEdit = policy.CanEdit(views[i].Contest.CreatorID, viewerID)
	}

	return views, nil
}

func validateContest(contest *models.Contest) error {
	switch {
	case contest.Title == "":
		return requiredField("title")
	case contest.Platform == "":
		return requiredField("platform")
	case contest.Category == "":
		return requiredField("category")
	case contest.StartDate.IsZero():
		return requiredField("start_date")
	case contest.EndDate.IsZero():
		return requiredField("end_date")
	case !contest.StartDate.Before(contest.EndDate):
		return ErrInvalidSchedule
	case contest.Website != nil && !utils.IsHTTPURL(*contest.Website):
		return ErrInvalidWebsite
	}
	return nil
}

func parseStatusFilter(value string) (models.ContestStatus, error) {
	switch normalizeFilter(value) {
	case "":
		return "", nil
	case string(models.ContestStatusUpcoming):
		return models.ContestStatusUpcoming, nil
	case string(models.ContestStatusOngoing):
		return models.ContestStatusOngoing, nil
	case string(models.ContestStatusCompleted):
		return models.ContestStatusCompleted, nil
	default:
		return "", ErrInvalidStatusFilter
	}
}

// normalizeFilter maps the "all" sentinel to no constraint
func normalizeFilter(value string) string {
	value = strings.TrimSpace(value)
	if value == constants.FilterAll {
		return ""
	}
	return value
}

// optionalText trims v and maps empty to nil
func optionalText(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

package services

import (
	"context"
	"fmt"

	"github.com/yukikurage/contest-tracker/internal/metrics"
	"github.com/yukikurage/contest-tracker/internal/models"
	"github.com/yukikurage/contest-tracker/internal/policy"
	"github.com/yukikurage/contest-tracker/internal/repository"
)

// BookmarkService handles per-user saved contests
type BookmarkService struct {
	bookmarkRepo repository.BookmarkRepository
	contests     *ContestService
	now          Clock
}

func NewBookmarkService(bookmarkRepo repository.BookmarkRepository, contests *ContestService, clock Clock) *BookmarkService {
	return &BookmarkService{
		bookmarkRepo: bookmarkRepo,
		contests:     contests,
		now:          orSystemClock(clock),
	}
}

// Toggle removes the user's bookmark on the contest if present, otherwise adds it.
// It returns whether the contest is bookmarked afterwards.
func (s *BookmarkService) Toggle(ctx context.Context, contestID, userID uint64) (bool, error) {
	if err := policy.RequireAuthenticated(userID); err != nil {
		return false, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	if _, err := s.contests.findContest(ctx, contestID); err != nil {
		return false, err
	}

	removed, err := s.bookmarkRepo.DeleteByPair(ctx, userID, contestID)
	if err != nil {
		return false, fmt.Errorf("failed to remove bookmark: %w", err)
	}
	if removed > 0 {
		metrics.RecordBookmarkToggle(false)
		return false, nil
	}

	bookmark := &models.Bookmark{
		UserID:    userID,
		ContestID: contestID,
		CreatedAt: s.now(),
	}
	inserted, err := s.bookmarkRepo.InsertIgnore(ctx, bookmark)
	if err != nil {
		return false, fmt.Errorf("failed to add bookmark: %w", err)
	}

	// A concurrent toggle may have inserted the row first; it is bookmarked either way.
	if inserted {
		metrics.RecordBookmarkToggle(true)
	}
	return true, nil
}

// ListForUser returns the user's bookmarked contests ordered by start date
func (s *BookmarkService) ListForUser(ctx context.Context, userID uint64) ([]ContestView, error) {
	if err := policy.RequireAuthenticated(userID); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	contests, err := s.bookmarkRepo.ListContests(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}

	views := make([]ContestView, len(contests))
	for i, contest := range contests {
		views[i] = s.contests.newView(contest)
		views[i].IsBookmarked = true
		views[i].CanEdit = policy.CanEdit(contest.CreatorID, userID)
	}

	return views, nil
}

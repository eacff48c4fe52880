package repository

import (
	"context"
	"time"

	"github.com/yukikurage/contest-tracker/internal/models"
)

// ContestRepository defines the interface for contest data access
type ContestRepository interface {
	// Create inserts a new contest
	Create(ctx context.Context, contest *models.Contest) error

	// FindByID finds a contest by ID with optional preloading
	FindByID(ctx context.Context, id uint64, preload ...string) (*models.Contest, error)

	// List retrieves contests with filtering and pagination
	List(ctx context.Context, filter ContestFilter) ([]models.Contest, int64, error)

	// ListUpcoming returns contests starting after now, soonest first
	ListUpcoming(ctx context.Context, now time.Time, limit int) ([]models.Contest, error)

	// Update saves the contest's own columns
	Update(ctx context.Context, contest *models.Contest) error

	// Delete removes a contest together with its bookmarks and solutions
	Delete(ctx context.Context, id uint64) error
}

// ContestFilter holds filtering options for listing contests.
// Empty Platform, Category or Status means no constraint.
type ContestFilter struct {
	Platform string
	Category string
	Status   models.ContestStatus
	Now      time.Time
	Page     int
	PageSize int
}

// BookmarkRepository defines the interface for bookmark data access
type BookmarkRepository interface {
	// InsertIgnore creates the bookmark unless the (user, contest) pair already exists.
	// It reports whether a row was inserted.
	InsertIgnore(ctx context.Context, bookmark *models.Bookmark) (bool, error)

	// DeleteByPair removes the bookmark of a user on a contest and reports the affected rows
	DeleteByPair(ctx context.Context, userID, contestID uint64) (int64, error)

	// Exists reports whether the user bookmarked the contest
	Exists(ctx context.Context, userID, contestID uint64) (bool, error)

	// BookmarkedContestIDs returns which of contestIDs the user bookmarked
	BookmarkedContestIDs(ctx context.Context, userID uint64, contestIDs []uint64) (map[uint64]bool, error)

	// ListContests returns the contests bookmarked by a user ordered by start date
	ListContests(ctx context.Context, userID uint64) ([]models.Contest, error)
}

// SolutionRepository defines the interface for solution data access
type SolutionRepository interface {
	// Upsert inserts the solution or overwrites link, notes and updated_at of the existing pair
	Upsert(ctx context.Context, solution *models.Solution) error

	// FindByPair finds the solution of a user for a contest
	FindByPair(ctx context.Context, userID, contestID uint64) (*models.Solution, error)

	// DeleteByPair removes the solution of a user for a contest and reports the affected rows
	DeleteByPair(ctx context.Context, userID, contestID uint64) (int64, error)

	// ListForUser returns a user's solutions with their contests, most recently updated first
	ListForUser(ctx context.Context, userID uint64) ([]models.Solution, error)

	// ListForContest returns a page of a contest's solutions with their authors
	ListForContest(ctx context.Context, contestID uint64, page, pageSize int) ([]models.Solution, int64, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// Update saves a user's name and password hash
	Update(ctx context.Context, user *models.User) error
}

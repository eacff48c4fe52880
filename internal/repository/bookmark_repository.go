package repository

import (
	"context"

	"github.com/yukikurage/contest-tracker/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBookmarkRepository is a GORM implementation of BookmarkRepository
type GormBookmarkRepository struct {
	db *gorm.DB
}

// NewBookmarkRepository creates a new BookmarkRepository
func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &GormBookmarkRepository{db: db}
}

// InsertIgnore relies on the (user_id, contest_id) unique index so concurrent
// toggles cannot create a second row.
func (r *GormBookmarkRepository) InsertIgnore(ctx context.Context, bookmark *models.Bookmark) (bool, error) {
	result := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "contest_id"}},
			DoNothing: true,
		}).
		Create(bookmark)
	return result.RowsAffected > 0, result.Error
}

func (r *GormBookmarkRepository) DeleteByPair(ctx context.Context, userID, contestID uint64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND contest_id = ?", userID, contestID).
		Delete(&models.Bookmark{})
	return result.RowsAffected, result.Error
}

func (r *GormBookmarkRepository) Exists(ctx context.Context, userID, contestID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Bookmark{}).
		Where("user_id = ? AND contest_id = ?", userID, contestID).
		Count(&count).Error
	return count > 0, err
}

func (r *GormBookmarkRepository) BookmarkedContestIDs(ctx context.Context, userID uint64, contestIDs []uint64) (map[uint64]bool, error) {
	bookmarked := make(map[uint64]bool, len(contestIDs))
	if len(contestIDs) == 0 {
		return bookmarked, nil
	}

	var ids []uint64
	err := r.db.WithContext(ctx).Model(&models.Bookmark{}).
		Where("user_id = ? AND contest_id IN ?", userID, contestIDs).
		Pluck("contest_id", &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		bookmarked[id] = true
	}
	return bookmarked, nil
}

func (r *GormBookmarkRepository) ListContests(ctx context.Context, userID uint64) ([]models.Contest, error) {
	var contests []models.Contest
	err := r.db.WithContext(ctx).
		Joins("JOIN bookmarks ON bookmarks.contest_id = contests.id").
		Where("bookmarks.user_id = ?", userID).
		Order("contests.start_date ASC").
		Order("contests.id ASC").
		Preload("Creator").
		Find(&contests).Error
	return contests, err
}

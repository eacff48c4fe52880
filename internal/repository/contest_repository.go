package repository

import (
	"context"
	"time"

	"github.com/yukikurage/contest-tracker/internal/database"
	"github.com/yukikurage/contest-tracker/internal/models"
	"github.com/yukikurage/contest-tracker/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormContestRepository is a GORM implementation of ContestRepository
type GormContestRepository struct {
	db *gorm.DB
}

// NewContestRepository creates a new ContestRepository
func NewContestRepository(db *gorm.DB) ContestRepository {
	return &GormContestRepository{db: db}
}

func (r *GormContestRepository) Create(ctx context.Context, contest *models.Contest) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(contest).Error
}

// FindByID finds a contest by ID with optional preloading
func (r *GormContestRepository) FindByID(ctx context.Context, id uint64, preload ...string) (*models.Contest, error) {
	var contest models.Contest
	query := r.db.WithContext(ctx)

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&contest, id).Error; err != nil {
		return nil, err
	}

	return &contest, nil
}

// List retrieves contests with filtering and pagination, ordered by start date
func (r *GormContestRepository) List(ctx context.Context, filter ContestFilter) ([]models.Contest, int64, error) {
	var contests []models.Contest

	query := r.db.WithContext(ctx).Model(&models.Contest{})

	if filter.Platform != "" {
		query = query.Where("contests.platform = ?", filter.Platform)
	}
	if filter.Category != "" {
		query = query.Where("contests.category = ?", filter.Category)
	}
	switch filter.Status {
	case models.ContestStatusUpcoming:
		query = query.Where("contests.start_date > ?", filter.Now)
	case models.ContestStatusOngoing:
		query = query.Where("contests.start_date <= ? AND contests.end_date >= ?", filter.Now, filter.Now)
	case models.ContestStatusCompleted:
		query = query.Where("contests.end_date < ?", filter.Now)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("contests.start_date ASC").Order("contests.id ASC")
	if filter.Page > 0 && filter.PageSize > 0 {
		listQuery = listQuery.Scopes(database.Paginate(utils.NewPaginationParams(filter.Page, filter.PageSize, filter.PageSize)))
	}

	if err := listQuery.Preload("Creator").Find(&contests).Error; err != nil {
		return nil, 0, err
	}

	return contests, total, nil
}

func (r *GormContestRepository) ListUpcoming(ctx context.Context, now time.Time, limit int) ([]models.Contest, error) {
	var contests []models.Contest
	err := r.db.WithContext(ctx).
		Where("start_date > ?", now).
		Order("start_date ASC").
		Order("id ASC").
		Limit(limit).
		Preload("Creator").
		Find(&contests).Error
	return contests, err
}

// Update writes every contest column, leaving the creator association untouched
func (r *GormContestRepository) Update(ctx context.Context, contest *models.Contest) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(contest).Error
}

// Delete removes bookmarks, solutions and the contest in one transaction
func (r *GormContestRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contest_id = ?", id).Delete(&models.Bookmark{}).Error; err != nil {
			return err
		}

		if err := tx.Where("contest_id = ?", id).Delete(&models.Solution{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Contest{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNoRowsAffected
		}

		return nil
	})
}

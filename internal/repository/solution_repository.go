package repository

import (
	"context"

	"github.com/yukikurage/contest-tracker/internal/database"
	"github.com/yukikurage/contest-tracker/internal/models"
	"github.com/yukikurage/contest-tracker/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSolutionRepository is a GORM implementation of SolutionRepository
type GormSolutionRepository struct {
	db *gorm.DB
}

// NewSolutionRepository creates a new SolutionRepository
func NewSolutionRepository(db *gorm.DB) SolutionRepository {
	return &GormSolutionRepository{db: db}
}

// Upsert is a single statement against the (user_id, contest_id) unique index;
// created_at of an existing row is preserved.
func (r *GormSolutionRepository) Upsert(ctx context.Context, solution *models.Solution) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "contest_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"link", "notes", "updated_at"}),
		}).
		Create(solution).Error
}

func (r *GormSolutionRepository) FindByPair(ctx context.Context, userID, contestID uint64) (*models.Solution, error) {
	var solution models.Solution
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND contest_id = ?", userID, contestID).
		First(&solution).Error
	if err != nil {
		return nil, err
	}
	return &solution, nil
}

func (r *GormSolutionRepository) DeleteByPair(ctx context.Context, userID, contestID uint64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND contest_id = ?", userID, contestID).
		Delete(&models.Solution{})
	return result.RowsAffected, result.Error
}

func (r *GormSolutionRepository) ListForUser(ctx context.Context, userID uint64) ([]models.Solution, error) {
	var solutions []models.Solution
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Order("id DESC").
		Preload("Contest").
		Find(&solutions).Error
	return solutions, err
}

func (r *GormSolutionRepository) ListForContest(ctx context.Context, contestID uint64, page, pageSize int) ([]models.Solution, int64, error) {
	var solutions []models.Solution

	query := r.db.WithContext(ctx).Model(&models.Solution{}).Where("contest_id = ?", contestID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("updated_at DESC").Order("id DESC")
	if page > 0 && pageSize > 0 {
		listQuery = listQuery.Scopes(database.Paginate(utils.NewPaginationParams(page, pageSize, pageSize)))
	}

	if err := listQuery.Preload("User").Find(&solutions).Error; err != nil {
		return nil, 0, err
	}

	return solutions, total, nil
}

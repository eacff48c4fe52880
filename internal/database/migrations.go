package database

import (
	"fmt"
	"log/slog"

	"github.com/yukikurage/contest-tracker/internal/models"
	"gorm.io/gorm"
)

type indexSpec struct {
	model interface{}
	name  string
}

// requiredIndexes lists the named indexes declared on the models.
var requiredIndexes = []indexSpec{
	{&models.User{}, "idx_users_email"},
	{&models.Contest{}, "idx_contests_platform"},
	{&models.Contest{}, "idx_contests_category"},
	{&models.Contest{}, "idx_contests_start_date"},
	{&models.Contest{}, "idx_contests_creator_id"},
	{&models.Bookmark{}, "idx_bookmarks_user_contest"},
	{&models.Bookmark{}, "idx_bookmarks_contest_id"},
	{&models.Solution{}, "idx_solutions_user_contest"},
	{&models.Solution{}, "idx_solutions_contest_id"},
	{&models.Solution{}, "idx_solutions_updated_at"},
}

// EnsureIndexes creates any declared index that is missing from the database.
func EnsureIndexes(db *gorm.DB) error {
	migrator := db.Migrator()

	for _, idx := range requiredIndexes {
		if migrator.HasIndex(idx.model, idx.name) {
			continue
		}

		if err := migrator.CreateIndex(idx.model, idx.name); err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		slog.Info("created index", "index", idx.name)
	}

	return nil
}

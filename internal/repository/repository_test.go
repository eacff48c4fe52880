package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/contest-tracker/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var base = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

// setupMockDB creates a GORM *gorm.DB backed by sqlmock for unit tests.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return gormDB, mock
}

// setupSQLite opens a migrated in-memory database on a single connection.
func setupSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Contest{}, &models.Bookmark{}, &models.Solution{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Name: email, Email: email, PasswordHash: "hash"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createContest(t *testing.T, db *gorm.DB, creatorID uint64, title string, start, end time.Time) *models.Contest {
	t.Helper()
	contest := &models.Contest{
		Title:     title,
		Platform:  "Codeforces",
		Category:  "Algorithms",
		StartDate: start,
		EndDate:   end,
		CreatorID: creatorID,
		CreatedAt: base,
		UpdatedAt: base,
	}
	require.NoError(t, db.Create(contest).Error)
	return contest
}

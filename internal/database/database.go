package database

import (
	"fmt"
	"log/slog"

	"github.com/yukikurage/contest-tracker/internal/config"
	"github.com/yukikurage/contest-tracker/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the configured database. The caller owns the handle and
// must Close it on shutdown.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBName,
			cfg.DBSSLMode,
		)
		dialector = postgres.Open(dsn)
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBName,
		)
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, NewGormConfig(cfg.GinMode))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	slog.Info("database connection established", "driver", cfg.DBDriver, "host", cfg.DBHost)
	return db, nil
}

// NewGormConfig returns the gorm settings shared by production and tests.
// Duplicate-key errors are translated to gorm.ErrDuplicatedKey.
func NewGormConfig(ginMode string) *gorm.Config {
	level := logger.Info
	if ginMode == "release" {
		level = logger.Warn
	}
	return &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	}
}

// Migrate creates or updates the schema and verifies the uniqueness indexes
// that bookmark toggling and solution upserts depend on.
func Migrate(db *gorm.DB) error {
	slog.Info("running database migrations")
	err := db.AutoMigrate(
		&models.User{},
		&models.Contest{},
		&models.Bookmark{},
		&models.Solution{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := EnsureIndexes(db); err != nil {
		return err
	}

	slog.Info("database migrations completed")
	return nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.Close()
}

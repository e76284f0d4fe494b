package database

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sjperalta/rental-desk/internal/models"
	pkgLogger "github.com/sjperalta/rental-desk/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the record database. Postgres URLs are used as-is; "file:"
// and "sqlite:" URLs open a local SQLite database.
func Connect(databaseURL string) (*gorm.DB, error) {
	// Configure GORM logger
	logLevel := logger.Silent
	if os.Getenv("ENVIRONMENT") != "production" {
		logLevel = logger.Info
	}

	gormLogger := pkgLogger.NewGormLogger(
		logLevel,
		200*time.Millisecond,
	)

	dialector, isSQLite := dialectorFor(databaseURL)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            !isSQLite,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL database
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Configure connection pool
	if isSQLite {
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetMaxOpenConns(50)
		sqlDB.SetConnMaxLifetime(time.Hour)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	}

	// Verify connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the record tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Submission{}, &models.AuditLog{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func dialectorFor(databaseURL string) (gorm.Dialector, bool) {
	switch {
	case strings.HasPrefix(databaseURL, "sqlite:"):
		return sqlite.Open(strings.TrimPrefix(databaseURL, "sqlite:")), true
	case strings.HasPrefix(databaseURL, "file:"):
		return sqlite.Open(databaseURL), true
	default:
		return postgres.Open(databaseURL), false
	}
}

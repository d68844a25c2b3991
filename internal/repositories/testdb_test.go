package repositories

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bukutamu/internal/models/db_models"
)

// openTestDB gives each test an isolated in-memory database. The pool is
// pinned to a single connection so every session sees the same :memory: DB.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&db_models.Recipient{},
		&db_models.Guest{},
		&db_models.ReceptionLog{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

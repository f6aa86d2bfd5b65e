// Package testutil holds helpers shared by package tests.
package testutil

import (
	"log/slog"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"worklog-service/internal/config"
)

// NewTestDB opens a SQLite work log in a temporary directory. The database
// is closed when the test completes.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.Config{
		DBDriver: config.DriverSQLite,
		DBPath:   filepath.Join(t.TempDir(), "work_log.db"),
		LogLevel: slog.LevelInfo,
	}
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// StrPtr returns a pointer to s.
func StrPtr(s string) *string {
	return &s
}

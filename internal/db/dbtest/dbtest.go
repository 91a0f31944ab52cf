// Package dbtest opens migrated databases for tests.
package dbtest

import (
	"os"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"deafso/internal/config"
	"deafso/internal/db"
)

// Open returns a migrated database. TEST_DATABASE_URL (with TEST_DB_DRIVER,
// default mysql) selects a real server; otherwise each call gets a fresh
// in-memory SQLite database.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	var (
		gormDB *gorm.DB
		err    error
	)
	if dsn := os.Getenv("TEST_DATABASE_URL"); dsn != "" {
		driver := os.Getenv("TEST_DB_DRIVER")
		if driver == "" {
			driver = config.DriverMySQL
		}
		gormDB, err = db.Open(driver, dsn)
		require.NoError(t, err)
	} else {
		gormDB, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
		require.NoError(t, err)
		sqlDB, err := gormDB.DB()
		require.NoError(t, err)
		// every pooled connection to :memory: would be a separate database
		sqlDB.SetMaxOpenConns(1)
		t.Cleanup(func() { _ = sqlDB.Close() })
	}

	require.NoError(t, db.Migrate(gormDB))
	return gormDB
}

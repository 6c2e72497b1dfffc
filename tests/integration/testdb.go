// Package integration wires the real repositories and application
// services against a throwaway sqlite database.
package integration

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/elir12131/agroflow/internal/infrastructure/persistence/models"
)

// NewTestDB opens a fresh sqlite database under a per-test temp
// directory and creates the full schema. The database file is removed
// with the temp directory when the test finishes.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "agroflow_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "Failed to open sqlite database")

	err = db.AutoMigrate(
		&models.CustomerModel{},
		&models.ProductModel{},
		&models.OrderModel{},
		&models.OrderItemModel{},
		&models.SettingModel{},
	)
	require.NoError(t, err, "Failed to migrate schema")

	return db
}

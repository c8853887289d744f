package models

import (
	"fmt"
	"strings"
	"testing"

	"wedding-admin/db"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB swaps db.Instance for a per-test in-memory database.
func setupTestDB(t *testing.T) {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	instance, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	db.Instance = instance
	Init()
}

func createTestWedding(t *testing.T) Wedding {
	t.Helper()
	admin, err := UserCreate("Admin", "admin@example.com", "secret123", RoleAdmin)
	require.NoError(t, err)
	wedding := Wedding{
		Name:      "Budi & Sari",
		Slug:      "budi-sari",
		GroomName: "Budi",
		BrideName: "Sari",
		Venue:     "Gedung Serbaguna",
		AdminID:   admin.ID,
	}
	require.NoError(t, db.Instance.Create(&wedding).Error)
	return wedding
}

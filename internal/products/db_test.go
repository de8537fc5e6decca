package product

import (
	"fmt"
	"testing"

	"github.com/openmarket-kr/openmarket-backend/pkg/db/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	// SQLite LIKE is case-insensitive for ASCII by default; listings match
	// keywords case-sensitively.
	if err := conn.Exec("PRAGMA case_sensitive_like = ON").Error; err != nil {
		t.Fatalf("failed to set case_sensitive_like: %v", err)
	}

	if err := conn.AutoMigrate(&models.User{}, &models.Market{}, &models.Product{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return conn
}

package helpers

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"workforce_backend/database"
	"workforce_backend/internal/config"
)

// NewTestDB поднимает чистую in-memory SQLite и прогоняет миграции и сиды.
// Один коннект на базу, иначе каждый коннект пула получит СВОЮ память.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Не удалось открыть тестовую БД: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Не удалось получить *sql.DB из GORM: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Не удалось выполнить AutoMigrate для тестовой БД: %v", err)
	}
	if err := database.Seed(db, TestConfig()); err != nil {
		t.Fatalf("Не удалось засеять тестовую БД: %v", err)
	}

	return db
}

// TestConfig - конфигурация для тестов, без файла и окружения
func TestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret-key"
	cfg.JWT.TTL = 60
	return cfg
}

package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"workforce_backend/internal/auth"
	"workforce_backend/internal/config"
	"workforce_backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))
	return db
}

func TestSeed_LookupsAndSuperuser(t *testing.T) {
	db := newTestDB(t)

	cfg := &config.Config{}
	cfg.Superuser.Email = "root@test.com"
	cfg.Superuser.Password = "root-password"
	cfg.Superuser.Phone = "+380501234567"

	require.NoError(t, Seed(db, cfg))

	var roles int64
	require.NoError(t, db.Model(&models.Role{}).Count(&roles).Error)
	assert.EqualValues(t, 3, roles)

	var statuses int64
	require.NoError(t, db.Model(&models.StatusType{}).Count(&statuses).Error)
	assert.EqualValues(t, 2, statuses)

	var paymentStatuses int64
	require.NoError(t, db.Model(&models.PaymentStatus{}).Count(&paymentStatuses).Error)
	assert.EqualValues(t, 3, paymentStatuses)

	var su models.User
	require.NoError(t, db.Preload("Role").First(&su, "email = ?", "root@test.com").Error)
	assert.Equal(t, models.RoleSuperuser, su.Role.Name)
	assert.True(t, auth.CheckPasswordHash("root-password", su.PasswordHash))

	// Повторный запуск ничего не дублирует
	require.NoError(t, Seed(db, cfg))
	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.EqualValues(t, 1, users)
	require.NoError(t, db.Model(&models.Role{}).Count(&roles).Error)
	assert.EqualValues(t, 3, roles)
}

func TestSeed_WithoutSuperuserConfig(t *testing.T) {
	db := newTestDB(t)

	// Без email/пароля сид справочников проходит, аккаунт не создается
	require.NoError(t, Seed(db, &config.Config{}))

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Zero(t, users)
}

func TestLoadLookupCSV(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Seed(db, &config.Config{}))

	dir := t.TempDir()
	writeFile := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	writeFile("employer_type.csv", "name\nLLC\nPE\n")
	// Колонка name не обязана быть первой
	writeFile("account_type.csv", "code,name\n1,checking\n2,savings\n")
	// Повторы против уже засеянных значений не дублируются
	writeFile("role.csv", "name\nemployer\nauditor\n")

	require.NoError(t, LoadLookupCSV(db, dir))

	var employerTypes int64
	require.NoError(t, db.Model(&models.EmployerType{}).Count(&employerTypes).Error)
	assert.EqualValues(t, 2, employerTypes)

	var accountTypes int64
	require.NoError(t, db.Model(&models.AccountType{}).Count(&accountTypes).Error)
	assert.EqualValues(t, 2, accountTypes)

	var roles int64
	require.NoError(t, db.Model(&models.Role{}).Count(&roles).Error)
	assert.EqualValues(t, 4, roles, "3 засеянных + auditor")

	// Отсутствующий каталог или файл - не ошибка
	require.NoError(t, LoadLookupCSV(db, ""))
	require.NoError(t, LoadLookupCSV(db, t.TempDir()))
}

func TestLoadLookupCSV_NoNameColumn(t *testing.T) {
	db := newTestDB(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "role.csv"), []byte("title\nadmin\n"), 0o644))

	err := LoadLookupCSV(db, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no name column")
}

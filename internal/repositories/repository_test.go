package repositories

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"workforce_backend/database"
	"workforce_backend/internal/models"
	"workforce_backend/pkg/apperrors"
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

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func errCode(t *testing.T, err error) apperrors.ErrorCode {
	t.Helper()
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "ожидается *AppError, получено: %v", err)
	return appErr.Code
}

func TestRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository[models.Role](db)

	role := &models.Role{Name: "auditor"}
	require.NoError(t, repo.Create(role))
	assert.NotEmpty(t, role.ID, "BeforeCreate должен выдать UUID")

	got, err := repo.Get(role.ID)
	require.NoError(t, err)
	assert.Equal(t, "auditor", got.Name)

	_, err = repo.Get("missing-id")
	assert.Equal(t, apperrors.CodeNotFound, errCode(t, err))
}

func TestRepository_Create_DuplicateName(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository[models.Role](db)

	require.NoError(t, repo.Create(&models.Role{Name: "auditor"}))

	err := repo.Create(&models.Role{Name: "auditor"})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeAlreadyExists, errCode(t, err))
}

func TestRepository_GetMulti_StableOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository[models.Role](db)

	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(&models.Role{Name: name}))
		time.Sleep(2 * time.Millisecond)
	}

	objs, err := repo.GetMulti(0, 10)
	require.NoError(t, err)
	require.Len(t, objs, 3)
	assert.Equal(t, "first", objs[0].Name)
	assert.Equal(t, "third", objs[2].Name)

	// Пагинация
	page, err := repo.GetMulti(1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "second", page[0].Name)

	// Пустая страница - не ошибка
	empty, err := repo.GetMulti(100, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRepository_GetByAttribute(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository[models.Role](db)
	require.NoError(t, repo.Create(&models.Role{Name: "auditor"}))

	got, err := repo.GetByAttribute(map[string]any{"name": "auditor"})
	require.NoError(t, err)
	assert.Equal(t, "auditor", got.Name)

	_, err = repo.GetByAttribute(map[string]any{"name": "nobody"})
	assert.Equal(t, apperrors.CodeNotFound, errCode(t, err))

	// Неизвестная колонка - ошибка запроса, не 500
	_, err = repo.GetByAttribute(map[string]any{"nope": "x"})
	assert.Equal(t, apperrors.CodeValidationFailed, errCode(t, err))
}

func TestRepository_SearchByParameter(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository[models.Role](db)
	for _, name := range []string{"admin", "administrator", "viewer"} {
		require.NoError(t, repo.Create(&models.Role{Name: name}))
	}

	objs, err := repo.SearchByParameter("name", "admin", 0, 10)
	require.NoError(t, err)
	assert.Len(t, objs, 2)

	// Подстрока в середине слова тоже находится
	objs, err = repo.SearchByParameter("name", "iew", 0, 10)
	require.NoError(t, err)
	assert.Len(t, objs, 1)

	// Нет совпадений - пустой список
	objs, err = repo.SearchByParameter("name", "zzz", 0, 10)
	require.NoError(t, err)
	assert.Empty(t, objs)

	_, err = repo.SearchByParameter("nope", "x", 0, 10)
	assert.Equal(t, apperrors.CodeValidationFailed, errCode(t, err))
}

func TestRepository_Update_PartialFields(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository[models.Bank](db)

	accountTypes := NewRepository[models.AccountType](db)
	at := &models.AccountType{Name: "checking"}
	require.NoError(t, accountTypes.Create(at))

	bank := &models.Bank{Name: "OldName", Mfo: "300001", AccountTypeID: at.ID}
	require.NoError(t, repo.Create(bank))

	require.NoError(t, repo.Update(bank, map[string]any{"name": "NewName"}))

	got, err := repo.Get(bank.ID)
	require.NoError(t, err)
	assert.Equal(t, "NewName", got.Name)
	assert.Equal(t, "300001", got.Mfo, "непереданное поле не должно меняться")

	// Пустой набор полей - no-op
	require.NoError(t, repo.Update(bank, map[string]any{}))

	// Неизвестная колонка отклоняется до запроса
	err = repo.Update(bank, map[string]any{"nope": "x"})
	assert.Equal(t, apperrors.CodeValidationFailed, errCode(t, err))
}

func TestRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository[models.Role](db)

	role := &models.Role{Name: "temp"}
	require.NoError(t, repo.Create(role))
	require.NoError(t, repo.Delete(role.ID))

	// Повторное удаление - NotFound, не тихий успех
	err := repo.Delete(role.ID)
	assert.Equal(t, apperrors.CodeNotFound, errCode(t, err))
}

func TestRepository_WithTx_Rollback(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository[models.Role](db)

	tx := db.Begin()
	require.NoError(t, tx.Error)
	require.NoError(t, repo.WithTx(tx).Create(&models.Role{Name: "ghost"}))
	require.NoError(t, tx.Rollback().Error)

	// Откат транзакции не оставляет следов
	_, err := repo.GetByAttribute(map[string]any{"name": "ghost"})
	assert.Equal(t, apperrors.CodeNotFound, errCode(t, err))
}

func TestSessionRepository_LatestAndRevoke(t *testing.T) {
	db := newTestDB(t)
	sessions := NewSessionRepository(db)

	userID := seedUser(t, db, "session-user@test.com")

	first := &models.Session{Token: "token-1", Status: models.SessionLoggedIn, UserID: userID}
	require.NoError(t, sessions.Create(first))
	time.Sleep(2 * time.Millisecond)
	second := &models.Session{Token: "token-2", Status: models.SessionLoggedIn, UserID: userID}
	require.NoError(t, sessions.Create(second))

	latest, err := sessions.LatestByUser(userID)
	require.NoError(t, err)
	assert.Equal(t, "token-2", latest.Token)

	require.NoError(t, sessions.Revoke(latest))
	latest, err = sessions.LatestByUser(userID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionLoggedOut, latest.Status)

	_, err = sessions.LatestByUser("missing-user")
	assert.Equal(t, apperrors.CodeNotFound, errCode(t, err))
}

func TestUserRepository_FindAndEmailTaken(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)

	userID := seedUser(t, db, "lookup@test.com")

	user, err := users.FindByID(userID)
	require.NoError(t, err)
	require.NotNil(t, user.Role, "роль должна быть предзагружена")
	assert.Equal(t, models.RoleEmployer, user.Role.Name)

	byEmail, err := users.FindByEmail("lookup@test.com")
	require.NoError(t, err)
	assert.Equal(t, userID, byEmail.ID)

	taken, err := users.EmailTaken("lookup@test.com")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = users.EmailTaken("free@test.com")
	require.NoError(t, err)
	assert.False(t, taken)
}

// seedUser создает роль, статус и пользователя, возвращает id пользователя
func seedUser(t *testing.T, db *gorm.DB, email string) string {
	t.Helper()

	role := &models.Role{Name: models.RoleEmployer}
	require.NoError(t, db.Where(models.Role{Name: role.Name}).FirstOrCreate(role).Error)
	status := &models.StatusType{Name: models.StatusTypeActive}
	require.NoError(t, db.Where(models.StatusType{Name: status.Name}).FirstOrCreate(status).Error)

	user := &models.User{
		Email:        email,
		PasswordHash: "irrelevant-hash",
		RoleID:       role.ID,
		StatusTypeID: status.ID,
	}
	require.NoError(t, db.Create(user).Error)
	return user.ID
}

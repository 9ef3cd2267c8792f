package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"workforce_backend/internal/models"
	"workforce_backend/internal/repositories"
	"workforce_backend/internal/services/dto"
	"workforce_backend/pkg/apperrors"
)

func newEmployerService(t *testing.T, db *gorm.DB) EmployerService {
	t.Helper()
	return NewEmployerService(
		db,
		repositories.NewEmployerRepository(db),
		repositories.NewUserRepository(db),
		repositories.NewRepository[models.Role](db),
		repositories.NewRepository[models.StatusType](db),
		repositories.NewRepository[models.EmployerType](db),
	)
}

// seedEmployerFixtures готовит справочники, без которых регистрация невозможна
func seedEmployerFixtures(t *testing.T, db *gorm.DB) *models.EmployerType {
	t.Helper()

	for _, name := range []string{models.RoleEmployer, models.RoleEmployee, models.RoleSuperuser} {
		require.NoError(t, db.Where(models.Role{Name: name}).FirstOrCreate(&models.Role{Name: name}).Error)
	}
	for _, name := range []string{models.StatusTypeNotActive, models.StatusTypeActive} {
		require.NoError(t, db.Where(models.StatusType{Name: name}).FirstOrCreate(&models.StatusType{Name: name}).Error)
	}

	et := &models.EmployerType{Name: "LLC"}
	require.NoError(t, db.Create(et).Error)
	return et
}

func employerCreateRequest(et *models.EmployerType, email string) *dto.EmployerCreateRequest {
	return &dto.EmployerCreateRequest{
		Name:               "Acme Works",
		Address:            "Kharkiv, Sumska 3",
		Edrpou:             "11223344",
		ExpireContractDate: "2027-06-30",
		EmployerTypeID:     et.ID,
		User: dto.AccountCreate{
			Email:    email,
			Phone:    "+380631112233",
			Password: "password123",
		},
	}
}

func TestEmployerService_Create(t *testing.T) {
	db := newTestDB(t)
	et := seedEmployerFixtures(t, db)
	svc := newEmployerService(t, db)

	resp, err := svc.Create(employerCreateRequest(et, "acme@test.com"))
	require.NoError(t, err)

	// Ответ объединяет профиль и аккаунт
	assert.Equal(t, "Acme Works", resp.Name)
	assert.Equal(t, "acme@test.com", resp.Email)
	assert.Equal(t, "+380631112233", resp.Phone)
	assert.Equal(t, "2027-06-30", resp.ExpireContractDate)
	assert.NotEmpty(t, resp.UserID)

	// Аккаунт создан с ролью employer и статусом not active, пароль захеширован
	var user models.User
	require.NoError(t, db.Preload("Role").Preload("StatusType").First(&user, "id = ?", resp.UserID).Error)
	assert.Equal(t, models.RoleEmployer, user.Role.Name)
	assert.Equal(t, models.StatusTypeNotActive, user.StatusType.Name)
	assert.NotEqual(t, "password123", user.PasswordHash)
}

func TestEmployerService_Create_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	et := seedEmployerFixtures(t, db)
	svc := newEmployerService(t, db)

	_, err := svc.Create(employerCreateRequest(et, "taken@test.com"))
	require.NoError(t, err)

	_, err = svc.Create(employerCreateRequest(et, "taken@test.com"))
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrEmailAlreadyExists.Message, err.(*apperrors.AppError).Message)

	// Второй профиль не появился
	var count int64
	require.NoError(t, db.Model(&models.Employer{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestEmployerService_Create_UnknownEmployerType(t *testing.T) {
	db := newTestDB(t)
	seedEmployerFixtures(t, db)
	svc := newEmployerService(t, db)

	req := employerCreateRequest(&models.EmployerType{}, "ghost@test.com")
	req.EmployerTypeID = "missing-type-id"

	_, err := svc.Create(req)
	assert.Equal(t, apperrors.CodeNotFound, codeOf(t, err))

	// Отказ до любой записи: ни аккаунта, ни профиля
	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Zero(t, users)
}

func TestEmployerService_Update_Partial(t *testing.T) {
	db := newTestDB(t)
	et := seedEmployerFixtures(t, db)
	svc := newEmployerService(t, db)

	created, err := svc.Create(employerCreateRequest(et, "update@test.com"))
	require.NoError(t, err)

	newName := "Acme Holdings"
	newPhone := "+380997775511"
	updated, err := svc.Update(&dto.EmployerUpdateRequest{
		ID:   created.ID,
		Name: &newName,
		User: &dto.AccountUpdate{Phone: &newPhone},
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme Holdings", updated.Name)
	assert.Equal(t, "+380997775511", updated.Phone)
	// Непереданные поля не тронуты
	assert.Equal(t, "Kharkiv, Sumska 3", updated.Address)
	assert.Equal(t, "update@test.com", updated.Email)
	assert.Equal(t, "2027-06-30", updated.ExpireContractDate)
}

func TestEmployerService_Update_EmailCollision(t *testing.T) {
	db := newTestDB(t)
	et := seedEmployerFixtures(t, db)
	svc := newEmployerService(t, db)

	_, err := svc.Create(employerCreateRequest(et, "first@test.com"))
	require.NoError(t, err)
	second, err := svc.Create(employerCreateRequest(et, "second@test.com"))
	require.NoError(t, err)

	// Чужой email занять нельзя
	taken := "first@test.com"
	_, err = svc.Update(&dto.EmployerUpdateRequest{
		ID:   second.ID,
		User: &dto.AccountUpdate{Email: &taken},
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrEmailAlreadyExists.Message, err.(*apperrors.AppError).Message)

	// Свой собственный email - не коллизия
	own := "second@test.com"
	_, err = svc.Update(&dto.EmployerUpdateRequest{
		ID:   second.ID,
		User: &dto.AccountUpdate{Email: &own},
	})
	assert.NoError(t, err)
}

func TestEmployerService_Delete_Cascade(t *testing.T) {
	db := newTestDB(t)
	et := seedEmployerFixtures(t, db)
	svc := newEmployerService(t, db)

	created, err := svc.Create(employerCreateRequest(et, "delete@test.com"))
	require.NoError(t, err)

	// Активная сессия тоже должна исчезнуть
	session := &models.Session{Token: "some-token", Status: models.SessionLoggedIn, UserID: created.UserID}
	require.NoError(t, db.Create(session).Error)

	require.NoError(t, svc.Delete(created.ID))

	var users, sessions, employers int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Session{}).Count(&sessions).Error)
	require.NoError(t, db.Model(&models.Employer{}).Count(&employers).Error)
	assert.Zero(t, users)
	assert.Zero(t, sessions)
	assert.Zero(t, employers)

	// Повторное удаление - NotFound
	assert.Equal(t, apperrors.CodeNotFound, codeOf(t, svc.Delete(created.ID)))
}

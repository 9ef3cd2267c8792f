package repositories

import (
	"errors"

	"gorm.io/gorm"

	"workforce_backend/internal/models"
	"workforce_backend/pkg/apperrors"
)

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	EmailTaken(email string) (bool, error)
	Base() *Repository[models.User]
}

type UserRepositoryImpl struct {
	base *Repository[models.User]
	db   *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{
		base: NewRepository[models.User](db),
		db:   db,
	}
}

// Base отдает обобщенный репозиторий для операций внутри транзакций менеджеров
func (r *UserRepositoryImpl) Base() *Repository[models.User] {
	return r.base
}

// FindByID загружает пользователя вместе с ролью и статусом
func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Role").Preload("StatusType").
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("User")
		}
		return nil, apperrors.StorageError(err)
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Role").Preload("StatusType").
		First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("User")
		}
		return nil, apperrors.StorageError(err)
	}
	return &user, nil
}

// EmailTaken - проверка уникальности до любой записи в рамках создания аккаунта
func (r *UserRepositoryImpl) EmailTaken(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, apperrors.StorageError(err)
	}
	return count > 0, nil
}

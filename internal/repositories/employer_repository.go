package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"workforce_backend/internal/models"
	"workforce_backend/pkg/apperrors"
)

// EmployerRepository поверх обобщенного репозитория добавляет выборки
// с предзагруженным аккаунтом: ответы профиля объединяют поля двух таблиц.
type EmployerRepository interface {
	FindWithUser(id string) (*models.Employer, error)
	ListWithUser(skip, limit int) ([]models.Employer, error)
	SearchWithUser(parameter, keyword string, skip, limit int) ([]models.Employer, error)
	Base() *Repository[models.Employer]
}

type EmployerRepositoryImpl struct {
	base *Repository[models.Employer]
	db   *gorm.DB
}

func NewEmployerRepository(db *gorm.DB) EmployerRepository {
	return &EmployerRepositoryImpl{
		base: NewRepository[models.Employer](db),
		db:   db,
	}
}

func (r *EmployerRepositoryImpl) Base() *Repository[models.Employer] {
	return r.base
}

func (r *EmployerRepositoryImpl) FindWithUser(id string) (*models.Employer, error) {
	var obj models.Employer
	err := r.db.Preload("User").First(&obj, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("Employer")
		}
		return nil, apperrors.StorageError(err)
	}
	return &obj, nil
}

func (r *EmployerRepositoryImpl) ListWithUser(skip, limit int) ([]models.Employer, error) {
	if limit <= 0 {
		limit = 100
	}
	objs := make([]models.Employer, 0)
	err := r.db.Preload("User").Order("created_at, id").Offset(skip).Limit(limit).Find(&objs).Error
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return objs, nil
}

func (r *EmployerRepositoryImpl) SearchWithUser(parameter, keyword string, skip, limit int) ([]models.Employer, error) {
	col, err := r.base.column(parameter)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 100
	}
	objs := make([]models.Employer, 0)
	err = r.db.Preload("User").
		Where(fmt.Sprintf("%s LIKE ?", col), "%"+keyword+"%").
		Order("created_at, id").
		Offset(skip).Limit(limit).
		Find(&objs).Error
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return objs, nil
}

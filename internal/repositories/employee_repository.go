package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"workforce_backend/internal/models"
	"workforce_backend/pkg/apperrors"
)

type EmployeeRepository interface {
	FindWithUser(id string) (*models.Employee, error)
	ListWithUser(skip, limit int) ([]models.Employee, error)
	SearchWithUser(parameter, keyword string, skip, limit int) ([]models.Employee, error)
	Base() *Repository[models.Employee]
}

type EmployeeRepositoryImpl struct {
	base *Repository[models.Employee]
	db   *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &EmployeeRepositoryImpl{
		base: NewRepository[models.Employee](db),
		db:   db,
	}
}

func (r *EmployeeRepositoryImpl) Base() *Repository[models.Employee] {
	return r.base
}

func (r *EmployeeRepositoryImpl) FindWithUser(id string) (*models.Employee, error) {
	var obj models.Employee
	err := r.db.Preload("User").First(&obj, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("Employee")
		}
		return nil, apperrors.StorageError(err)
	}
	return &obj, nil
}

func (r *EmployeeRepositoryImpl) ListWithUser(skip, limit int) ([]models.Employee, error) {
	if limit <= 0 {
		limit = 100
	}
	objs := make([]models.Employee, 0)
	err := r.db.Preload("User").Order("created_at, id").Offset(skip).Limit(limit).Find(&objs).Error
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return objs, nil
}

func (r *EmployeeRepositoryImpl) SearchWithUser(parameter, keyword string, skip, limit int) ([]models.Employee, error) {
	col, err := r.base.column(parameter)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 100
	}
	objs := make([]models.Employee, 0)
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

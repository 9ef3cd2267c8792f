package services

import (
	"gorm.io/gorm"

	"workforce_backend/internal/auth"
	"workforce_backend/internal/models"
	"workforce_backend/internal/repositories"
	"workforce_backend/internal/services/dto"
	"workforce_backend/pkg/apperrors"
)

type EmployeeService interface {
	FetchOne(id string) (*dto.EmployeeResponse, error)
	FetchAll(skip, limit int) ([]dto.EmployeeResponse, error)
	Search(parameter, keyword string, skip, limit int) ([]dto.EmployeeResponse, error)
	Create(req *dto.EmployeeCreateRequest) (*dto.EmployeeResponse, error)
	Update(req *dto.EmployeeUpdateRequest) (*dto.EmployeeResponse, error)
	Delete(id string) error
}

type EmployeeServiceImpl struct {
	db          *gorm.DB
	employees   repositories.EmployeeRepository
	employers   repositories.EmployerRepository
	users       repositories.UserRepository
	roles       *repositories.Repository[models.Role]
	statusTypes *repositories.Repository[models.StatusType]
}

func NewEmployeeService(
	db *gorm.DB,
	employees repositories.EmployeeRepository,
	employers repositories.EmployerRepository,
	users repositories.UserRepository,
	roles *repositories.Repository[models.Role],
	statusTypes *repositories.Repository[models.StatusType],
) EmployeeService {
	return &EmployeeServiceImpl{
		db:          db,
		employees:   employees,
		employers:   employers,
		users:       users,
		roles:       roles,
		statusTypes: statusTypes,
	}
}

func (s *EmployeeServiceImpl) FetchOne(id string) (*dto.EmployeeResponse, error) {
	obj, err := s.employees.FindWithUser(id)
	if err != nil {
		return nil, err
	}
	return employeeResponse(obj), nil
}

func (s *EmployeeServiceImpl) FetchAll(skip, limit int) ([]dto.EmployeeResponse, error) {
	objs, err := s.employees.ListWithUser(skip, limit)
	if err != nil {
		return nil, err
	}
	return employeeResponses(objs), nil
}

func (s *EmployeeServiceImpl) Search(parameter, keyword string, skip, limit int) ([]dto.EmployeeResponse, error) {
	objs, err := s.employees.SearchWithUser(parameter, keyword, skip, limit)
	if err != nil {
		return nil, err
	}
	return employeeResponses(objs), nil
}

// Create заводит сотрудника вместе с аккаунтом в одной транзакции,
// по той же схеме, что и регистрация работодателя
func (s *EmployeeServiceImpl) Create(req *dto.EmployeeCreateRequest) (*dto.EmployeeResponse, error) {
	taken, err := s.users.EmailTaken(req.User.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	if _, err := s.employers.Base().Get(req.EmployerID); err != nil {
		return nil, err
	}
	role, err := s.roles.GetByAttribute(map[string]any{"name": models.RoleEmployee})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	statusType, err := s.statusTypes.GetByAttribute(map[string]any{"name": models.StatusTypeNotActive})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(req.User.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	birthDate, err := dto.ParseDate(req.BirthDate)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        req.User.Email,
		PasswordHash: hash,
		Phone:        req.User.Phone,
		RoleID:       role.ID,
		StatusTypeID: statusType.ID,
	}
	employee := &models.Employee{
		Fullname:   req.Fullname,
		Passport:   req.Passport,
		TaxID:      req.TaxID,
		BirthDate:  birthDate,
		EmployerID: req.EmployerID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.users.Base().WithTx(tx).Create(user); err != nil {
			return err
		}
		employee.UserID = user.ID
		return s.employees.Base().WithTx(tx).Create(employee)
	})
	if err != nil {
		return nil, err
	}

	employee.User = user
	return employeeResponse(employee), nil
}

func (s *EmployeeServiceImpl) Update(req *dto.EmployeeUpdateRequest) (*dto.EmployeeResponse, error) {
	obj, err := s.employees.FindWithUser(req.ID)
	if err != nil {
		return nil, err
	}

	userFields := map[string]any{}
	if req.User != nil {
		if req.User.Email != nil {
			existing, err := s.users.FindByEmail(*req.User.Email)
			if err == nil && existing.ID != obj.UserID {
				return nil, apperrors.ErrEmailAlreadyExists
			}
			if err != nil {
				if appErr, ok := apperrors.AsAppError(err); !ok || appErr.Code != apperrors.CodeNotFound {
					return nil, err
				}
			}
			userFields["email"] = *req.User.Email
		}
		if req.User.Phone != nil {
			userFields["phone"] = *req.User.Phone
		}
	}

	profileFields := map[string]any{}
	if req.Fullname != nil {
		profileFields["fullname"] = *req.Fullname
	}
	if req.Passport != nil {
		profileFields["passport"] = *req.Passport
	}
	if req.TaxID != nil {
		profileFields["tax_id"] = *req.TaxID
	}
	if req.EmployerID != nil {
		if _, err := s.employers.Base().Get(*req.EmployerID); err != nil {
			return nil, err
		}
		profileFields["employer_id"] = *req.EmployerID
	}
	if err := putDateField(profileFields, "birth_date", req.BirthDate); err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if len(userFields) > 0 {
			if err := s.users.Base().WithTx(tx).Update(obj.User, userFields); err != nil {
				return err
			}
		}
		return s.employees.Base().WithTx(tx).Update(obj, profileFields)
	})
	if err != nil {
		return nil, err
	}

	return s.FetchOne(req.ID)
}

// Delete убирает сотрудника, его платежные данные, аккаунт и сессии
func (s *EmployeeServiceImpl) Delete(id string) error {
	obj, err := s.employees.Base().Get(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", id).Delete(&models.Payment{}).Error; err != nil {
			return apperrors.StorageError(err)
		}
		if err := tx.Where("employee_id = ?", id).Delete(&models.PaymentMethod{}).Error; err != nil {
			return apperrors.StorageError(err)
		}
		if err := tx.Where("user_id = ?", obj.UserID).Delete(&models.Session{}).Error; err != nil {
			return apperrors.StorageError(err)
		}
		if err := s.employees.Base().WithTx(tx).Delete(id); err != nil {
			return err
		}
		return s.users.Base().WithTx(tx).Delete(obj.UserID)
	})
}

func employeeResponse(obj *models.Employee) *dto.EmployeeResponse {
	resp := &dto.EmployeeResponse{
		ID:         obj.ID,
		Fullname:   obj.Fullname,
		Passport:   obj.Passport,
		TaxID:      obj.TaxID,
		BirthDate:  dto.FormatDate(obj.BirthDate),
		EmployerID: obj.EmployerID,
		UserID:     obj.UserID,
	}
	if obj.User != nil {
		resp.Email = obj.User.Email
		resp.Phone = obj.User.Phone
	}
	return resp
}

func employeeResponses(objs []models.Employee) []dto.EmployeeResponse {
	results := make([]dto.EmployeeResponse, 0, len(objs))
	for i := range objs {
		results = append(results, *employeeResponse(&objs[i]))
	}
	return results
}

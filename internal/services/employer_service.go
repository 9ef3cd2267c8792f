package services

import (
	"gorm.io/gorm"

	"workforce_backend/internal/auth"
	"workforce_backend/internal/models"
	"workforce_backend/internal/repositories"
	"workforce_backend/internal/services/dto"
	"workforce_backend/pkg/apperrors"
)

type EmployerService interface {
	FetchOne(id string) (*dto.EmployerResponse, error)
	FetchAll(skip, limit int) ([]dto.EmployerResponse, error)
	Search(parameter, keyword string, skip, limit int) ([]dto.EmployerResponse, error)
	Create(req *dto.EmployerCreateRequest) (*dto.EmployerResponse, error)
	Update(req *dto.EmployerUpdateRequest) (*dto.EmployerResponse, error)
	Delete(id string) error
}

type EmployerServiceImpl struct {
	db            *gorm.DB
	employers     repositories.EmployerRepository
	users         repositories.UserRepository
	roles         *repositories.Repository[models.Role]
	statusTypes   *repositories.Repository[models.StatusType]
	employerTypes *repositories.Repository[models.EmployerType]
}

func NewEmployerService(
	db *gorm.DB,
	employers repositories.EmployerRepository,
	users repositories.UserRepository,
	roles *repositories.Repository[models.Role],
	statusTypes *repositories.Repository[models.StatusType],
	employerTypes *repositories.Repository[models.EmployerType],
) EmployerService {
	return &EmployerServiceImpl{
		db:            db,
		employers:     employers,
		users:         users,
		roles:         roles,
		statusTypes:   statusTypes,
		employerTypes: employerTypes,
	}
}

func (s *EmployerServiceImpl) FetchOne(id string) (*dto.EmployerResponse, error) {
	obj, err := s.employers.FindWithUser(id)
	if err != nil {
		return nil, err
	}
	return employerResponse(obj), nil
}

func (s *EmployerServiceImpl) FetchAll(skip, limit int) ([]dto.EmployerResponse, error) {
	objs, err := s.employers.ListWithUser(skip, limit)
	if err != nil {
		return nil, err
	}
	return employerResponses(objs), nil
}

func (s *EmployerServiceImpl) Search(parameter, keyword string, skip, limit int) ([]dto.EmployerResponse, error) {
	objs, err := s.employers.SearchWithUser(parameter, keyword, skip, limit)
	if err != nil {
		return nil, err
	}
	return employerResponses(objs), nil
}

// Create регистрирует работодателя вместе с аккаунтом.
// Коллизия email отклоняется до любой записи; аккаунт и профиль
// создаются в одной транзакции - по отдельности они не коммитятся.
func (s *EmployerServiceImpl) Create(req *dto.EmployerCreateRequest) (*dto.EmployerResponse, error) {
	taken, err := s.users.EmailTaken(req.User.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	role, err := s.roles.GetByAttribute(map[string]any{"name": models.RoleEmployer})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	statusType, err := s.statusTypes.GetByAttribute(map[string]any{"name": models.StatusTypeNotActive})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if _, err := s.employerTypes.Get(req.EmployerTypeID); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.User.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	expireContract, err := dto.ParseDate(req.ExpireContractDate)
	if err != nil {
		return nil, err
	}
	salaryDate, err := dto.ParseDate(req.SalaryDate)
	if err != nil {
		return nil, err
	}
	prepaymentDate, err := dto.ParseDate(req.PrepaymentDate)
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
	employer := &models.Employer{
		Name:               req.Name,
		Address:            req.Address,
		Edrpou:             req.Edrpou,
		ExpireContractDate: expireContract,
		SalaryDate:         salaryDate,
		PrepaymentDate:     prepaymentDate,
		EmployerTypeID:     req.EmployerTypeID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.users.Base().WithTx(tx).Create(user); err != nil {
			return err
		}
		employer.UserID = user.ID
		return s.employers.Base().WithTx(tx).Create(employer)
	})
	if err != nil {
		return nil, err
	}

	employer.User = user
	return employerResponse(employer), nil
}

// Update меняет поля профиля и аккаунта одной транзакцией.
// Email, занятый ЧУЖИМ аккаунтом, отклоняется.
func (s *EmployerServiceImpl) Update(req *dto.EmployerUpdateRequest) (*dto.EmployerResponse, error) {
	obj, err := s.employers.FindWithUser(req.ID)
	if err != nil {
		return nil, err
	}

	userFields, err := s.userUpdateFields(obj.UserID, req.User)
	if err != nil {
		return nil, err
	}
	profileFields, err := s.profileUpdateFields(req)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if len(userFields) > 0 {
			if err := s.users.Base().WithTx(tx).Update(obj.User, userFields); err != nil {
				return err
			}
		}
		return s.employers.Base().WithTx(tx).Update(obj, profileFields)
	})
	if err != nil {
		return nil, err
	}

	return s.FetchOne(req.ID)
}

// Delete убирает профиль, его аккаунт и сессии аккаунта как одно целое
func (s *EmployerServiceImpl) Delete(id string) error {
	obj, err := s.employers.Base().Get(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", obj.UserID).Delete(&models.Session{}).Error; err != nil {
			return apperrors.StorageError(err)
		}
		if err := s.employers.Base().WithTx(tx).Delete(id); err != nil {
			return err
		}
		return s.users.Base().WithTx(tx).Delete(obj.UserID)
	})
}

func (s *EmployerServiceImpl) userUpdateFields(userID string, account *dto.AccountUpdate) (map[string]any, error) {
	fields := map[string]any{}
	if account == nil {
		return fields, nil
	}
	if account.Email != nil {
		existing, err := s.users.FindByEmail(*account.Email)
		if err == nil && existing.ID != userID {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		if err != nil {
			if appErr, ok := apperrors.AsAppError(err); !ok || appErr.Code != apperrors.CodeNotFound {
				return nil, err
			}
		}
		fields["email"] = *account.Email
	}
	if account.Phone != nil {
		fields["phone"] = *account.Phone
	}
	return fields, nil
}

func (s *EmployerServiceImpl) profileUpdateFields(req *dto.EmployerUpdateRequest) (map[string]any, error) {
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.Edrpou != nil {
		fields["edrpou"] = *req.Edrpou
	}
	if req.EmployerTypeID != nil {
		if _, err := s.employerTypes.Get(*req.EmployerTypeID); err != nil {
			return nil, err
		}
		fields["employer_type_id"] = *req.EmployerTypeID
	}
	if err := putDateField(fields, "expire_contract_date", req.ExpireContractDate); err != nil {
		return nil, err
	}
	if err := putDateField(fields, "salary_date", req.SalaryDate); err != nil {
		return nil, err
	}
	if err := putDateField(fields, "prepayment_date", req.PrepaymentDate); err != nil {
		return nil, err
	}
	return fields, nil
}

func putDateField(fields map[string]any, column string, value *string) error {
	if value == nil {
		return nil
	}
	parsed, err := dto.ParseDate(*value)
	if err != nil {
		return err
	}
	// пустая строка очищает дату
	fields[column] = parsed
	return nil
}

func employerResponse(obj *models.Employer) *dto.EmployerResponse {
	resp := &dto.EmployerResponse{
		ID:                 obj.ID,
		Name:               obj.Name,
		Address:            obj.Address,
		Edrpou:             obj.Edrpou,
		ExpireContractDate: dto.FormatDate(obj.ExpireContractDate),
		SalaryDate:         dto.FormatDate(obj.SalaryDate),
		PrepaymentDate:     dto.FormatDate(obj.PrepaymentDate),
		EmployerTypeID:     obj.EmployerTypeID,
		UserID:             obj.UserID,
	}
	if obj.User != nil {
		resp.Email = obj.User.Email
		resp.Phone = obj.User.Phone
	}
	return resp
}

func employerResponses(objs []models.Employer) []dto.EmployerResponse {
	results := make([]dto.EmployerResponse, 0, len(objs))
	for i := range objs {
		results = append(results, *employerResponse(&objs[i]))
	}
	return results
}

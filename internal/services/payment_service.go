package services

import (
	"workforce_backend/internal/models"
	"workforce_backend/internal/repositories"
	"workforce_backend/internal/services/dto"
	"workforce_backend/pkg/apperrors"
)

// PaymentService покрывает платежные методы и историю выплат
type PaymentService interface {
	FetchMethod(id string) (*models.PaymentMethod, error)
	FetchMethods(skip, limit int) ([]models.PaymentMethod, error)
	CreateMethod(req *dto.PaymentMethodCreateRequest) (*models.PaymentMethod, error)
	UpdateMethod(req *dto.PaymentMethodUpdateRequest) (*models.PaymentMethod, error)
	DeleteMethod(id string) error

	FetchPayment(id string) (*models.Payment, error)
	FetchPayments(skip, limit int) ([]models.Payment, error)
	CreatePayment(req *dto.PaymentCreateRequest) (*models.Payment, error)
	UpdatePayment(req *dto.PaymentUpdateRequest) (*models.Payment, error)
	DeletePayment(id string) error
}

type PaymentServiceImpl struct {
	methods         *repositories.Repository[models.PaymentMethod]
	payments        *repositories.Repository[models.Payment]
	banks           *repositories.Repository[models.Bank]
	employees       repositories.EmployeeRepository
	paymentStatuses *repositories.Repository[models.PaymentStatus]
}

func NewPaymentService(
	methods *repositories.Repository[models.PaymentMethod],
	payments *repositories.Repository[models.Payment],
	banks *repositories.Repository[models.Bank],
	employees repositories.EmployeeRepository,
	paymentStatuses *repositories.Repository[models.PaymentStatus],
) PaymentService {
	return &PaymentServiceImpl{
		methods:         methods,
		payments:        payments,
		banks:           banks,
		employees:       employees,
		paymentStatuses: paymentStatuses,
	}
}

func (s *PaymentServiceImpl) FetchMethod(id string) (*models.PaymentMethod, error) {
	return s.methods.Get(id)
}

func (s *PaymentServiceImpl) FetchMethods(skip, limit int) ([]models.PaymentMethod, error) {
	return s.methods.GetMulti(skip, limit)
}

func (s *PaymentServiceImpl) CreateMethod(req *dto.PaymentMethodCreateRequest) (*models.PaymentMethod, error) {
	if _, err := s.employees.Base().Get(req.EmployeeID); err != nil {
		return nil, err
	}
	if _, err := s.banks.Get(req.BankID); err != nil {
		return nil, err
	}
	method := &models.PaymentMethod{
		IsDefault:  req.IsDefault,
		IsActive:   req.IsActive,
		EmployeeID: req.EmployeeID,
		BankID:     req.BankID,
	}
	if err := s.methods.Create(method); err != nil {
		return nil, err
	}
	return method, nil
}

func (s *PaymentServiceImpl) UpdateMethod(req *dto.PaymentMethodUpdateRequest) (*models.PaymentMethod, error) {
	method, err := s.methods.Get(req.ID)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.IsDefault != nil {
		fields["is_default"] = *req.IsDefault
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if req.BankID != nil {
		if _, err := s.banks.Get(*req.BankID); err != nil {
			return nil, err
		}
		fields["bank_id"] = *req.BankID
	}

	if err := s.methods.Update(method, fields); err != nil {
		return nil, err
	}
	return s.methods.Get(req.ID)
}

func (s *PaymentServiceImpl) DeleteMethod(id string) error {
	return s.methods.Delete(id)
}

func (s *PaymentServiceImpl) FetchPayment(id string) (*models.Payment, error) {
	return s.payments.Get(id)
}

func (s *PaymentServiceImpl) FetchPayments(skip, limit int) ([]models.Payment, error) {
	return s.payments.GetMulti(skip, limit)
}

// CreatePayment проверяет все внешние ссылки; статус по умолчанию - pending
func (s *PaymentServiceImpl) CreatePayment(req *dto.PaymentCreateRequest) (*models.Payment, error) {
	if _, err := s.employees.Base().Get(req.EmployeeID); err != nil {
		return nil, err
	}
	method, err := s.methods.Get(req.PaymentMethodID)
	if err != nil {
		return nil, err
	}
	if method.EmployeeID != req.EmployeeID {
		return nil, apperrors.NewBadRequestError("Payment method belongs to another employee")
	}

	statusID := req.PaymentStatusID
	if statusID == "" {
		pending, err := s.paymentStatuses.GetByAttribute(map[string]any{"name": models.PaymentStatusPending})
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		statusID = pending.ID
	} else if _, err := s.paymentStatuses.Get(statusID); err != nil {
		return nil, err
	}

	executionDate, err := dto.ParseDate(req.ExecutionDate)
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		Amount:          req.Amount,
		ExecutionDate:   executionDate,
		EmployeeID:      req.EmployeeID,
		PaymentStatusID: statusID,
		PaymentMethodID: req.PaymentMethodID,
	}
	if err := s.payments.Create(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *PaymentServiceImpl) UpdatePayment(req *dto.PaymentUpdateRequest) (*models.Payment, error) {
	payment, err := s.payments.Get(req.ID)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Amount != nil {
		fields["amount"] = *req.Amount
	}
	if req.PaymentStatusID != nil {
		if _, err := s.paymentStatuses.Get(*req.PaymentStatusID); err != nil {
			return nil, err
		}
		fields["payment_status_id"] = *req.PaymentStatusID
	}
	if err := putDateField(fields, "execution_date", req.ExecutionDate); err != nil {
		return nil, err
	}

	if err := s.payments.Update(payment, fields); err != nil {
		return nil, err
	}
	return s.payments.Get(req.ID)
}

func (s *PaymentServiceImpl) DeletePayment(id string) error {
	return s.payments.Delete(id)
}

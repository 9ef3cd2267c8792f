package handlers

import (
	"workforce_backend/internal/models"
	"workforce_backend/internal/services"
	"workforce_backend/internal/validator"
)

// AppHandlers содержит все хэндлеры приложения
type AppHandlers struct {
	Auth      *AuthHandler
	Employers *EmployerHandler
	Employees *EmployeeHandler
	Banks     *BankHandler
	Payments  *PaymentHandler

	Roles           *LookupHandler[models.Role]
	StatusTypes     *LookupHandler[models.StatusType]
	EmployerTypes   *LookupHandler[models.EmployerType]
	AccountTypes    *LookupHandler[models.AccountType]
	PaymentStatuses *LookupHandler[models.PaymentStatus]
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:      NewAuthHandler(base, sc.Auth),
		Employers: NewEmployerHandler(base, sc.Employers),
		Employees: NewEmployeeHandler(base, sc.Employees),
		Banks:     NewBankHandler(base, sc.Banks),
		Payments:  NewPaymentHandler(base, sc.Payments),

		Roles:           NewLookupHandler(base, sc.Roles),
		StatusTypes:     NewLookupHandler(base, sc.StatusTypes),
		EmployerTypes:   NewLookupHandler(base, sc.EmployerTypes),
		AccountTypes:    NewLookupHandler(base, sc.AccountTypes),
		PaymentStatuses: NewLookupHandler(base, sc.PaymentStatuses),
	}
}

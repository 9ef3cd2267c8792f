package services

import (
	"gorm.io/gorm"

	"workforce_backend/internal/auth"
	"workforce_backend/internal/models"
	"workforce_backend/internal/repositories"
)

// ServiceContainer содержит все сервисы приложения.
// Собирается один раз на старте, зависимости передаются явно.
type ServiceContainer struct {
	Auth      AuthService
	Employers EmployerService
	Employees EmployeeService
	Banks     BankService
	Payments  PaymentService

	Roles           *LookupService[models.Role]
	StatusTypes     *LookupService[models.StatusType]
	EmployerTypes   *LookupService[models.EmployerType]
	AccountTypes    *LookupService[models.AccountType]
	PaymentStatuses *LookupService[models.PaymentStatus]
}

func NewServiceContainer(db *gorm.DB, issuer *auth.TokenIssuer) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	employerRepo := repositories.NewEmployerRepository(db)
	employeeRepo := repositories.NewEmployeeRepository(db)

	roleRepo := repositories.NewRepository[models.Role](db)
	statusTypeRepo := repositories.NewRepository[models.StatusType](db)
	employerTypeRepo := repositories.NewRepository[models.EmployerType](db)
	accountTypeRepo := repositories.NewRepository[models.AccountType](db)
	paymentStatusRepo := repositories.NewRepository[models.PaymentStatus](db)
	bankRepo := repositories.NewRepository[models.Bank](db)
	methodRepo := repositories.NewRepository[models.PaymentMethod](db)
	paymentRepo := repositories.NewRepository[models.Payment](db)

	return &ServiceContainer{
		Auth:      NewAuthService(userRepo, sessionRepo, issuer),
		Employers: NewEmployerService(db, employerRepo, userRepo, roleRepo, statusTypeRepo, employerTypeRepo),
		Employees: NewEmployeeService(db, employeeRepo, employerRepo, userRepo, roleRepo, statusTypeRepo),
		Banks:     NewBankService(bankRepo, accountTypeRepo),
		Payments:  NewPaymentService(methodRepo, paymentRepo, bankRepo, employeeRepo, paymentStatusRepo),

		Roles: NewLookupService(roleRepo,
			func(name string) *models.Role { return &models.Role{Name: name} },
			func(obj *models.Role) string { return obj.Name }),
		StatusTypes: NewLookupService(statusTypeRepo,
			func(name string) *models.StatusType { return &models.StatusType{Name: name} },
			func(obj *models.StatusType) string { return obj.Name }),
		EmployerTypes: NewLookupService(employerTypeRepo,
			func(name string) *models.EmployerType { return &models.EmployerType{Name: name} },
			func(obj *models.EmployerType) string { return obj.Name }),
		AccountTypes: NewLookupService(accountTypeRepo,
			func(name string) *models.AccountType { return &models.AccountType{Name: name} },
			func(obj *models.AccountType) string { return obj.Name }),
		PaymentStatuses: NewLookupService(paymentStatusRepo,
			func(name string) *models.PaymentStatus { return &models.PaymentStatus{Name: name} },
			func(obj *models.PaymentStatus) string { return obj.Name }),
	}
}

package dto

// Общие DTO для справочников с единственным уникальным именем
// (Role, StatusType, EmployerType, AccountType, PaymentStatus)

type LookupCreateRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

type LookupUpdateRequest struct {
	ID   string `json:"id" validate:"required,uuid4"`
	Name string `json:"name" validate:"required,max=50"`
}

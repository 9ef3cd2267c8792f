package dto

type PaymentMethodCreateRequest struct {
	IsDefault  bool   `json:"is_default"`
	IsActive   bool   `json:"is_active"`
	EmployeeID string `json:"employee_id" validate:"required,uuid4"`
	BankID     string `json:"bank_id" validate:"required,uuid4"`
}

type PaymentMethodUpdateRequest struct {
	ID        string  `json:"id" validate:"required,uuid4"`
	IsDefault *bool   `json:"is_default,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
	BankID    *string `json:"bank_id,omitempty" validate:"omitempty,uuid4"`
}

type PaymentCreateRequest struct {
	Amount          int64  `json:"amount" validate:"required,gt=0"`
	ExecutionDate   string `json:"execution_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EmployeeID      string `json:"employee_id" validate:"required,uuid4"`
	PaymentMethodID string `json:"payment_method_id" validate:"required,uuid4"`
	PaymentStatusID string `json:"payment_status_id,omitempty" validate:"omitempty,uuid4"`
}

type PaymentUpdateRequest struct {
	ID              string  `json:"id" validate:"required,uuid4"`
	Amount          *int64  `json:"amount,omitempty" validate:"omitempty,gt=0"`
	ExecutionDate   *string `json:"execution_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PaymentStatusID *string `json:"payment_status_id,omitempty" validate:"omitempty,uuid4"`
}

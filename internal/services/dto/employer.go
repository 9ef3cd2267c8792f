package dto

type EmployerCreateRequest struct {
	Name               string        `json:"name" validate:"required,max=100"`
	Address            string        `json:"address" validate:"required,max=100"`
	Edrpou             string        `json:"edrpou" validate:"required,max=50"`
	ExpireContractDate string        `json:"expire_contract_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	SalaryDate         string        `json:"salary_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PrepaymentDate     string        `json:"prepayment_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EmployerTypeID     string        `json:"employer_type_id" validate:"required,uuid4"`
	User               AccountCreate `json:"user" validate:"required"`
}

type EmployerUpdateRequest struct {
	ID                 string         `json:"id" validate:"required,uuid4"`
	Name               *string        `json:"name,omitempty" validate:"omitempty,max=100"`
	Address            *string        `json:"address,omitempty" validate:"omitempty,max=100"`
	Edrpou             *string        `json:"edrpou,omitempty" validate:"omitempty,max=50"`
	ExpireContractDate *string        `json:"expire_contract_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	SalaryDate         *string        `json:"salary_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PrepaymentDate     *string        `json:"prepayment_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EmployerTypeID     *string        `json:"employer_type_id,omitempty" validate:"omitempty,uuid4"`
	User               *AccountUpdate `json:"user,omitempty"`
}

// EmployerResponse объединяет поля профиля и связанного аккаунта
type EmployerResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Address            string `json:"address"`
	Edrpou             string `json:"edrpou"`
	ExpireContractDate string `json:"expire_contract_date,omitempty"`
	SalaryDate         string `json:"salary_date,omitempty"`
	PrepaymentDate     string `json:"prepayment_date,omitempty"`
	EmployerTypeID     string `json:"employer_type_id"`
	UserID             string `json:"user_id"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
}

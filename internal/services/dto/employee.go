package dto

type EmployeeCreateRequest struct {
	Fullname   string        `json:"fullname" validate:"required,max=100"`
	Passport   string        `json:"passport,omitempty" validate:"omitempty,max=50"`
	TaxID      string        `json:"tax_id,omitempty" validate:"omitempty,max=50"`
	BirthDate  string        `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EmployerID string        `json:"employer_id" validate:"required,uuid4"`
	User       AccountCreate `json:"user" validate:"required"`
}

type EmployeeUpdateRequest struct {
	ID         string         `json:"id" validate:"required,uuid4"`
	Fullname   *string        `json:"fullname,omitempty" validate:"omitempty,max=100"`
	Passport   *string        `json:"passport,omitempty" validate:"omitempty,max=50"`
	TaxID      *string        `json:"tax_id,omitempty" validate:"omitempty,max=50"`
	BirthDate  *string        `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EmployerID *string        `json:"employer_id,omitempty" validate:"omitempty,uuid4"`
	User       *AccountUpdate `json:"user,omitempty"`
}

type EmployeeResponse struct {
	ID         string `json:"id"`
	Fullname   string `json:"fullname"`
	Passport   string `json:"passport,omitempty"`
	TaxID      string `json:"tax_id,omitempty"`
	BirthDate  string `json:"birth_date,omitempty"`
	EmployerID string `json:"employer_id"`
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

package dto

type BankCreateRequest struct {
	Name          string `json:"name" validate:"required,max=50"`
	Edrpou        string `json:"edrpou,omitempty" validate:"omitempty,max=50"`
	Mfo           string `json:"mfo,omitempty" validate:"omitempty,max=50"`
	Iban          string `json:"iban,omitempty" validate:"omitempty,max=50"`
	Card          string `json:"card,omitempty" validate:"omitempty,max=50"`
	AccountTypeID string `json:"account_type_id" validate:"required,uuid4"`
}

type BankUpdateRequest struct {
	ID            string  `json:"id" validate:"required,uuid4"`
	Name          *string `json:"name,omitempty" validate:"omitempty,max=50"`
	Edrpou        *string `json:"edrpou,omitempty" validate:"omitempty,max=50"`
	Mfo           *string `json:"mfo,omitempty" validate:"omitempty,max=50"`
	Iban          *string `json:"iban,omitempty" validate:"omitempty,max=50"`
	Card          *string `json:"card,omitempty" validate:"omitempty,max=50"`
	AccountTypeID *string `json:"account_type_id,omitempty" validate:"omitempty,uuid4"`
}

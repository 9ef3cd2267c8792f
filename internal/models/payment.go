package models

import "time"

type Bank struct {
	BaseModel
	Name          string `gorm:"size:50;not null" json:"name"`
	Edrpou        string `gorm:"size:50" json:"edrpou"`
	Mfo           string `gorm:"size:50" json:"mfo"`
	Iban          string `gorm:"size:50" json:"iban"`
	Card          string `gorm:"size:50" json:"card"`
	AccountTypeID string `gorm:"type:uuid;not null;index" json:"account_type_id"`

	AccountType    *AccountType    `gorm:"foreignKey:AccountTypeID" json:"-"`
	PaymentMethods []PaymentMethod `gorm:"foreignKey:BankID" json:"-"`
}

type PaymentMethod struct {
	BaseModel
	IsDefault  bool   `gorm:"default:false" json:"is_default"`
	IsActive   bool   `gorm:"default:false" json:"is_active"`
	EmployeeID string `gorm:"type:uuid;not null;index" json:"employee_id"`
	BankID     string `gorm:"type:uuid;not null;index" json:"bank_id"`

	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"-"`
	Bank     *Bank     `gorm:"foreignKey:BankID" json:"-"`
	Payments []Payment `gorm:"foreignKey:PaymentMethodID" json:"-"`
}

// Payment - строка истории выплат. Amount хранится в копейках.
type Payment struct {
	BaseModel
	Amount          int64      `gorm:"not null" json:"amount"`
	ExecutionDate   *time.Time `json:"execution_date,omitempty"`
	EmployeeID      string     `gorm:"type:uuid;not null;index" json:"employee_id"`
	PaymentStatusID string     `gorm:"type:uuid;not null;index" json:"payment_status_id"`
	PaymentMethodID string     `gorm:"type:uuid;not null;index" json:"payment_method_id"`

	Employee      *Employee      `gorm:"foreignKey:EmployeeID" json:"-"`
	PaymentStatus *PaymentStatus `gorm:"foreignKey:PaymentStatusID" json:"-"`
	PaymentMethod *PaymentMethod `gorm:"foreignKey:PaymentMethodID" json:"-"`
}

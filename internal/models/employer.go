package models

import "time"

type Employer struct {
	BaseModel
	Name               string     `gorm:"size:100;not null" json:"name"`
	Address            string     `gorm:"size:100" json:"address"`
	Edrpou             string     `gorm:"size:50;index" json:"edrpou"`
	ExpireContractDate *time.Time `gorm:"type:date" json:"expire_contract_date,omitempty"`
	SalaryDate         *time.Time `gorm:"type:date" json:"salary_date,omitempty"`
	PrepaymentDate     *time.Time `gorm:"type:date" json:"prepayment_date,omitempty"`
	EmployerTypeID     string     `gorm:"type:uuid;not null;index" json:"employer_type_id"`
	UserID             string     `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`

	EmployerType *EmployerType `gorm:"foreignKey:EmployerTypeID" json:"-"`
	User         *User         `gorm:"foreignKey:UserID" json:"-"`
	Employees    []Employee    `gorm:"foreignKey:EmployerID" json:"-"`
}

type Employee struct {
	BaseModel
	Fullname   string     `gorm:"size:100;not null" json:"fullname"`
	Passport   string     `gorm:"size:50;index" json:"passport"`
	TaxID      string     `gorm:"size:50;index" json:"tax_id"`
	BirthDate  *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	EmployerID string     `gorm:"type:uuid;not null;index" json:"employer_id"`
	UserID     string     `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`

	Employer       *Employer       `gorm:"foreignKey:EmployerID" json:"-"`
	User           *User           `gorm:"foreignKey:UserID" json:"-"`
	PaymentMethods []PaymentMethod `gorm:"foreignKey:EmployeeID" json:"-"`
	Payments       []Payment       `gorm:"foreignKey:EmployeeID" json:"-"`
}

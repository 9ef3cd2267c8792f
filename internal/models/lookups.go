package models

// Справочные сущности: уникальное имя, правится только через админ-CRUD.

type Role struct {
	BaseModel
	Name string `gorm:"size:50;uniqueIndex;not null" json:"name"`
}

type StatusType struct {
	BaseModel
	Name string `gorm:"size:50;uniqueIndex;not null" json:"name"`
}

type EmployerType struct {
	BaseModel
	Name string `gorm:"size:50;uniqueIndex;not null" json:"name"`
}

type AccountType struct {
	BaseModel
	Name string `gorm:"size:50;uniqueIndex;not null" json:"name"`
}

type PaymentStatus struct {
	BaseModel
	Name string `gorm:"size:50;uniqueIndex;not null" json:"name"`
}

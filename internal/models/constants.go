package models

type SessionStatus string

const (
	// Роли (справочник role, засеивается при старте)
	RoleEmployer  = "employer"
	RoleEmployee  = "employee"
	RoleSuperuser = "superuser"

	// Статусы аккаунта (справочник status_type)
	StatusTypeNotActive = "not active"
	StatusTypeActive    = "active"

	// Статусы платежей (справочник payment_status)
	PaymentStatusPending  = "pending"
	PaymentStatusExecuted = "executed"
	PaymentStatusRejected = "rejected"

	SessionLoggedIn  SessionStatus = "logged-in"
	SessionLoggedOut SessionStatus = "logged-out"
)

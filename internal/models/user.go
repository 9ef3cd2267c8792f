package models

import "time"

type User struct {
	BaseModel
	Email        string     `gorm:"size:50;uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"size:100;not null" json:"-"`
	Phone        string     `gorm:"size:50" json:"phone"`
	ActivatedAt  *time.Time `json:"activated_at,omitempty"`
	RoleID       string     `gorm:"type:uuid;not null;index" json:"role_id"`
	StatusTypeID string     `gorm:"type:uuid;not null;index" json:"status_type_id"`

	// Relations
	Role       *Role       `gorm:"foreignKey:RoleID" json:"-"`
	StatusType *StatusType `gorm:"foreignKey:StatusTypeID" json:"-"`
	Employer   *Employer   `gorm:"foreignKey:UserID" json:"-"`
	Employee   *Employee   `gorm:"foreignKey:UserID" json:"-"`
	Sessions   []Session   `gorm:"foreignKey:UserID" json:"-"`
}

// Session - единица состояния аутентификации. Одна "текущая" сессия на логин;
// logout переводит её в logged-out без возможности возврата.
type Session struct {
	BaseModel
	Token  string        `gorm:"size:400;not null;index" json:"-"`
	Status SessionStatus `gorm:"size:50;not null" json:"status"`
	UserID string        `gorm:"type:uuid;not null;index" json:"user_id"`
}

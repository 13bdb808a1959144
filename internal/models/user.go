package models

// UserModel represents a site account. Role escalation to admin happens only
// through the makeadmin tool, never through the public API.
type UserModel struct {
	Base
	Name         string `json:"name"  gorm:"not null"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-"     gorm:"not null"`
	Role         Role   `json:"role"  gorm:"type:varchar(16);not null;default:user"`
}

func (UserModel) TableName() string { return "users" }

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactMessageModel stores an inbound contact form submission. It is
// append-only from the public side, so it carries no UpdatedAt.
type ContactMessageModel struct {
	ID        string    `json:"_id"       gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name"      gorm:"not null"`
	Email     string    `json:"email"     gorm:"not null"`
	Message   string    `json:"message"   gorm:"type:text;not null"`
	Budget    string    `json:"budget"`
	Timeline  string    `json:"timeline"`
	CreatedAt time.Time `json:"createdAt"`
}

func (ContactMessageModel) TableName() string { return "contact_messages" }

func (m *ContactMessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

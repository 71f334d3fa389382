package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminSession tracks an issued admin token so logout can revoke it
type AdminSession struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	AdminID        uuid.UUID `json:"admin_id" gorm:"type:uuid;not null;index"`
	TokenHash      string    `json:"-" gorm:"not null;index"`
	IPAddress      string    `json:"ip_address"`
	UserAgent      string    `json:"user_agent"`
	CreatedAt      time.Time `json:"created_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
	ExpiresAt      time.Time `json:"expires_at"`
	IsActive       bool      `json:"is_active" gorm:"default:true;index"`
}

func (AdminSession) TableName() string {
	return "admin_sessions"
}

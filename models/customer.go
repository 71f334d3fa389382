package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a storefront account. Password is empty for accounts
// created through Google login.
type Customer struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email         string    `json:"email" gorm:"uniqueIndex;not null"`
	Name          string    `json:"name"`
	Password      string    `json:"-" gorm:"column:password_hash"`
	GoogleID      string    `json:"-" gorm:"index"`
	Provider      string    `json:"provider" gorm:"default:'local'"`
	EmailVerified bool      `json:"email_verified" gorm:"default:false"`
	Avatar        *string   `json:"avatar,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	Language      string    `json:"language" gorm:"type:varchar(2);default:'fr';check:language IN ('fr', 'ar')"`
	Status        string    `json:"status" gorm:"default:'active';check:status IN ('active', 'suspended')"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (cu *Customer) BeforeCreate(tx *gorm.DB) error {
	if cu.ID == uuid.Nil {
		cu.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Customer) TableName() string {
	return "customers"
}

// GoogleUserInfo is the profile payload returned by Google's userinfo endpoint
type GoogleUserInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Language string `json:"language" binding:"omitempty,oneof=fr ar"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CustomerResponse hides credential fields from API output
type CustomerResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Provider      string    `json:"provider"`
	EmailVerified bool      `json:"email_verified"`
	Avatar        *string   `json:"avatar,omitempty"`
	Language      string    `json:"language"`
	CreatedAt     time.Time `json:"created_at"`
}

func (cu *Customer) ToResponse() CustomerResponse {
	return CustomerResponse{
		ID:            cu.ID,
		Email:         cu.Email,
		Name:          cu.Name,
		Provider:      cu.Provider,
		EmailVerified: cu.EmailVerified,
		Avatar:        cu.Avatar,
		Language:      cu.Language,
		CreatedAt:     cu.CreatedAt,
	}
}

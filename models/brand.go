package models

import "time"

// Brand represents a manufacturer (VMS, SYM, Zimota, ...)
type Brand struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement" db:"id"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;not null" db:"slug"`
	Name      string    `json:"name" gorm:"not null" db:"name"`
	LogoURL   *string   `json:"logo_url,omitempty" db:"logo_url"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime" db:"updated_at"`
}

func (Brand) TableName() string {
	return "brands"
}

// BrandWithProducts extends Brand with product count
type BrandWithProducts struct {
	ID       uint    `json:"id"`
	Slug     string  `json:"slug"`
	Name     string  `json:"name"`
	LogoURL  *string `json:"logo_url,omitempty"`
	Products int     `json:"products"`
}

// BrandRequest is used when creating a brand
type BrandRequest struct {
	Slug    string  `json:"slug" binding:"required" example:"vms"`
	Name    string  `json:"name" binding:"required" example:"VMS"`
	LogoURL *string `json:"logo_url"`
}

// UpdateBrandRequest is used when updating a brand
type UpdateBrandRequest struct {
	Slug    *string `json:"slug"`
	Name    *string `json:"name"`
	LogoURL *string `json:"logo_url"`
}

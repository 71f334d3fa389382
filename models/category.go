package models

import "time"

// Category represents a storefront category (Motos, Scooters, Tricycles, ...)
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement" db:"id"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;not null" db:"slug"`
	NameFr    string    `json:"name_fr" gorm:"not null" db:"name_fr"`
	NameAr    string    `json:"name_ar" gorm:"not null" db:"name_ar"`
	Status    string    `json:"status" gorm:"type:varchar(20);default:'Active';check:status IN ('Active', 'Inactive')" db:"status"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime" db:"updated_at"`
}

// TableName specifies the table name (optional, GORM auto-pluralizes)
func (Category) TableName() string {
	return "categories"
}

// CategoryWithProducts extends Category with product count
type CategoryWithProducts struct {
	ID        uint      `json:"id"`
	Slug      string    `json:"slug"`
	NameFr    string    `json:"name_fr"`
	NameAr    string    `json:"name_ar"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Products  int       `json:"products"`
}

// CategoryRequest is used when creating a category
type CategoryRequest struct {
	Slug   string `json:"slug" binding:"required" example:"scooters"`
	NameFr string `json:"name_fr" binding:"required" example:"Scooters"`
	NameAr string `json:"name_ar" binding:"required"`
}

// UpdateCategoryRequest is used when updating a category
type UpdateCategoryRequest struct {
	Slug   *string `json:"slug"`
	NameFr *string `json:"name_fr"`
	NameAr *string `json:"name_ar"`
	Status *string `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

// UpdateCategoryStatusRequest is used when toggling a category's status
type UpdateCategoryStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Active Inactive" example:"Active"`
}

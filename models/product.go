package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

type ProductImage struct {
	URL   string `json:"url" binding:"required"`
	Order *int   `json:"order,omitempty"`
}

type ImagesList []ProductImage

// MotoSpecs holds the motorcycle/scooter technical sheet. Every field is
// optional; storefront filters only constrain the fields a product carries.
type MotoSpecs struct {
	MotorType       *string  `json:"motor_type,omitempty" example:"4-temps monocylindre"`
	Displacement    *string  `json:"displacement,omitempty" example:"110cc"`
	Cooling         *string  `json:"cooling,omitempty" example:"Air"`
	FuelSystem      *string  `json:"fuel_system,omitempty" example:"Carburateur"`
	Transmission    *string  `json:"transmission,omitempty" example:"Automatique"`
	Starter         *string  `json:"starter,omitempty" example:"Electrique / Kick"`
	Brakes          *string  `json:"brakes,omitempty" example:"Disque / Tambour"`
	WheelSize       *string  `json:"wheel_size,omitempty" example:"17 pouces"`
	MaxSpeed        *int     `json:"max_speed,omitempty" example:"90"`
	FuelCapacity    *string  `json:"fuel_capacity,omitempty" example:"4L"`
	Weight          *float64 `json:"weight,omitempty" example:"95"`
	FuelConsumption *string  `json:"fuel_consumption,omitempty" example:"2.1L/100km"`
	Dashboard       *string  `json:"dashboard,omitempty" example:"Analogique"`
	Ignition        *string  `json:"ignition,omitempty" example:"CDI"`
	Headlight       *string  `json:"headlight,omitempty" example:"LED"`
	Tires           *string  `json:"tires,omitempty" example:"Tubeless"`
}

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID            uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	Slug          string     `json:"slug" gorm:"uniqueIndex;not null"`
	NameFr        string     `json:"name_fr" gorm:"not null;index"`
	NameAr        string     `json:"name_ar" gorm:"not null"`
	DescriptionFr string     `json:"description_fr" gorm:"not null"`
	DescriptionAr string     `json:"description_ar" gorm:"not null"`
	Price         float64    `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	OriginalPrice *float64   `json:"original_price,omitempty" gorm:"type:numeric(12,2)"`
	Featured      bool       `json:"featured" gorm:"default:false;index"`
	CategoryID    uint       `json:"category_id" gorm:"not null;index:idx_products_category"`
	Category      *Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	BrandID       *uint      `json:"brand_id,omitempty" gorm:"index:idx_products_brand"`
	Brand         *Brand     `json:"brand,omitempty" gorm:"foreignKey:BrandID;references:ID"`
	InStock       bool       `json:"in_stock" gorm:"default:true"`
	Quantity      int        `json:"quantity" gorm:"default:0;check:quantity >= 0"`
	Status        string     `json:"status" gorm:"not null;check:status IN ('Active', 'Draft');index"`
	Images        ImagesList `json:"images" gorm:"type:jsonb;not null;default:'[]'"`
	Specs         MotoSpecs  `json:"specs" gorm:"type:jsonb;not null;default:'{}'"`
	Views         int        `json:"views" gorm:"default:0;index:idx_products_views,sort:desc"`
	CreatedAt     time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type ProductRequest struct {
	Slug          string         `json:"slug" binding:"required" example:"scooter-vms-110"`
	NameFr        string         `json:"name_fr" binding:"required" example:"Scooter VMS 110"`
	NameAr        string         `json:"name_ar" binding:"required"`
	DescriptionFr string         `json:"description_fr" binding:"required"`
	DescriptionAr string         `json:"description_ar" binding:"required"`
	Price         float64        `json:"price" binding:"required,min=0" example:"12500"`
	OriginalPrice *float64       `json:"original_price" binding:"omitempty,min=0"`
	Featured      bool           `json:"featured"`
	CategoryID    uint           `json:"category_id" binding:"required"`
	BrandID       *uint          `json:"brand_id"`
	InStock       *bool          `json:"in_stock"`
	Quantity      int            `json:"quantity" binding:"min=0"`
	Status        string         `json:"status" binding:"required,oneof=Active Draft" example:"Draft"`
	Images        []ProductImage `json:"images" binding:"required,dive"`
	Specs         MotoSpecs      `json:"specs"`
}

type UpdateProductRequest struct {
	Slug          *string         `json:"slug"`
	NameFr        *string         `json:"name_fr"`
	NameAr        *string         `json:"name_ar"`
	DescriptionFr *string         `json:"description_fr"`
	DescriptionAr *string         `json:"description_ar"`
	Price         *float64        `json:"price" binding:"omitempty,min=0"`
	OriginalPrice *float64        `json:"original_price" binding:"omitempty,min=0"`
	Featured      *bool           `json:"featured"`
	CategoryID    *uint           `json:"category_id"`
	BrandID       *uint           `json:"brand_id"`
	InStock       *bool           `json:"in_stock"`
	Quantity      *int            `json:"quantity" binding:"omitempty,min=0"`
	Status        *string         `json:"status" binding:"omitempty,oneof=Active Draft"`
	Images        *[]ProductImage `json:"images"`
	Specs         *MotoSpecs      `json:"specs"`
}

type ProductStatsResponseItem struct {
	TotalProducts    int     `json:"total_products,omitempty"`
	ActiveProducts   int     `json:"active_products,omitempty"`
	DraftProducts    int     `json:"draft_products,omitempty"`
	FeaturedProducts int     `json:"featured_products,omitempty"`
	OutOfStock       int     `json:"out_of_stock,omitempty"`
	AveragePrice     float64 `json:"average_price,omitempty"`
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM (Custom types)
// ═══════════════════════════════════════════════════════════

// ImagesList methods
func (l *ImagesList) Scan(value interface{}) error {
	if value == nil {
		*l = make(ImagesList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ImagesList")
	}
	return json.Unmarshal(bytes, l)
}

func (l ImagesList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]ProductImage{})
	}
	return json.Marshal(l)
}

// MotoSpecs methods
func (s *MotoSpecs) Scan(value interface{}) error {
	if value == nil {
		*s = MotoSpecs{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan MotoSpecs")
	}
	return json.Unmarshal(bytes, s)
}

func (s MotoSpecs) Value() (driver.Value, error) {
	return json.Marshal(s)
}

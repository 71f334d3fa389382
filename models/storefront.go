package models

import "time"

// StorefrontProduct is the customer-facing card shape returned by the
// storefront listing endpoint.
type StorefrontProduct struct {
	ID            uint     `json:"id"`
	Slug          string   `json:"slug"`
	NameFr        string   `json:"name_fr"`
	NameAr        string   `json:"name_ar"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Featured      bool     `json:"featured"`
	InStock       bool     `json:"in_stock"`
	Image         string   `json:"image"`
	CategorySlug  string   `json:"category_slug,omitempty"`
	BrandSlug     string   `json:"brand_slug,omitempty"`
}

// StorefrontProductDetail is the full product page payload
type StorefrontProductDetail struct {
	ID            uint           `json:"id"`
	Slug          string         `json:"slug"`
	NameFr        string         `json:"name_fr"`
	NameAr        string         `json:"name_ar"`
	DescriptionFr string         `json:"description_fr"`
	DescriptionAr string         `json:"description_ar"`
	Price         float64        `json:"price"`
	OriginalPrice *float64       `json:"original_price,omitempty"`
	Featured      bool           `json:"featured"`
	InStock       bool           `json:"in_stock"`
	Quantity      int            `json:"quantity"`
	Images        []ProductImage `json:"images"`
	Specs         MotoSpecs      `json:"specs"`
	CategorySlug  string         `json:"category_slug,omitempty"`
	BrandSlug     string         `json:"brand_slug,omitempty"`
	Views         int            `json:"views"`
	CreatedAt     time.Time      `json:"created_at"`
}

// ToStorefrontProduct projects the full product row onto the card shape
func (p *Product) ToStorefrontProduct() StorefrontProduct {
	sp := StorefrontProduct{
		ID:            p.ID,
		Slug:          p.Slug,
		NameFr:        p.NameFr,
		NameAr:        p.NameAr,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Featured:      p.Featured,
		InStock:       p.InStock,
	}
	if len(p.Images) > 0 {
		sp.Image = p.Images[0].URL
	}
	if p.Category != nil {
		sp.CategorySlug = p.Category.Slug
	}
	if p.Brand != nil {
		sp.BrandSlug = p.Brand.Slug
	}
	return sp
}

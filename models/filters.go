package models

// FilterMetadata feeds the storefront filter sidebar: which categories and
// brands exist (with product counts), the store-wide price range, and
// availability counts.
type FilterMetadata struct {
	Categories   []FilterOption    `json:"categories"`
	Brands       []FilterOption    `json:"brands"`
	PriceRange   *PriceRangeData   `json:"priceRange"`
	Availability *AvailabilityData `json:"availability"`
}

// FilterOption represents a single selectable filter value
type FilterOption struct {
	Slug    string `json:"slug"`
	LabelFr string `json:"label_fr"`
	LabelAr string `json:"label_ar,omitempty"`
	Count   int    `json:"count"`
}

// AvailabilityData represents product availability counts
type AvailabilityData struct {
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
}

// PriceRangeData represents the minimum and maximum price in the store
type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

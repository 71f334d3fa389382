package catalog

import (
	"math"
	"sort"
	"strings"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
)

// Sort keys accepted by FilterSpec.SortBy. Anything else preserves input order.
const (
	SortFeatured    = "featured"
	SortPriceAsc    = "price-asc"
	SortPriceDesc   = "price-desc"
	SortNewest      = "newest"
	SortBestselling = "bestselling"
)

// FilterSpec carries the user-selected narrowing and sorting criteria for one
// catalog query. Nil pointer fields mean "no constraint" — the query layer
// maps empty strings and the legacy "all" sentinel to nil before the spec
// reaches the engine.
type FilterSpec struct {
	Featured   bool
	Categories []string // category slugs
	Brands     []string // brand slugs
	MinPrice   *float64
	MaxPrice   *float64
	Search     string
	SortBy     string

	// Spec sheet equality filters
	MotorType    *string
	Displacement *string
	Cooling      *string
	FuelSystem   *string
	Transmission *string
	Starter      *string
	Brakes       *string
	WheelSize    *string
	Dashboard    *string
	Ignition     *string
	Headlight    *string
	Tires        *string

	// Spec sheet range filters (inclusive bounds)
	MinMaxSpeed *int
	MaxMaxSpeed *int
	MinWeight   *float64
	MaxWeight   *float64
}

// SlugResolver resolves category and brand slugs to their numeric ids.
// Unresolvable slugs report ok=false and contribute nothing to the filter.
type SlugResolver interface {
	CategoryID(slug string) (uint, bool)
	BrandID(slug string) (uint, bool)
}

// Query narrows products down to the set matching every criterion of spec,
// then orders the survivors by spec.SortBy. Pure: the input slice is never
// mutated and identical inputs always yield identical output.
func Query(products []models.Product, spec FilterSpec, lookup SlugResolver) []models.Product {
	out := make([]models.Product, 0, len(products))

	categoryIDs := resolveCategoryIDs(spec.Categories, lookup)
	brandIDs := resolveBrandIDs(spec.Brands, lookup)

	minPrice := validBound(spec.MinPrice)
	maxPrice := validBound(spec.MaxPrice)
	minWeight := validBound(spec.MinWeight)
	maxWeight := validBound(spec.MaxWeight)

	search := strings.ToLower(strings.TrimSpace(spec.Search))

	for _, p := range products {
		if spec.Featured && !p.Featured {
			continue
		}
		if len(spec.Categories) > 0 {
			if _, ok := categoryIDs[p.CategoryID]; !ok {
				continue
			}
		}
		if len(spec.Brands) > 0 {
			if p.BrandID == nil {
				continue
			}
			if _, ok := brandIDs[*p.BrandID]; !ok {
				continue
			}
		}
		if minPrice != nil && p.Price < *minPrice {
			continue
		}
		if maxPrice != nil && p.Price > *maxPrice {
			continue
		}
		if search != "" && !matchesSearch(&p, search) {
			continue
		}
		if !matchesSpecs(&p.Specs, &spec) {
			continue
		}
		if !withinIntRange(p.Specs.MaxSpeed, spec.MinMaxSpeed, spec.MaxMaxSpeed) {
			continue
		}
		if !withinFloatRange(p.Specs.Weight, minWeight, maxWeight) {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, spec.SortBy)
	return out
}

func resolveCategoryIDs(slugs []string, lookup SlugResolver) map[uint]struct{} {
	ids := make(map[uint]struct{}, len(slugs))
	if lookup == nil {
		return ids
	}
	for _, slug := range slugs {
		if id, ok := lookup.CategoryID(slug); ok {
			ids[id] = struct{}{}
		}
	}
	return ids
}

func resolveBrandIDs(slugs []string, lookup SlugResolver) map[uint]struct{} {
	ids := make(map[uint]struct{}, len(slugs))
	if lookup == nil {
		return ids
	}
	for _, slug := range slugs {
		if id, ok := lookup.BrandID(slug); ok {
			ids[id] = struct{}{}
		}
	}
	return ids
}

// validBound drops NaN bounds so a garbage query parameter degrades to
// "no constraint" instead of filtering everything out.
func validBound(bound *float64) *float64 {
	if bound == nil || math.IsNaN(*bound) {
		return nil
	}
	return bound
}

func matchesSearch(p *models.Product, search string) bool {
	return strings.Contains(strings.ToLower(p.NameFr), search) ||
		strings.Contains(strings.ToLower(p.NameAr), search) ||
		strings.Contains(strings.ToLower(p.DescriptionFr), search) ||
		strings.Contains(strings.ToLower(p.DescriptionAr), search)
}

// matchesSpecs checks every equality filter against the product's spec sheet.
// A product missing an attribute fails any filter set on that attribute.
func matchesSpecs(specs *models.MotoSpecs, f *FilterSpec) bool {
	checks := []struct {
		want *string
		have *string
	}{
		{f.MotorType, specs.MotorType},
		{f.Displacement, specs.Displacement},
		{f.Cooling, specs.Cooling},
		{f.FuelSystem, specs.FuelSystem},
		{f.Transmission, specs.Transmission},
		{f.Starter, specs.Starter},
		{f.Brakes, specs.Brakes},
		{f.WheelSize, specs.WheelSize},
		{f.Dashboard, specs.Dashboard},
		{f.Ignition, specs.Ignition},
		{f.Headlight, specs.Headlight},
		{f.Tires, specs.Tires},
	}
	for _, c := range checks {
		if c.want == nil {
			continue
		}
		if c.have == nil || *c.have != *c.want {
			return false
		}
	}
	return true
}

func withinIntRange(value, min, max *int) bool {
	if min == nil && max == nil {
		return true
	}
	if value == nil {
		return false
	}
	if min != nil && *value < *min {
		return false
	}
	if max != nil && *value > *max {
		return false
	}
	return true
}

func withinFloatRange(value, min, max *float64) bool {
	if min == nil && max == nil {
		return true
	}
	if value == nil {
		return false
	}
	if min != nil && *value < *min {
		return false
	}
	if max != nil && *value > *max {
		return false
	}
	return true
}

// sortProducts orders products in place. Every branch uses a stable sort so
// input order survives among equals; "bestselling" has no ranking signal in
// this system and deliberately preserves input order.
func sortProducts(products []models.Product, sortBy string) {
	switch sortBy {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			if !products[i].CreatedAt.Equal(products[j].CreatedAt) {
				return products[i].CreatedAt.After(products[j].CreatedAt)
			}
			return products[i].ID > products[j].ID
		})
	default:
		// featured, bestselling, unknown keys: keep input order
	}
}

// Paginate returns the 1-based page of items. Pages past the end are empty,
// never an error.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		return []T{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// PageCount reports the number of pages needed for total items.
func PageCount(total, pageSize int) int {
	if pageSize < 1 || total < 1 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

package catalog

import (
	"math"
	"testing"
	"time"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	categories map[string]uint
	brands     map[string]uint
}

func (r *stubResolver) CategoryID(slug string) (uint, bool) {
	id, ok := r.categories[slug]
	return id, ok
}

func (r *stubResolver) BrandID(slug string) (uint, bool) {
	id, ok := r.brands[slug]
	return id, ok
}

func newTestResolver() *stubResolver {
	return &stubResolver{
		categories: map[string]uint{"motos": 1, "scooters": 2},
		brands:     map[string]uint{"vms": 1, "sym": 2},
	}
}

func strPtr(s string) *string     { return &s }
func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }
func uintPtr(n uint) *uint        { return &n }

func timeAt(day int) time.Time { return time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC) }

func testProducts() []models.Product {
	return []models.Product{
		{
			ID: 1, Slug: "scooter-vms-110", NameFr: "Scooter VMS 110", NameAr: "سكوتر",
			DescriptionFr: "Scooter urbain économique", DescriptionAr: "سكوتر حضري",
			Price: 4290, Featured: true, CategoryID: 2, BrandID: uintPtr(1),
			Specs: models.MotoSpecs{
				MotorType:    strPtr("4-temps monocylindre"),
				Transmission: strPtr("Automatique"),
				MaxSpeed:     intPtr(90),
				Weight:       floatPtr(95),
			},
			CreatedAt: timeAt(1),
		},
		{
			ID: 2, Slug: "moto-sym-125", NameFr: "Moto SYM 125", NameAr: "دراجة",
			DescriptionFr: "Moto polyvalente", DescriptionAr: "دراجة نارية",
			Price: 6890, Featured: false, CategoryID: 1, BrandID: uintPtr(2),
			Specs: models.MotoSpecs{
				Transmission: strPtr("Manuelle"),
				MaxSpeed:     intPtr(110),
				Weight:       floatPtr(120),
			},
			CreatedAt: timeAt(3),
		},
		{
			ID: 3, Slug: "scooter-sym-50", NameFr: "Scooter SYM 50", NameAr: "سكوتر صغير",
			DescriptionFr: "Petit scooter", DescriptionAr: "سكوتر",
			Price: 3190, Featured: true, CategoryID: 2, BrandID: uintPtr(2),
			Specs:     models.MotoSpecs{Transmission: strPtr("Automatique")},
			CreatedAt: timeAt(2),
		},
		{
			ID: 4, Slug: "moto-sans-marque", NameFr: "Moto artisanale", NameAr: "دراجة",
			DescriptionFr: "Sans marque", DescriptionAr: "بدون علامة",
			Price: 5000, Featured: false, CategoryID: 1, BrandID: nil,
			Specs:     models.MotoSpecs{},
			CreatedAt: timeAt(2),
		},
	}
}

func TestQueryNoFiltersPreservesInputOrder(t *testing.T) {
	products := testProducts()
	got := Query(products, FilterSpec{}, newTestResolver())

	require.Len(t, got, 4)
	for i, p := range products {
		assert.Equal(t, p.ID, got[i].ID)
	}
}

func TestQueryDoesNotMutateInput(t *testing.T) {
	products := testProducts()
	Query(products, FilterSpec{SortBy: SortPriceAsc}, newTestResolver())

	assert.Equal(t, uint(1), products[0].ID)
	assert.Equal(t, uint(2), products[1].ID)
}

func TestQueryFiltersAreConjunctive(t *testing.T) {
	got := Query(testProducts(), FilterSpec{
		Featured:   true,
		Categories: []string{"scooters"},
		MaxPrice:   floatPtr(4000),
	}, newTestResolver())

	require.Len(t, got, 1)
	assert.Equal(t, "scooter-sym-50", got[0].Slug)
}

func TestQueryCategoryAndBrandSlugs(t *testing.T) {
	tests := []struct {
		name string
		spec FilterSpec
		want []uint
	}{
		{"single category", FilterSpec{Categories: []string{"scooters"}}, []uint{1, 3}},
		{"multiple categories union", FilterSpec{Categories: []string{"motos", "scooters"}}, []uint{1, 2, 3, 4}},
		{"unknown category matches nothing", FilterSpec{Categories: []string{"quads"}}, nil},
		{"brand filter", FilterSpec{Brands: []string{"sym"}}, []uint{2, 3}},
		{"brand filter excludes brandless", FilterSpec{Brands: []string{"vms", "sym"}}, []uint{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Query(testProducts(), tt.spec, newTestResolver())
			ids := make([]uint, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			if tt.want == nil {
				assert.Empty(t, ids)
			} else {
				assert.Equal(t, tt.want, ids)
			}
		})
	}
}

func TestQueryPriceBounds(t *testing.T) {
	got := Query(testProducts(), FilterSpec{
		MinPrice: floatPtr(4000),
		MaxPrice: floatPtr(6000),
	}, newTestResolver())

	require.Len(t, got, 2)
	assert.Equal(t, uint(1), got[0].ID)
	assert.Equal(t, uint(4), got[1].ID)
}

func TestQueryNaNBoundsAreIgnored(t *testing.T) {
	nan := math.NaN()
	got := Query(testProducts(), FilterSpec{MinPrice: &nan, MaxPrice: &nan}, newTestResolver())
	assert.Len(t, got, 4)
}

func TestQuerySearchIsCaseInsensitiveAndBilingual(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   int
	}{
		{"french name lowercased", "scooter vms", 1},
		{"french description", "polyvalente", 1},
		{"arabic name", "دراجة", 3},
		{"no match", "quad", 0},
		{"whitespace only means no constraint", "   ", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Query(testProducts(), FilterSpec{Search: tt.search}, newTestResolver())
			assert.Len(t, got, tt.want)
		})
	}
}

func TestQuerySpecEqualityFilters(t *testing.T) {
	got := Query(testProducts(), FilterSpec{Transmission: strPtr("Automatique")}, newTestResolver())
	require.Len(t, got, 2)
	assert.Equal(t, uint(1), got[0].ID)
	assert.Equal(t, uint(3), got[1].ID)

	// Product 4 has no spec sheet: it must fail any active spec filter
	got = Query(testProducts(), FilterSpec{MotorType: strPtr("4-temps monocylindre")}, newTestResolver())
	require.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].ID)
}

func TestQuerySpecRangeFilters(t *testing.T) {
	// Missing attribute fails an active range filter
	got := Query(testProducts(), FilterSpec{MinMaxSpeed: intPtr(80)}, newTestResolver())
	require.Len(t, got, 2)
	assert.Equal(t, uint(1), got[0].ID)
	assert.Equal(t, uint(2), got[1].ID)

	got = Query(testProducts(), FilterSpec{MinWeight: floatPtr(100), MaxWeight: floatPtr(130)}, newTestResolver())
	require.Len(t, got, 1)
	assert.Equal(t, uint(2), got[0].ID)

	// Inclusive bounds
	got = Query(testProducts(), FilterSpec{MinMaxSpeed: intPtr(90), MaxMaxSpeed: intPtr(90)}, newTestResolver())
	require.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].ID)
}

func TestSortPriceAscending(t *testing.T) {
	got := Query(testProducts(), FilterSpec{SortBy: SortPriceAsc}, newTestResolver())
	require.Len(t, got, 4)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Price, got[i].Price)
	}
}

func TestSortPriceStableForEqualPrices(t *testing.T) {
	products := []models.Product{
		{ID: 10, Price: 100},
		{ID: 11, Price: 100},
		{ID: 12, Price: 50},
	}
	got := Query(products, FilterSpec{SortBy: SortPriceAsc}, nil)

	require.Len(t, got, 3)
	assert.Equal(t, uint(12), got[0].ID)
	// Equal prices keep input order
	assert.Equal(t, uint(10), got[1].ID)
	assert.Equal(t, uint(11), got[2].ID)
}

func TestSortNewest(t *testing.T) {
	got := Query(testProducts(), FilterSpec{SortBy: SortNewest}, newTestResolver())
	require.Len(t, got, 4)
	assert.Equal(t, uint(2), got[0].ID)
	// IDs 3 and 4 share a timestamp: higher id wins the tie
	assert.Equal(t, uint(4), got[1].ID)
	assert.Equal(t, uint(3), got[2].ID)
	assert.Equal(t, uint(1), got[3].ID)
}

func TestSortUnknownKeyPreservesOrder(t *testing.T) {
	got := Query(testProducts(), FilterSpec{SortBy: "upside-down"}, newTestResolver())
	require.Len(t, got, 4)
	assert.Equal(t, uint(1), got[0].ID)
	assert.Equal(t, uint(4), got[3].ID)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name     string
		page     int
		pageSize int
		want     []int
	}{
		{"first page", 1, 3, []int{1, 2, 3}},
		{"middle page", 2, 3, []int{4, 5, 6}},
		{"short last page", 3, 3, []int{7}},
		{"past the end", 4, 3, []int{}},
		{"page below one clamps to first", 0, 3, []int{1, 2, 3}},
		{"zero page size", 1, 0, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paginate(items, tt.page, tt.pageSize))
		})
	}
}

func TestPaginateCoversEveryItemExactlyOnce(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	seen := make([]int, 0, len(items))
	for page := 1; page <= PageCount(len(items), 4); page++ {
		seen = append(seen, Paginate(items, page, 4)...)
	}
	assert.Equal(t, items, seen)
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0, 12))
	assert.Equal(t, 1, PageCount(1, 12))
	assert.Equal(t, 1, PageCount(12, 12))
	assert.Equal(t, 2, PageCount(13, 12))
	assert.Equal(t, 0, PageCount(10, 0))
}

package product_controller

import (
	"net/http/httptest"
	"testing"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/catalog"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextWithQuery(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/store/products?"+rawQuery, nil)
	return c
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 12},
		{"explicit values", "page=3&limit=24", 3, 24},
		{"zero page clamps", "page=0", 1, 12},
		{"negative page clamps", "page=-5", 1, 12},
		{"oversized limit resets", "limit=5000", 1, 12},
		{"garbage falls back", "page=abc&limit=xyz", 1, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := parsePagination(contextWithQuery(t, tt.query))
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestSpecParamMapsSentinelsToNil(t *testing.T) {
	c := contextWithQuery(t, "motorType=all&cooling=ALL&transmission=Automatique&starter=+")

	assert.Nil(t, specParam(c, "motorType"))
	assert.Nil(t, specParam(c, "cooling"))
	assert.Nil(t, specParam(c, "starter"))
	assert.Nil(t, specParam(c, "missing"))

	got := specParam(c, "transmission")
	require.NotNil(t, got)
	assert.Equal(t, "Automatique", *got)
}

func TestFloatParamDropsGarbage(t *testing.T) {
	c := contextWithQuery(t, "minPrice=150.5&maxPrice=cheap&weight=NaN")

	got := floatParam(c, "minPrice")
	require.NotNil(t, got)
	assert.Equal(t, 150.5, *got)

	assert.Nil(t, floatParam(c, "maxPrice"))
	assert.Nil(t, floatParam(c, "weight"))
	assert.Nil(t, floatParam(c, "missing"))
}

func TestIntParam(t *testing.T) {
	c := contextWithQuery(t, "minMaxSpeed=80&maxMaxSpeed=fast")

	got := intParam(c, "minMaxSpeed")
	require.NotNil(t, got)
	assert.Equal(t, 80, *got)

	assert.Nil(t, intParam(c, "maxMaxSpeed"))
}

func TestParseFilterSpec(t *testing.T) {
	c := contextWithQuery(t,
		"featured=true&category=motos&category=scooters&brand=vms&minPrice=1000&maxPrice=8000"+
			"&q=scooter&sortBy=price-asc&transmission=Automatique&motorType=all&minMaxSpeed=60")

	spec := parseFilterSpec(c)

	assert.True(t, spec.Featured)
	assert.Equal(t, []string{"motos", "scooters"}, spec.Categories)
	assert.Equal(t, []string{"vms"}, spec.Brands)
	require.NotNil(t, spec.MinPrice)
	assert.Equal(t, 1000.0, *spec.MinPrice)
	require.NotNil(t, spec.MaxPrice)
	assert.Equal(t, 8000.0, *spec.MaxPrice)
	assert.Equal(t, "scooter", spec.Search)
	assert.Equal(t, catalog.SortPriceAsc, spec.SortBy)
	require.NotNil(t, spec.Transmission)
	assert.Equal(t, "Automatique", *spec.Transmission)
	assert.Nil(t, spec.MotorType, `"all" means no constraint`)
	require.NotNil(t, spec.MinMaxSpeed)
	assert.Equal(t, 60, *spec.MinMaxSpeed)
	assert.Nil(t, spec.MaxMaxSpeed)
}

func TestParseFilterSpecDefaults(t *testing.T) {
	spec := parseFilterSpec(contextWithQuery(t, ""))

	assert.False(t, spec.Featured)
	assert.Empty(t, spec.Categories)
	assert.Empty(t, spec.Brands)
	assert.Nil(t, spec.MinPrice)
	assert.Equal(t, catalog.SortFeatured, spec.SortBy)
}

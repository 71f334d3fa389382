package catalog_cache

import (
	"sync"
	"time"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
)

const TTL = 5 * time.Minute

// ── Active product snapshot ──────────────────────────────────────────────────
// The storefront listing runs the catalog query engine over this in-memory
// snapshot instead of hitting Postgres per request. Refreshed on expiry,
// invalidated on any product write.

type productsEntry struct {
	products  []models.Product
	fetchedAt time.Time
}

var (
	productsMu    sync.RWMutex
	productsCache *productsEntry
)

func GetProducts() ([]models.Product, bool) {
	productsMu.RLock()
	defer productsMu.RUnlock()
	if productsCache != nil && time.Since(productsCache.fetchedAt) < TTL {
		return productsCache.products, true
	}
	return nil, false
}

func SetProducts(products []models.Product) {
	productsMu.Lock()
	defer productsMu.Unlock()
	productsCache = &productsEntry{products: products, fetchedAt: time.Now()}
}

// ── Slug → id resolver ───────────────────────────────────────────────────────
// Implements catalog.SlugResolver for the query engine's category and brand
// filters.

type Resolver struct {
	categories map[string]uint
	brands     map[string]uint
}

func NewResolver(categories, brands map[string]uint) *Resolver {
	return &Resolver{categories: categories, brands: brands}
}

func (r *Resolver) CategoryID(slug string) (uint, bool) {
	id, ok := r.categories[slug]
	return id, ok
}

func (r *Resolver) BrandID(slug string) (uint, bool) {
	id, ok := r.brands[slug]
	return id, ok
}

type resolverEntry struct {
	resolver  *Resolver
	fetchedAt time.Time
}

var (
	resolverMu    sync.RWMutex
	resolverCache *resolverEntry
)

func GetResolver() (*Resolver, bool) {
	resolverMu.RLock()
	defer resolverMu.RUnlock()
	if resolverCache != nil && time.Since(resolverCache.fetchedAt) < TTL {
		return resolverCache.resolver, true
	}
	return nil, false
}

func SetResolver(r *Resolver) {
	resolverMu.Lock()
	defer resolverMu.Unlock()
	resolverCache = &resolverEntry{resolver: r, fetchedAt: time.Now()}
}

// ── Invalidate everything (call on any catalog write) ────────────────────────

func Invalidate() {
	productsMu.Lock()
	productsCache = nil
	productsMu.Unlock()

	resolverMu.Lock()
	resolverCache = nil
	resolverMu.Unlock()
}

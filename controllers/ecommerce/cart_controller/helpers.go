package cart_controller

import (
	"sync"
	"time"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/cart"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/config"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/gin-gonic/gin"
)

// Cart snapshots outlive the storefront session so a returning customer finds
// their cart intact.
const cartTTL = 30 * 24 * time.Hour

var (
	manager     *cart.Manager
	managerOnce sync.Once
)

// Carts returns the shared cart manager, wiring it to Redis on first use.
func Carts() *cart.Manager {
	managerOnce.Do(func() {
		manager = cart.NewManager(cart.NewRedisStorage(config.RedisClient, cartTTL))
	})
	return manager
}

// lineItemFromProduct snapshots the product into a cart line. Price and names
// are frozen at add time; checkout reprices from the live catalog.
func lineItemFromProduct(p *models.Product) cart.Item {
	image := ""
	if len(p.Images) > 0 {
		image = p.Images[0].URL
	}
	return cart.Item{
		ProductID: p.ID,
		Slug:      p.Slug,
		NameFr:    p.NameFr,
		NameAr:    p.NameAr,
		Price:     p.Price,
		Image:     image,
	}
}

type addItemRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func cartPayload(state cart.State) gin.H {
	return gin.H{
		"items":     state.Items,
		"total":     state.Total,
		"itemCount": len(state.Items),
	}
}

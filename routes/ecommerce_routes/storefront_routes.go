package ecommerce_routes

import (
	store_cart "github.com/MotoSouk-Ecommerce/motosouk-store-backend/controllers/ecommerce/cart_controller"
	store_filter "github.com/MotoSouk-Ecommerce/motosouk-store-backend/controllers/ecommerce/filter_controller"
	store_order "github.com/MotoSouk-Ecommerce/motosouk-store-backend/controllers/ecommerce/order_controller"
	store_product "github.com/MotoSouk-Ecommerce/motosouk-store-backend/controllers/ecommerce/product_controller"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Every storefront route runs behind the session middleware so carts and
	// login state always have a token to hang off.
	store := router.Group("/store")
	store.Use(middleware.StorefrontSession())

	// Catalog (public)
	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts)
		products.GET("/:slug", store_product.GetStorefrontProductBySlug)
	}

	store.GET("/filters", store_filter.GetFilterMetadata)

	// Cart (session-scoped, guests included)
	cart := store.Group("/cart")
	{
		cart.GET("", store_cart.GetCart)
		cart.DELETE("", store_cart.ClearCart)
		cart.POST("/items", store_cart.AddCartItem)
		cart.PUT("/items/:productId", store_cart.UpdateCartItem)
		cart.DELETE("/items/:productId", store_cart.RemoveCartItem)
	}

	// Orders (login required)
	orders := store.Group("/orders")
	orders.Use(middleware.RequireCustomer())
	{
		orders.POST("", store_order.CreateOrder)
		orders.GET("", store_order.GetOrders)
		orders.GET("/:id", store_order.GetOrderDetails)
	}
}

package cms_routes

import (
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/controllers/cms/order_controller"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(rg *gin.RouterGroup) {
	order := rg.Group("/orders")
	order.Use(middleware.AdminAuthMiddleware())
	{
		order.GET("", order_controller.GetOrders)
		order.GET("/:id", order_controller.GetOrderDetails)
		order.PATCH("/:id/status", order_controller.UpdateOrderStatus)
		order.GET("/:id/invoice", order_controller.DownloadOrderInvoicePDF)
	}
}

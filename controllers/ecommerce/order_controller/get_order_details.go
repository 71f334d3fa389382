package order_controller

import (
	"log"
	"net/http"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/config"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderDetails godoc
// @Summary Get one of the customer's orders
// @Description Return a single order with its items. Customers can only see their own orders.
// @Tags Storefront - Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.ApiResponse "Order fetched successfully"
// @Failure 401 {object} models.ApiResponse "Login required"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/orders/{id} [get]
func GetOrderDetails(c *gin.Context) {
	customerID, err := uuid.Parse(c.GetString("customerID"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Login required"))
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var order models.Order
	if err := config.Gorm.WithContext(ctx).
		Where("id = ? AND customer_id = ?", orderID, customerID).
		First(&order).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		log.Printf("[orders] failed to fetch order %s: %v", orderID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order"))
		return
	}

	var items []models.OrderItem
	if err := config.Gorm.WithContext(ctx).
		Where("order_id = ?", order.ID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		log.Printf("[orders] failed to fetch items for %s: %v", orderID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order fetched successfully", models.OrderWithItems{
		Order: order,
		Items: items,
	}))
}

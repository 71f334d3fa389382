package order_controller

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/config"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateOrderStatus godoc
// @Summary Update an order's status
// @Description Move an order along the workflow (pending, processing, shipped, completed) or cancel it. Cancelling requires admin notes and restores product stock.
// @Tags CMS - Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse "Order status updated"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 409 {object} models.ApiResponse "Illegal status transition"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Security AdminAuth
// @Router /admin/orders/{id}/status [patch]
func UpdateOrderStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	if req.Status == models.OrderStatusCancelled && (req.AdminNotes == nil || *req.AdminNotes == "") {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Admin notes are required when cancelling an order"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var order models.Order
	err = config.Gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
			return err
		}

		if !models.CanTransitionOrderStatus(order.Status, req.Status) {
			return fmt.Errorf("cannot transition order from %s to %s", order.Status, req.Status)
		}

		order.Status = req.Status
		if req.AdminNotes != nil {
			order.AdminNotes = req.AdminNotes
		}

		now := time.Now()
		switch req.Status {
		case models.OrderStatusShipped:
			order.ShippedAt = &now
		case models.OrderStatusCompleted:
			order.CompletedAt = &now
		case models.OrderStatusCancelled:
			// Put the reserved stock back
			var items []models.OrderItem
			if err := tx.Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
				return err
			}
			for _, item := range items {
				if err := tx.Model(&models.Product{}).
					Where("id = ?", item.ProductID).
					UpdateColumn("quantity", gorm.Expr("quantity + ?", item.Quantity)).Error; err != nil {
					return err
				}
			}
		}

		return tx.Save(&order).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		log.Printf("[cms] failed to update order status %s: %v", orderID, err)
		c.JSON(http.StatusConflict, models.ErrorResponse(c, err.Error()))
		return
	}

	log.Printf("[cms] order %s status set to %s", order.OrderNumber, order.Status)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order status updated", models.UpdateOrderStatusResponse{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		AdminNotes:  order.AdminNotes,
	}))
}

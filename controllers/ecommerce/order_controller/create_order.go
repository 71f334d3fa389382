package order_controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/config"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/controllers/ecommerce/cart_controller"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/middleware"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// newOrderNumber builds a human-readable, unique order reference.
func newOrderNumber() string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("MS-%s-%s", time.Now().Format("20060102"), suffix)
}

// CreateOrder godoc
// @Summary Checkout the cart
// @Description Turn the session cart into an order. Every line is repriced from the live catalog; client prices are never trusted. The cart is cleared on success.
// @Tags Storefront - Orders
// @Accept json
// @Produce json
// @Param request body models.CreateOrderRequest true "Shipping address and optional notes"
// @Success 201 {object} models.ApiResponse "Order placed successfully"
// @Failure 400 {object} models.ApiResponse "Empty cart or invalid request"
// @Failure 401 {object} models.ApiResponse "Login required"
// @Failure 409 {object} models.ApiResponse "A product in the cart is no longer available"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/orders [post]
func CreateOrder(c *gin.Context) {
	customerID, err := uuid.Parse(c.GetString("customerID"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Login required"))
		return
	}

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	session := cart_controller.Carts().Session(c.Request.Context(), middleware.SessionToken(c))
	cartState := session.State()
	if cartState.IsEmpty() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cart is empty"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Reprice every cart line from the live catalog
	productIDs := make([]uint, 0, len(cartState.Items))
	for _, line := range cartState.Items {
		productIDs = append(productIDs, line.ProductID)
	}

	var products []models.Product
	if err := config.Gorm.WithContext(ctx).
		Where("id IN ? AND status = ?", productIDs, "Active").
		Find(&products).Error; err != nil {
		log.Printf("[checkout] failed to reprice cart: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to place order"))
		return
	}

	byID := make(map[uint]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	var subtotal float64
	items := make([]models.OrderItem, 0, len(cartState.Items))
	for _, line := range cartState.Items {
		product, ok := byID[line.ProductID]
		if !ok {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, fmt.Sprintf("Product %q is no longer available", line.NameFr)))
			return
		}
		if !product.InStock || product.Quantity < line.Quantity {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, fmt.Sprintf("Product %q is out of stock", product.NameFr)))
			return
		}

		lineSubtotal := product.Price * float64(line.Quantity)
		subtotal += lineSubtotal
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			NameFr:    product.NameFr,
			NameAr:    product.NameAr,
			Price:     product.Price,
			Quantity:  line.Quantity,
			Subtotal:  lineSubtotal,
		})
	}

	addressJSON, err := json.Marshal(req.Address)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid address"))
		return
	}

	order := models.Order{
		OrderNumber:     newOrderNumber(),
		CustomerID:      customerID,
		AddressSnapshot: addressJSON,
		Subtotal:        subtotal,
		TotalAmount:     subtotal,
		Status:          models.OrderStatusPending,
		CustomerNotes:   req.CustomerNotes,
	}

	err = config.Gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		// Decrement stock inside the same transaction
		for _, item := range items {
			result := tx.Model(&models.Product{}).
				Where("id = ? AND quantity >= ?", item.ProductID, item.Quantity).
				UpdateColumn("quantity", gorm.Expr("quantity - ?", item.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("insufficient stock for product %d", item.ProductID)
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[checkout] failed to place order: %v", err)
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Failed to place order"))
		return
	}

	session.Clear(c.Request.Context())
	log.Printf("✅ [checkout] order %s placed (%d items, %.2f)", order.OrderNumber, len(items), order.TotalAmount)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order placed successfully", models.OrderWithItems{
		Order: order,
		Items: items,
	}))
}

package order_controller

import (
	"log"
	"net/http"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/config"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetOrders godoc
// @Summary List the customer's orders
// @Description Return the logged-in customer's order history, newest first.
// @Tags Storefront - Orders
// @Produce json
// @Success 200 {object} models.ApiResponse "Orders fetched successfully"
// @Failure 401 {object} models.ApiResponse "Login required"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/orders [get]
func GetOrders(c *gin.Context) {
	customerID, err := uuid.Parse(c.GetString("customerID"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Login required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	rows, err := config.DB.Query(ctx, `
		SELECT o.id, o.order_number, o.status, o.total_amount, o.created_at,
		       COUNT(i.id)
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.customer_id = $1
		GROUP BY o.id
		ORDER BY o.created_at DESC`, customerID)
	if err != nil {
		log.Printf("[orders] failed to fetch history for %s: %v", customerID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}
	defer rows.Close()

	history := make([]models.OrderHistoryResponse, 0)
	for rows.Next() {
		var row models.OrderHistoryResponse
		if err := rows.Scan(&row.ID, &row.OrderNumber, &row.Status, &row.TotalAmount, &row.CreatedAt, &row.ItemCount); err != nil {
			log.Printf("[orders] failed to scan history row: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
			return
		}
		history = append(history, row)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Orders fetched successfully", history))
}

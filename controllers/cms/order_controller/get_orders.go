package order_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/catalog"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/config"
	"github.com/MotoSouk-Ecommerce/motosouk-store-backend/models"
	"github.com/gin-gonic/gin"
)

// GetOrders godoc
// @Summary List orders (back office)
// @Description Paginated order table with customer name and item counts. Supports status filter and order-number search.
// @Tags CMS - Orders
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param status query string false "Status filter (pending | processing | shipped | completed | cancelled)"
// @Param q query string false "Search by order number or customer email"
// @Success 200 {object} models.ApiResponse "Orders fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Security AdminAuth
// @Router /admin/orders [get]
func GetOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	conditions := "TRUE"
	args := []interface{}{}
	argn := 1

	switch status := c.Query("status"); status {
	case models.OrderStatusPending, models.OrderStatusProcessing, models.OrderStatusShipped,
		models.OrderStatusCompleted, models.OrderStatusCancelled:
		conditions += " AND o.status = $" + strconv.Itoa(argn)
		args = append(args, status)
		argn++
	}
	if q := c.Query("q"); q != "" {
		conditions += " AND (o.order_number ILIKE $" + strconv.Itoa(argn) + " OR cu.email ILIKE $" + strconv.Itoa(argn) + ")"
		args = append(args, "%"+q+"%")
		argn++
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var total int
	countQuery := `
		SELECT COUNT(*)
		FROM orders o
		JOIN customers cu ON cu.id = o.customer_id
		WHERE ` + conditions
	if err := config.DB.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Printf("[cms] failed to count orders: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	dataQuery := `
		SELECT o.id, o.order_number, o.customer_id, cu.name, cu.email, o.created_at,
		       COUNT(i.id), COALESCE(SUM(i.quantity), 0), o.total_amount, o.status
		FROM orders o
		JOIN customers cu ON cu.id = o.customer_id
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE ` + conditions + `
		GROUP BY o.id, cu.name, cu.email
		ORDER BY o.created_at DESC
		LIMIT $` + strconv.Itoa(argn) + ` OFFSET $` + strconv.Itoa(argn+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := config.DB.Query(ctx, dataQuery, args...)
	if err != nil {
		log.Printf("[cms] failed to fetch orders: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}
	defer rows.Close()

	orders := make([]models.CMSOrderListRow, 0)
	for rows.Next() {
		var row models.CMSOrderListRow
		if err := rows.Scan(&row.ID, &row.OrderNumber, &row.CustomerID, &row.CustomerName,
			&row.CustomerEmail, &row.CreatedAt, &row.ItemCount, &row.TotalQuantity,
			&row.TotalAmount, &row.Status); err != nil {
			log.Printf("[cms] failed to scan order row: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
			return
		}
		orders = append(orders, row)
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders fetched successfully", orders, &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: catalog.PageCount(total, limit),
	}))
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Order status workflow: pending → processing → shipped → completed,
// with cancelled reachable from pending/processing.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// orderStatusFlow lists the legal transitions per current status.
var orderStatusFlow = map[string][]string{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusCompleted},
	OrderStatusCompleted:  {},
	OrderStatusCancelled:  {},
}

// CanTransitionOrderStatus reports whether an order may move from one status
// to another.
func CanTransitionOrderStatus(from, to string) bool {
	for _, next := range orderStatusFlow[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Order represents a complete customer order
type Order struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	OrderNumber     string         `json:"order_number" gorm:"uniqueIndex;not null"`
	CustomerID      uuid.UUID      `json:"customer_id" gorm:"type:uuid;not null;index"`
	AddressSnapshot datatypes.JSON `json:"address_snapshot,omitempty" gorm:"type:jsonb"`
	Subtotal        float64        `json:"subtotal" gorm:"type:numeric(12,2);not null"`
	Tax             float64        `json:"tax" gorm:"type:numeric(12,2);default:0"`
	ShippingCost    float64        `json:"shipping_cost" gorm:"type:numeric(12,2);default:0"`
	TotalAmount     float64        `json:"total_amount" gorm:"type:numeric(12,2);not null"`
	Status          string         `json:"status" gorm:"not null;default:'pending';index"`
	CustomerNotes   *string        `json:"customer_notes,omitempty"`
	AdminNotes      *string        `json:"admin_notes,omitempty"`
	CreatedAt       time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	ShippedAt       *time.Time     `json:"shipped_at,omitempty"`
	CompletedAt     *time.Time     `json:"completed_at,omitempty"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem represents an individual product in an order. Name and price are
// snapshotted at checkout time so later catalog edits never rewrite history.
type OrderItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID uint      `json:"product_id" gorm:"not null"`
	NameFr    string    `json:"name_fr" gorm:"not null"`
	NameAr    string    `json:"name_ar" gorm:"not null"`
	Price     float64   `json:"price" gorm:"type:numeric(12,2);not null"`
	Quantity  int       `json:"quantity" gorm:"not null;check:quantity >= 1"`
	Subtotal  float64   `json:"subtotal" gorm:"type:numeric(12,2);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (OrderItem) TableName() string {
	return "order_items"
}

// OrderWithItems combines order and its items
type OrderWithItems struct {
	Order
	Items []OrderItem `gorm:"-" json:"items"`
}

// OrderAddress is the shape serialized into Order.AddressSnapshot.
type OrderAddress struct {
	FullName string  `json:"full_name" binding:"required"`
	Phone    string  `json:"phone" binding:"required"`
	Street   string  `json:"street" binding:"required"`
	City     string  `json:"city" binding:"required"`
	Zip      *string `json:"zip,omitempty"`
	Country  string  `json:"country" binding:"required"`
}

// CreateOrderRequest for checkout. Items are repriced server-side from the
// catalog; client prices are never trusted.
type CreateOrderRequest struct {
	Address       OrderAddress `json:"address" binding:"required"`
	CustomerNotes *string      `json:"customer_notes,omitempty"`
}

// OrderHistoryResponse for the customer order list view
type OrderHistoryResponse struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	ItemCount   int       `json:"item_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// CMSOrderListRow is one row of the back-office order table
type CMSOrderListRow struct {
	ID            uuid.UUID `json:"id"`
	OrderNumber   string    `json:"order_number"`
	CustomerID    uuid.UUID `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CreatedAt     time.Time `json:"created_at"`
	ItemCount     int       `json:"item_count"`
	TotalQuantity int       `json:"total_quantity"`
	TotalAmount   float64   `json:"total_amount"`
	Status        string    `json:"status"`
}

type UpdateOrderStatusRequest struct {
	Status     string  `json:"status" binding:"required,oneof=pending processing shipped completed cancelled"`
	AdminNotes *string `json:"admin_notes,omitempty"` // required if status=cancelled
}

type UpdateOrderStatusResponse struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	AdminNotes  *string   `json:"admin_notes,omitempty"`
}

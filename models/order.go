package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order statuses. Status is overwritten directly by admin action; there is no
// transition state machine, only membership validation.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderStatuses lists every accepted order status value.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// IsValidOrderStatus reports whether s is one of the enumerated order statuses.
func IsValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Address is the shipping destination embedded on an order. It is persisted
// as a single JSON column rather than normalized into its own table.
type Address struct {
	FullName   string `json:"full_name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

// Value marshals the address to its JSON column representation.
func (a Address) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan unmarshals the JSON column back into the address.
func (a *Address) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	case nil:
		*a = Address{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Address", value)
	}
}

// Order is created exactly once at checkout. The monetary fields are computed
// server-side and immutable after creation; only Status is mutated later, by
// admin action.
type Order struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Status          string          `gorm:"not null;default:'pending'" json:"status"`
	ShippingAddress Address         `gorm:"type:json;not null" json:"shipping_address"`
	Subtotal        decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
	ShippingCost    decimal.Decimal `gorm:"type:decimal(10,2)" json:"shipping_cost"`
	Tax             decimal.Decimal `gorm:"type:decimal(10,2)" json:"tax"`
	Total           decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// BeforeCreate assigns the primary key explicitly
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OrderItem is one line of an order. ProductName, ProductImage and UnitPrice
// are copied from the product at purchase time so later edits or deletion of
// the product never alter historical orders. Rows are written once and never
// updated.
type OrderItem struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID    uuid.UUID       `gorm:"type:uuid" json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductImage string          `json:"product_image"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(10,2)" json:"unit_price"`
	Total        decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`
}

// TableName specifies the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// BeforeCreate assigns the primary key explicitly
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

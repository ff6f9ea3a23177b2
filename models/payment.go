package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment statuses.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusApproved = "approved"
	PaymentStatusRejected = "rejected"
	PaymentStatusRefunded = "refunded"
)

// PaymentStatuses lists every accepted payment status value.
var PaymentStatuses = []string{
	PaymentStatusPending,
	PaymentStatusApproved,
	PaymentStatusRejected,
	PaymentStatusRefunded,
}

// IsValidPaymentStatus reports whether s is one of the enumerated payment statuses.
func IsValidPaymentStatus(s string) bool {
	for _, v := range PaymentStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Payment is the stub payment record created alongside an order at checkout.
// There is no gateway integration; status is mutated by admin action only.
type Payment struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	Status        string          `gorm:"not null;default:'pending'" json:"status"`
	PaymentMethod string          `json:"payment_method"`
	TransactionID *string         `json:"transaction_id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TableName specifies the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}

// BeforeCreate assigns the primary key explicitly
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

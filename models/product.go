package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a catalog item. Price and CompareAtPrice are fixed-point
// decimals; monetary values are never handled as floats.
type Product struct {
	ID             uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	CategoryID     *uuid.UUID          `gorm:"type:uuid;index" json:"category_id"`
	Category       *Category           `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Name           string              `gorm:"not null" json:"name"`
	Slug           string              `gorm:"uniqueIndex;not null" json:"slug"`
	Description    string              `json:"description"`
	Price          decimal.Decimal     `gorm:"type:decimal(10,2);not null" json:"price"`
	CompareAtPrice decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"compare_at_price"`
	ImageURL       string              `json:"image_url"`
	Stock          int                 `gorm:"not null;default:0;check:stock >= 0" json:"stock"`
	Featured       bool                `gorm:"not null;default:false" json:"featured"`
	CreatedAt      time.Time           `json:"created_at"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// BeforeCreate assigns the primary key explicitly
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// InStock reports whether any units remain.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

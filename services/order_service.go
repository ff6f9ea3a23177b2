package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/harper-lane/storefront-api/models"
)

// Order placement failures the handler layer maps onto HTTP statuses.
var (
	ErrEmptyOrder        = errors.New("order must contain at least one item")
	ErrInvalidQuantity   = errors.New("item quantity must be greater than zero")
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// OrderLine is one requested (product, quantity) pair. Only the product id is
// trusted; prices and display metadata are resolved server-side.
type OrderLine struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required"`
}

// PlaceOrderRequest carries everything checkout needs from the client.
type PlaceOrderRequest struct {
	ShippingAddress models.Address `json:"shipping_address" binding:"required"`
	Items           []OrderLine    `json:"items" binding:"required"`
	PaymentMethod   string         `json:"payment_method"`
}

// PlaceOrder atomically creates one order, one order item per line and one
// pending payment, or none of them. Each line's product is re-fetched inside
// the transaction for its current price and display metadata, copied onto the
// order item as an immutable snapshot. Stock is decremented conditionally;
// a line that cannot be covered aborts the whole order.
func PlaceOrder(db *gorm.DB, userID uuid.UUID, req PlaceOrderRequest) (*models.Order, error) {
	// Validate before opening the transaction: no zero-item orders.
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}

	if req.PaymentMethod == "" {
		req.PaymentMethod = "Credit Card"
	}

	var orderID uuid.UUID
	err := db.Transaction(func(tx *gorm.DB) error {
		subtotal := decimal.Zero
		items := make([]models.OrderItem, 0, len(req.Items))

		for _, line := range req.Items {
			var product models.Product
			if err := tx.First(&product, "id = ?", line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: %s", ErrProductNotFound, line.ProductID)
				}
				return err
			}

			// Conditional decrement; zero rows affected means the remaining
			// stock cannot cover the requested quantity.
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", product.ID, line.Quantity).
				Update("stock", gorm.Expr("stock - ?", line.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: %s", ErrInsufficientStock, product.Name)
			}

			lineTotal := LineTotal(product.Price, line.Quantity)
			subtotal = subtotal.Add(lineTotal)
			items = append(items, models.OrderItem{
				ProductID:    product.ID,
				ProductName:  product.Name,
				ProductImage: product.ImageURL,
				Quantity:     line.Quantity,
				UnitPrice:    product.Price,
				Total:        lineTotal,
			})
		}

		totals := ComputeTotals(subtotal)

		order := models.Order{
			UserID:          userID,
			Status:          models.OrderStatusPending,
			ShippingAddress: req.ShippingAddress,
			Subtotal:        totals.Subtotal,
			ShippingCost:    totals.Shipping,
			Tax:             totals.Tax,
			Total:           totals.Total,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		payment := models.Payment{
			OrderID:       order.ID,
			Amount:        totals.Total,
			Status:        models.PaymentStatusPending,
			PaymentMethod: req.PaymentMethod,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Re-read the committed order with its items for the response.
	var created models.Order
	if err := db.Preload("Items").First(&created, "id = ?", orderID).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

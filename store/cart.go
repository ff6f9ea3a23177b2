package store

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/harper-lane/storefront-api/models"
	"github.com/harper-lane/storefront-api/services"
)

const cartStorageName = "cart-storage"

// CartLine is one cart entry: a product snapshot plus a quantity. The
// snapshot is what the product looked like when it was added; the server
// re-resolves prices at checkout, so totals derived here are display-only.
type CartLine struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Cart is the client-local shopping cart. Lines are keyed by product id and
// keep their insertion order. Every mutation is written through the
// persistence adapter so the cart survives restarts.
type Cart struct {
	mu      sync.Mutex
	lines   []CartLine
	persist Persistence
}

// NewCart builds a cart backed by the given adapter, restoring any
// previously persisted state.
func NewCart(p Persistence) (*Cart, error) {
	c := &Cart{persist: p}
	data, err := p.Load(cartStorageName)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, &c.lines); err != nil {
		return nil, err
	}
	return c, nil
}

// AddItem puts a product in the cart. Adding a product already present
// increments its quantity instead of adding a second line.
func (c *Cart) AddItem(product models.Product, quantity int) error {
	if quantity <= 0 {
		return errors.New("quantity must be greater than zero")
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == product.ID {
			c.lines[i].Quantity += quantity
			return c.save()
		}
	}
	c.lines = append(c.lines, CartLine{Product: product, Quantity: quantity})
	return c.save()
}

// UpdateQuantity sets a line's quantity. A quantity of zero or less drops
// the line entirely.
func (c *Cart) UpdateQuantity(productID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return c.RemoveItem(productID)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity = quantity
			return c.save()
		}
	}
	return nil
}

// RemoveItem drops a product's line from the cart.
func (c *Cart) RemoveItem(productID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return c.save()
		}
	}
	return nil
}

// Clear empties the cart, typically after a successful checkout.
func (c *Cart) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	return c.save()
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// TotalItems returns the summed quantity across all lines.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// Subtotal sums price times quantity over all lines.
func (c *Cart) Subtotal() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subtotalLocked()
}

func (c *Cart) subtotalLocked() decimal.Decimal {
	subtotal := decimal.Zero
	for _, l := range c.lines {
		subtotal = subtotal.Add(services.LineTotal(l.Product.Price, l.Quantity))
	}
	return subtotal
}

// Shipping derives the shipping cost from the current subtotal using the
// same rules the server applies at checkout.
func (c *Cart) Shipping() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return services.ShippingCost(c.subtotalLocked())
}

// Tax derives the flat-rate tax from the current subtotal.
func (c *Cart) Tax() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return services.Tax(c.subtotalLocked())
}

// Total is subtotal plus shipping plus tax.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return services.ComputeTotals(c.subtotalLocked()).Total
}

// CheckoutItems converts the cart into the order lines the checkout endpoint
// expects: product references and quantities only, prices left to the server.
func (c *Cart) CheckoutItems() []services.OrderLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]services.OrderLine, 0, len(c.lines))
	for _, l := range c.lines {
		out = append(out, services.OrderLine{ProductID: l.Product.ID, Quantity: l.Quantity})
	}
	return out
}

func (c *Cart) save() error {
	data, err := json.Marshal(c.lines)
	if err != nil {
		return err
	}
	return c.persist.Save(cartStorageName, data)
}

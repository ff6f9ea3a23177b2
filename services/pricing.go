package services

import (
	"github.com/shopspring/decimal"
)

// Pricing constants shared by server-side checkout and the client cart store,
// so displayed totals and persisted totals come from the same arithmetic.
var (
	// FreeShippingThreshold is the subtotal above which shipping is free.
	// Strictly greater than: a subtotal of exactly 100.00 still pays shipping.
	FreeShippingThreshold = decimal.NewFromInt(100)

	// FlatShippingCost applies to every order at or below the threshold.
	FlatShippingCost = decimal.NewFromInt(15)

	// TaxRate is a flat 8%, not geography-aware.
	TaxRate = decimal.NewFromFloat(0.08)
)

// LineTotal returns unit price times quantity, rounded to the cent.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

// ShippingCost returns 0 when the subtotal exceeds the free-shipping
// threshold and the flat rate otherwise.
func ShippingCost(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(FreeShippingThreshold) {
		return decimal.Zero
	}
	return FlatShippingCost
}

// Tax returns the flat-rate tax on a subtotal, rounded to the cent.
func Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(TaxRate).Round(2)
}

// Totals is the derived money breakdown for a set of order lines.
type Totals struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals derives shipping, tax and grand total from a subtotal.
func ComputeTotals(subtotal decimal.Decimal) Totals {
	subtotal = subtotal.Round(2)
	shipping := ShippingCost(subtotal)
	tax := Tax(subtotal)
	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax).Round(2),
	}
}

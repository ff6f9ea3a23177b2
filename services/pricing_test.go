package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestShippingCost(t *testing.T) {
	tests := []struct {
		name     string
		subtotal string
		expected string
	}{
		{"Zero subtotal pays flat rate", "0", "15"},
		{"Small order pays flat rate", "40.00", "15"},
		{"Exactly at threshold still pays flat rate", "100.00", "15"},
		{"One cent over threshold ships free", "100.01", "0"},
		{"Large order ships free", "105.00", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShippingCost(d(tt.subtotal))
			assert.True(t, got.Equal(d(tt.expected)),
				"expected shipping %s for subtotal %s, got %s", tt.expected, tt.subtotal, got)
		})
	}
}

func TestTax(t *testing.T) {
	tests := []struct {
		name     string
		subtotal string
		expected string
	}{
		{"Zero subtotal", "0", "0"},
		{"Rounds to the cent", "40.00", "3.20"},
		{"Large subtotal", "105.00", "8.40"},
		{"Half-cent rounds", "0.06", "0.00"},
		{"Odd subtotal", "19.99", "1.60"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tax(d(tt.subtotal))
			assert.True(t, got.Equal(d(tt.expected)),
				"expected tax %s for subtotal %s, got %s", tt.expected, tt.subtotal, got)
		})
	}
}

func TestLineTotal(t *testing.T) {
	assert.True(t, LineTotal(d("20.00"), 2).Equal(d("40.00")))
	assert.True(t, LineTotal(d("19.99"), 3).Equal(d("59.97")))
	assert.True(t, LineTotal(d("0.01"), 1).Equal(d("0.01")))
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name     string
		subtotal string
		shipping string
		tax      string
		total    string
	}{
		// Cart of 40.00 + 65.00: over the free-shipping threshold
		{"Free shipping order", "105.00", "0", "8.40", "113.40"},
		// Cart of 20.00 x 2: under the threshold
		{"Flat shipping order", "40.00", "15", "3.20", "58.20"},
		{"Boundary subtotal", "100.00", "15", "8.00", "123.00"},
		{"Empty-equivalent subtotal", "0", "15", "0", "15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := ComputeTotals(d(tt.subtotal))
			assert.True(t, totals.Shipping.Equal(d(tt.shipping)), "shipping: got %s", totals.Shipping)
			assert.True(t, totals.Tax.Equal(d(tt.tax)), "tax: got %s", totals.Tax)
			assert.True(t, totals.Total.Equal(d(tt.total)), "total: got %s", totals.Total)

			// The defining invariant: total is exactly the sum of its parts.
			sum := totals.Subtotal.Add(totals.Shipping).Add(totals.Tax)
			assert.True(t, totals.Total.Equal(sum), "total must equal subtotal + shipping + tax")
		})
	}
}

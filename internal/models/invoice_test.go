package models_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"accounting-backend/internal/models"
)

func TestTotalAmountSumsLineItems(t *testing.T) {
	inv := &models.Invoice{LineItems: []models.LineItem{
		{Description: "A", Quantity: 2, UnitPrice: decimal.RequireFromString("10")},
		{Description: "B", Quantity: 1, UnitPrice: decimal.RequireFromString("5")},
	}}

	assert.True(t, inv.TotalAmount().Equal(decimal.RequireFromString("25")),
		"got %s", inv.TotalAmount())
}

func TestTotalAmountEmptyInvoiceIsZero(t *testing.T) {
	inv := &models.Invoice{}
	assert.True(t, inv.TotalAmount().IsZero())
}

func TestTotalAmountNoFixedPointDrift(t *testing.T) {
	// 3 * 0.10 must be exactly 0.30, not a float approximation.
	inv := &models.Invoice{LineItems: []models.LineItem{
		{Description: "dimes", Quantity: 3, UnitPrice: decimal.RequireFromString("0.10")},
	}}

	assert.Equal(t, "0.30", inv.TotalAmount().StringFixed(2))
	assert.True(t, inv.TotalAmount().Equal(decimal.RequireFromString("0.3")))
}

package models

import "github.com/shopspring/decimal"

// LineItem is owned by an invoice. Quantity and unit price must be
// positive; the checks are enforced by the store.
type LineItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	InvoiceID   uint            `gorm:"not null;index" json:"invoice_id"`
	Description string          `gorm:"size:500;not null" json:"description"`
	Quantity    int             `gorm:"not null;check:quantity > 0" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(10,2);not null;check:unit_price > 0" json:"unit_price"`
}

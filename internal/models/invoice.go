package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	StatusDraft  InvoiceStatus = "draft"
	StatusIssued InvoiceStatus = "issued"
	StatusPaid   InvoiceStatus = "paid"
)

// Invoice belongs to a customer and owns an ordered collection of line
// items. Its total is derived from the line items and never stored.
type Invoice struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	CustomerID uint          `gorm:"not null;index" json:"customer_id"`
	Status     InvoiceStatus `gorm:"type:varchar(16);not null;default:draft" json:"status"`
	IssuedAt   *time.Time    `json:"issued_at"`
	CreatedAt  time.Time     `gorm:"not null" json:"created_at"`

	LineItems []LineItem `gorm:"constraint:OnDelete:CASCADE" json:"line_items,omitempty"`
}

// TotalAmount sums quantity * unit price over the loaded line items.
// The repository exposes an equivalent server-side aggregate for reads
// that don't load the collection.
func (inv *Invoice) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, li := range inv.LineItems {
		total = total.Add(li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity))))
	}
	return total
}

package models

import "time"

// Customer owns a collection of invoices. Deleting a customer cascades to
// its invoices and, transitively, their line items.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Email     *string   `gorm:"size:320" json:"email"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	Invoices []Invoice `gorm:"constraint:OnDelete:CASCADE" json:"invoices,omitempty"`
}

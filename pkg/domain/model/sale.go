package model

import (
	"time"

	"github.com/google/uuid"
)

// SaleEntryID is a UUID-based identifier for SaleEntry
type SaleEntryID string

// NewSaleEntryID generates a new UUID v4 SaleEntryID
func NewSaleEntryID() SaleEntryID {
	return SaleEntryID(uuid.New().String())
}

// SaleEntry is an append-only sale registration
type SaleEntry struct {
	ID              SaleEntryID
	CompanyID       CompanyID
	UserPhone       string `masq:"secret"`
	Item            string
	Quantity        string
	OriginalMessage string
	CreatedAt       time.Time
}

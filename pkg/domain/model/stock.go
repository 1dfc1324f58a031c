package model

import (
	"time"

	"github.com/google/uuid"
)

// StockEntryID is a UUID-based identifier for StockEntry
type StockEntryID string

// NewStockEntryID generates a new UUID v4 StockEntryID
func NewStockEntryID() StockEntryID {
	return StockEntryID(uuid.New().String())
}

// StockEntry is an append-only stock registration. Quantity and expiry are
// kept as the literal user-supplied strings; no normalization is applied.
type StockEntry struct {
	ID              StockEntryID
	CompanyID       CompanyID
	UserPhone       string `masq:"secret"`
	Product         string
	Quantity        string
	ExpiryDate      string
	OriginalMessage string
	CreatedAt       time.Time
}

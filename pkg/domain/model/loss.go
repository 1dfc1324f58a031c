package model

import (
	"time"

	"github.com/google/uuid"
)

// LossEntryID is a UUID-based identifier for LossEntry
type LossEntryID string

// NewLossEntryID generates a new UUID v4 LossEntryID
func NewLossEntryID() LossEntryID {
	return LossEntryID(uuid.New().String())
}

// LossEntry is an append-only loss registration
type LossEntry struct {
	ID              LossEntryID
	CompanyID       CompanyID
	UserPhone       string `masq:"secret"`
	Product         string
	Quantity        string
	Reason          string
	OriginalMessage string
	CreatedAt       time.Time
}

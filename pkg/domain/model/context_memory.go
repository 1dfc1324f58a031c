package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/prato-lab/prato/pkg/domain/types"
)

// ContextMemoryID is a UUID-based identifier for ContextMemory
type ContextMemoryID string

// NewContextMemoryID generates a new UUID v4 ContextMemoryID
func NewContextMemoryID() ContextMemoryID {
	return ContextMemoryID(uuid.New().String())
}

// ContextMemory is an append-only derived-insight record produced by the
// weekly summary and data analysis handlers. Later oracle calls receive
// recent memories as prior context.
type ContextMemory struct {
	ID        ContextMemoryID
	CompanyID CompanyID
	UserPhone string `masq:"secret"`
	Summary   string
	Type      types.MemoryType
	Tags      []string
	CreatedAt time.Time
}

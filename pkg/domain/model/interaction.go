package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/prato-lab/prato/pkg/domain/types"
)

// InteractionID is a UUID-based identifier for Interaction
type InteractionID string

// NewInteractionID generates a new UUID v4 InteractionID
func NewInteractionID() InteractionID {
	return InteractionID(uuid.New().String())
}

// Interaction is the full audit record of one turn: inbound message,
// resolved intent, final reply and any context fed to the oracle.
// Exactly one is appended per turn regardless of the turn's outcome.
type Interaction struct {
	ID          InteractionID
	CompanyID   CompanyID
	UserPhone   string `masq:"secret"`
	Message     string
	Intent      types.Intent
	Response    string
	Attachments []Attachment
	ContextUsed string
	CreatedAt   time.Time
}

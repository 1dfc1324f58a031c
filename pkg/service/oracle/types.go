package oracle

import (
	"context"

	"github.com/prato-lab/prato/pkg/domain/types"
)

// Classification is the structured result of intent classification
type Classification struct {
	Intent      types.Intent
	Observation string
}

// FallbackClassification is returned whenever the oracle fails or produces
// output that does not parse as the expected two-field structure.
// Classification never raises and never blocks a turn.
func FallbackClassification() Classification {
	return Classification{
		Intent:      types.IntentGeneralConversation,
		Observation: "fallback",
	}
}

// Service is the language-model oracle used by the conversation router.
// It is a text-completion collaborator; all prompt construction and
// fallback policy live on this side of the boundary.
type Service interface {
	// Classify resolves the intent of an inbound message. It fails open:
	// any oracle error or malformed output yields FallbackClassification.
	Classify(ctx context.Context, text string) Classification

	// ExtractProductName pulls a bare product name out of a free-form
	// recipe request
	ExtractProductName(ctx context.Context, text string) (string, error)

	// Narrate generates free-form text for the given prompt
	Narrate(ctx context.Context, prompt string) (string, error)
}

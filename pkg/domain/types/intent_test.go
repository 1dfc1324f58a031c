package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/prato-lab/prato/pkg/domain/types"
)

func TestParseIntent(t *testing.T) {
	t.Run("known values round-trip", func(t *testing.T) {
		for _, intent := range types.AllIntents() {
			gt.Value(t, types.ParseIntent(intent.String())).Equal(intent)
		}
	})

	t.Run("unknown values fall back", func(t *testing.T) {
		gt.Value(t, types.ParseIntent("order_pizza")).Equal(types.IntentUnknown)
		gt.Value(t, types.ParseIntent("")).Equal(types.IntentUnknown)
		gt.Value(t, types.ParseIntent("REGISTER_STOCK")).Equal(types.IntentUnknown)
	})

	t.Run("unknown is not a classifiable intent", func(t *testing.T) {
		gt.Bool(t, types.IntentUnknown.IsValid()).False()
		gt.Array(t, types.AllIntents()).Length(9)
	})
}

func TestIntentRequiredRole(t *testing.T) {
	adminOnly := []types.Intent{
		types.IntentRegisterLoss,
		types.IntentRegisterStock,
		types.IntentRegisterSales,
		types.IntentRegisterRecipe,
	}
	for _, intent := range adminOnly {
		gt.Value(t, intent.RequiredRole()).Equal(types.RoleAdmin)
	}

	open := []types.Intent{
		types.IntentWeeklySummary,
		types.IntentRequestRecipe,
		types.IntentAnalyzeData,
		types.IntentGeneralConversation,
		types.IntentSendFile,
		types.IntentUnknown,
	}
	for _, intent := range open {
		gt.Value(t, intent.RequiredRole()).Equal(types.Role(""))
	}
}

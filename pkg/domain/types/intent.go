package types

// Intent represents the classified purpose of an inbound message
type Intent string

const (
	IntentRegisterLoss        Intent = "register_loss"
	IntentRegisterStock       Intent = "register_stock"
	IntentRegisterSales       Intent = "register_sales"
	IntentRegisterRecipe      Intent = "register_recipe"
	IntentWeeklySummary       Intent = "weekly_summary_request"
	IntentRequestRecipe       Intent = "request_recipe"
	IntentAnalyzeData         Intent = "analyze_data"
	IntentGeneralConversation Intent = "general_conversation"
	IntentSendFile            Intent = "send_file"

	// IntentUnknown is the fallback variant for unclassifiable values
	IntentUnknown Intent = "unknown"
)

// AllIntents returns the nine classifiable intents (excluding unknown)
func AllIntents() []Intent {
	return []Intent{
		IntentRegisterLoss,
		IntentRegisterStock,
		IntentRegisterSales,
		IntentRegisterRecipe,
		IntentWeeklySummary,
		IntentRequestRecipe,
		IntentAnalyzeData,
		IntentGeneralConversation,
		IntentSendFile,
	}
}

// ParseIntent maps a raw string to an Intent, falling back to IntentUnknown
func ParseIntent(s string) Intent {
	for _, it := range AllIntents() {
		if string(it) == s {
			return it
		}
	}
	return IntentUnknown
}

// IsValid checks if the intent is one of the nine classifiable intents
func (i Intent) IsValid() bool {
	for _, it := range AllIntents() {
		if i == it {
			return true
		}
	}
	return false
}

// RequiredRole returns the role required to execute the intent.
// Mutating intents require admin; read-only intents return an empty role.
func (i Intent) RequiredRole() Role {
	switch i {
	case IntentRegisterLoss, IntentRegisterStock, IntentRegisterSales, IntentRegisterRecipe:
		return RoleAdmin
	default:
		return ""
	}
}

// String returns the string representation of the intent
func (i Intent) String() string {
	return string(i)
}

package usecase

import (
	"regexp"
	"strings"

	"github.com/prato-lab/prato/pkg/domain/model"
)

// ExtractField scans text case-insensitively for `field : value` and returns
// the trimmed value, which runs up to the next comma or the end of the
// string. A comma inside a value terminates it; there is no escaping.
// Returns an empty string when the field is absent.
func ExtractField(text, field string) string {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(field) + `\s*:\s*([^,]+)`)
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// ExtractFieldToEnd is like ExtractField but captures everything after the
// label up to the end of the string, commas included. Used for
// comma-separated list fields such as recipe ingredients.
func ExtractFieldToEnd(text, field string) string {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(field) + `\s*:\s*(.+)$`)
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// ParseIngredients splits a comma-separated ingredient list of
// "<name> <quantity>" tokens. Within each token the last whitespace-separated
// part is the quantity and the rest joined is the name. Tokens with fewer
// than two parts are silently dropped.
func ParseIngredients(text string) []model.Ingredient {
	ingredients := []model.Ingredient{}
	for _, token := range strings.Split(text, ",") {
		parts := strings.Fields(token)
		if len(parts) < 2 {
			continue
		}
		ingredients = append(ingredients, model.Ingredient{
			Name:     strings.Join(parts[:len(parts)-1], " "),
			Quantity: parts[len(parts)-1],
		})
	}
	return ingredients
}

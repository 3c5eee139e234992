package assistant

import "strings"

// Keyword groups checked in precedence order. A message containing both a
// cocktail keyword and a cost keyword classifies as cocktails; precedence
// is part of the contract, not an accident of iteration order.
var (
	cocktailKeywords = []string{
		"cocktail", "drink", "beverage", "mixology", "bar program", "mocktail", "spirits",
	}
	efficiencyKeywords = []string{
		"efficiency", "efficient", "cost", "labor", "labour", "waste", "scheduling", "workflow", "overhead", "margin",
	}
	flavorKeywords = []string{
		"flavor", "flavour", "pairing", "ingredient", "taste", "seasoning", "complement",
	}
)

// Classify assigns exactly one category given the user's message and the
// model's response, matching keywords case-insensitively against both
// texts. Unrecognized content defaults to menu.
func Classify(userMessage, response string) Category {
	combined := strings.ToLower(userMessage) + " " + strings.ToLower(response)

	switch {
	case containsAny(combined, cocktailKeywords):
		return CategoryCocktails
	case containsAny(combined, efficiencyKeywords):
		return CategoryEfficiency
	case containsAny(combined, flavorKeywords):
		return CategoryFlavorPairing
	default:
		return CategoryMenu
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

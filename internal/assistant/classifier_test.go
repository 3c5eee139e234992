package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		response string
		want     Category
	}{
		{
			name:    "cocktail keyword in message",
			message: "What cocktail should we add?",
			want:    CategoryCocktails,
		},
		{
			name:     "beverage keyword in response only",
			message:  "Any ideas for the summer?",
			response: "A spritz-style beverage would suit the patio season.",
			want:     CategoryCocktails,
		},
		{
			name:    "efficiency keywords",
			message: "How do we reduce food waste during prep?",
			want:    CategoryEfficiency,
		},
		{
			name:     "flavor pairing keywords",
			message:  "What goes well with fennel?",
			response: "Fennel's anise flavor works with citrus and olive oil.",
			want:     CategoryFlavorPairing,
		},
		{
			name:    "no recognized keywords defaults to menu",
			message: "Should we open on Mondays?",
			want:    CategoryMenu,
		},
		{
			name:    "empty inputs default to menu",
			message: "",
			want:    CategoryMenu,
		},
		{
			name:    "matching is case insensitive",
			message: "COCKTAIL NIGHT planning",
			want:    CategoryCocktails,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.message, tt.response))
		})
	}
}

// A message mentioning both drinks and costs must classify as cocktails;
// the check order is a fixed precedence, not a scoring contest.
func TestClassifyPrecedence(t *testing.T) {
	got := Classify("Can a new cocktail menu lower our beverage cost?", "")
	assert.Equal(t, CategoryCocktails, got)

	got = Classify("", "Cutting labor cost matters more than ingredient sourcing here.")
	assert.Equal(t, CategoryEfficiency, got)
}

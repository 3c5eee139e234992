package assistant

import "fmt"

// Category is the coarse topic label assigned to an assistant response.
type Category string

const (
	CategoryCocktails     Category = "cocktails"
	CategoryEfficiency    Category = "efficiency"
	CategoryFlavorPairing Category = "flavor-pairing"
	CategoryMenu          Category = "menu"
)

// LengthPreference controls how verbose the assistant is asked to be.
type LengthPreference string

const (
	LengthBrief    LengthPreference = "brief"
	LengthBalanced LengthPreference = "balanced"
	LengthDetailed LengthPreference = "detailed"
)

// RestaurantProfile describes one restaurant's identity, operations and
// goals. It is assembled by the caller per advice request and is not
// mutated by the assistant.
type RestaurantProfile struct {
	Name              string
	Theme             string
	Categories        []string
	KitchenCapability string
	StaffSize         int

	EstablishmentType string
	ServiceStyle      string
	Location          string
	TargetDemographic string
	PricePosition     string
	TargetMargin      float64
	FoodCostTarget    float64

	DietaryNeeds []string
	Equipment    []string
	Challenges   []string
	Priorities   []string
}

// ConversationTurn is one prior message in the dialogue.
type ConversationTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// RecipeDetails holds the structured part of a recommendation when the
// response contained recognizable ingredient/instruction sections.
type RecipeDetails struct {
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
}

// Recommendation is a structured suggestion derived from model output.
type Recommendation struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Recipe      *RecipeDetails `json:"recipe,omitempty"`
}

// ChefResponse is the result of one advice request.
type ChefResponse struct {
	Content         string           `json:"content"`
	Category        Category         `json:"category"`
	Recommendations []Recommendation `json:"recommendations"`
}

// GenerationError reports a failed or empty completion from the text
// generation provider. Extraction and classification never fail; this is
// the only error an advice request can surface.
type GenerationError struct {
	Provider string
	Err      error
}

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("generation failed (%s): empty response", e.Provider)
	}
	return fmt.Sprintf("generation failed (%s): %v", e.Provider, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

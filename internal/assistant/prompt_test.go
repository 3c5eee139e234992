package assistant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func minimalProfile() RestaurantProfile {
	return RestaurantProfile{
		Name:              "The Copper Pot",
		Theme:             "modern bistro",
		Categories:        []string{"french", "seasonal"},
		KitchenCapability: "standard",
		StaffSize:         12,
	}
}

func TestBuildSystemPromptRequiredLines(t *testing.T) {
	prompt := BuildSystemPrompt(minimalProfile())

	assert.Contains(t, prompt, "- Name: The Copper Pot")
	assert.Contains(t, prompt, "- Theme: modern bistro")
	assert.Contains(t, prompt, "- Cuisine categories: french, seasonal")
	assert.Contains(t, prompt, "- Kitchen capability: standard")
	assert.Contains(t, prompt, "- Staff size: 12")
}

func TestBuildSystemPromptEmptyRequiredFields(t *testing.T) {
	prompt := BuildSystemPrompt(RestaurantProfile{})

	// Required lines are always present, rendered as "not specified"
	// rather than omitted.
	assert.Contains(t, prompt, "- Name: not specified")
	assert.Contains(t, prompt, "- Theme: not specified")
	assert.Contains(t, prompt, "- Cuisine categories: not specified")
	assert.Contains(t, prompt, "- Kitchen capability: not specified")
	assert.Contains(t, prompt, "- Staff size: not specified")
}

func TestBuildSystemPromptOmitsAbsentOptionalFields(t *testing.T) {
	prompt := BuildSystemPrompt(minimalProfile())

	for _, label := range []string{
		"Establishment type", "Service style", "Location",
		"Target demographic", "Price position", "Target margin",
		"Food cost target", "Dietary needs", "Available equipment",
		"Current challenges", "Priorities",
	} {
		assert.NotContains(t, prompt, label)
	}
}

func TestBuildSystemPromptOptionalFieldsToggleIndependently(t *testing.T) {
	profile := minimalProfile()
	profile.Location = "Ottawa"
	profile.TargetMargin = 22.5
	profile.DietaryNeeds = []string{"gluten-free", "vegan"}

	prompt := BuildSystemPrompt(profile)

	assert.Contains(t, prompt, "- Location: Ottawa")
	assert.Contains(t, prompt, "- Target margin: 22.5%")
	assert.Contains(t, prompt, "- Dietary needs to accommodate: gluten-free, vegan")

	// Siblings stay absent.
	assert.NotContains(t, prompt, "Service style")
	assert.NotContains(t, prompt, "Food cost target")
	assert.NotContains(t, prompt, "Current challenges")
}

func TestBuildSystemPromptScalesWithProfile(t *testing.T) {
	profile := minimalProfile()
	for i := 0; i < 200; i++ {
		profile.Equipment = append(profile.Equipment, "station item")
	}

	// No size bound on the rendered prompt.
	prompt := BuildSystemPrompt(profile)
	assert.Greater(t, len(prompt), 2000)
	assert.True(t, strings.Contains(prompt, "Available equipment"))
}

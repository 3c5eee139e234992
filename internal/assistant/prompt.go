package assistant

import (
	"fmt"
	"strings"
)

const notSpecified = "not specified"

// BuildSystemPrompt renders a restaurant profile into the system
// instruction for the generation request. The five identity lines are
// always present; every optional attribute independently toggles its own
// line and absent attributes emit nothing at all. Output size is
// unbounded for richly filled profiles.
func BuildSystemPrompt(profile RestaurantProfile) string {
	var b strings.Builder

	b.WriteString("You are an expert executive chef and restaurant consultant advising the following establishment.\n\n")
	b.WriteString("Restaurant profile:\n")
	fmt.Fprintf(&b, "- Name: %s\n", orNotSpecified(profile.Name))
	fmt.Fprintf(&b, "- Theme: %s\n", orNotSpecified(profile.Theme))
	fmt.Fprintf(&b, "- Cuisine categories: %s\n", joinOrNotSpecified(profile.Categories))
	fmt.Fprintf(&b, "- Kitchen capability: %s\n", orNotSpecified(profile.KitchenCapability))
	if profile.StaffSize > 0 {
		fmt.Fprintf(&b, "- Staff size: %d\n", profile.StaffSize)
	} else {
		fmt.Fprintf(&b, "- Staff size: %s\n", notSpecified)
	}

	writeScalar(&b, "Establishment type", profile.EstablishmentType)
	writeScalar(&b, "Service style", profile.ServiceStyle)
	writeScalar(&b, "Location", profile.Location)
	writeScalar(&b, "Target demographic", profile.TargetDemographic)
	writeScalar(&b, "Price position", profile.PricePosition)
	if profile.TargetMargin > 0 {
		fmt.Fprintf(&b, "- Target margin: %.1f%%\n", profile.TargetMargin)
	}
	if profile.FoodCostTarget > 0 {
		fmt.Fprintf(&b, "- Food cost target: %.1f%%\n", profile.FoodCostTarget)
	}

	writeList(&b, "Dietary needs to accommodate", profile.DietaryNeeds)
	writeList(&b, "Available equipment", profile.Equipment)
	writeList(&b, "Current challenges", profile.Challenges)
	writeList(&b, "Priorities", profile.Priorities)

	b.WriteString("\nGround every suggestion in this profile. When proposing a dish or drink, present it as a block starting with \"Recipe:\" or \"Recommendation:\" followed by a bold title, and include Ingredients and Instructions sections where applicable.")

	return b.String()
}

func orNotSpecified(value string) string {
	if strings.TrimSpace(value) == "" {
		return notSpecified
	}
	return value
}

func joinOrNotSpecified(values []string) string {
	if len(values) == 0 {
		return notSpecified
	}
	return strings.Join(values, ", ")
}

func writeScalar(b *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(b, "- %s: %s\n", label, value)
}

func writeList(b *strings.Builder, label string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(b, "- %s: %s\n", label, strings.Join(values, ", "))
}

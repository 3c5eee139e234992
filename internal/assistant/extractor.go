package assistant

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxTitleLen       = 50
	maxDescriptionLen = 200
	ellipsis          = "..."
	fallbackTitle     = "Chef Recommendation"
	fallbackMinLen    = 50
)

var (
	// A marker block is "Recipe:" or "Recommendation:" followed by a bold
	// title. The body runs until the next marker or end of text.
	markerPattern = regexp.MustCompile(`(?i)(?:recipe|recommendation):\s*\*\*(.+?)\*\*`)

	// Section labels recognized inside a block body.
	sectionPattern = regexp.MustCompile(`(?i)(ingredients|instructions|method|directions):`)

	bulletPattern     = regexp.MustCompile(`^[-•*]\s*`)
	enumeratorPattern = regexp.MustCompile(`^\d+[.)]\s*`)
	emphasisStripper  = strings.NewReplacer("*", "", "_", "", "#", "", "`", "")
)

// ExtractRecommendations scans free-form model output for recipe-like
// structures and returns them in order of appearance. It is a pure
// function of its input and never fails: unparseable text yields either a
// single fallback recommendation or nothing.
func ExtractRecommendations(text string) []Recommendation {
	matches := markerPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return fallbackRecommendations(text)
	}

	recs := make([]Recommendation, 0, len(matches))
	for i, m := range matches {
		title := strings.TrimSpace(text[m[2]:m[3]])

		bodyEnd := len(text)
		if i+1 < len(matches) {
			bodyEnd = matches[i+1][0]
		}
		body := strings.TrimSpace(text[m[1]:bodyEnd])

		recs = append(recs, Recommendation{
			Title:       title,
			Description: truncate(body, maxDescriptionLen),
			Recipe:      extractRecipe(body),
		})
	}
	return recs
}

// fallbackRecommendations synthesizes a single recommendation from
// unstructured text, provided the response is substantial enough to be
// worth keeping. Short marker-free replies produce nothing.
func fallbackRecommendations(text string) []Recommendation {
	if utf8.RuneCountInString(text) <= fallbackMinLen {
		return nil
	}

	firstLine := text
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		firstLine = text[:idx]
	}
	title := strings.TrimSpace(emphasisStripper.Replace(firstLine))
	if r := []rune(title); len(r) > maxTitleLen {
		title = strings.TrimSpace(string(r[:maxTitleLen]))
	}
	if title == "" {
		title = fallbackTitle
	}

	return []Recommendation{{
		Title:       title,
		Description: truncate(strings.TrimSpace(text), maxDescriptionLen),
	}}
}

// extractRecipe pulls Ingredients and Instructions/Method/Directions
// sections out of a block body. Returns nil when neither section is
// present so callers can distinguish "no recipe" from an empty one.
func extractRecipe(body string) *RecipeDetails {
	labels := sectionPattern.FindAllStringSubmatchIndex(body, -1)
	if len(labels) == 0 {
		return nil
	}

	var ingredients, instructions []string
	for i, l := range labels {
		name := strings.ToLower(body[l[2]:l[3]])

		end := len(body)
		if i+1 < len(labels) {
			end = labels[i+1][0]
		}
		section := body[l[1]:end]

		switch name {
		case "ingredients":
			ingredients = append(ingredients, splitItems(section, bulletPattern)...)
		default: // instructions, method, directions
			instructions = append(instructions, splitItems(section, bulletPattern, enumeratorPattern)...)
		}
	}

	if len(ingredients) == 0 && len(instructions) == 0 {
		return nil
	}
	return &RecipeDetails{Ingredients: ingredients, Instructions: instructions}
}

// splitItems breaks a section into per-line items, trimming each line and
// removing the leading list marker. Only the marker and the whitespace
// right after it are removed; any later occurrence of the marker rune
// stays part of the item.
func splitItems(section string, markers ...*regexp.Regexp) []string {
	var items []string
	for _, line := range strings.Split(section, "\n") {
		item := strings.TrimSpace(line)
		for _, marker := range markers {
			item = marker.ReplaceAllString(item, "")
		}
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// truncate bounds s to limit characters, marking the cut with an
// ellipsis. A truncated result is always limit+3 characters long.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + ellipsis
}

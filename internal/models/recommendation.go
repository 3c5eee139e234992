package models

import (
	"github.com/jinzhu/gorm"

	"brigade/internal/assistant"
)

// Recommendation persists one structured suggestion extracted from an
// assistant response. The assistant produces these as ephemeral values;
// this is the stored form.
type Recommendation struct {
	gorm.Model
	RestaurantID uint        `json:"restaurant_id"`
	SessionID    string      `json:"session_id"`
	Category     string      `json:"category"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	HasRecipe    bool        `json:"has_recipe"`
	Ingredients  StringSlice `json:"ingredients" gorm:"type:text"`
	Instructions StringSlice `json:"instructions" gorm:"type:text"`
}

// TableName sets the table name for Recommendation
func (Recommendation) TableName() string {
	return "recommendations"
}

// NewRecommendation converts an extracted recommendation into its stored
// form.
func NewRecommendation(restaurantID uint, sessionID string, category assistant.Category, rec assistant.Recommendation) Recommendation {
	stored := Recommendation{
		RestaurantID: restaurantID,
		SessionID:    sessionID,
		Category:     string(category),
		Title:        rec.Title,
		Description:  rec.Description,
	}
	if rec.Recipe != nil {
		stored.HasRecipe = true
		stored.Ingredients = rec.Recipe.Ingredients
		stored.Instructions = rec.Recipe.Instructions
	}
	return stored
}

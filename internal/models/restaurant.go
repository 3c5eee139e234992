package models

import (
	"fmt"

	"github.com/jinzhu/gorm"

	"brigade/internal/assistant"
)

// Restaurant holds the business profile used to contextualize assistant
// prompts plus the identity of the establishment itself.
type Restaurant struct {
	gorm.Model
	Name              string      `json:"name"`
	Theme             string      `json:"theme"`
	Categories        StringSlice `json:"categories" gorm:"type:text"`
	KitchenCapability string      `json:"kitchen_capability"`
	StaffSize         int         `json:"staff_size"`

	EstablishmentType string  `json:"establishment_type"`
	ServiceStyle      string  `json:"service_style"`
	Location          string  `json:"location"`
	TargetDemographic string  `json:"target_demographic"`
	PricePosition     string  `json:"price_position"`
	TargetMargin      float64 `json:"target_margin"`
	FoodCostTarget    float64 `json:"food_cost_target"`

	DietaryNeeds StringSlice `json:"dietary_needs" gorm:"type:text"`
	Equipment    StringSlice `json:"equipment" gorm:"type:text"`
	Challenges   StringSlice `json:"challenges" gorm:"type:text"`
	Priorities   StringSlice `json:"priorities" gorm:"type:text"`
}

// TableName sets the table name for Restaurant
func (Restaurant) TableName() string {
	return "restaurants"
}

// Profile maps the stored record onto the assistant's profile value.
func (r *Restaurant) Profile() assistant.RestaurantProfile {
	return assistant.RestaurantProfile{
		Name:              r.Name,
		Theme:             r.Theme,
		Categories:        r.Categories,
		KitchenCapability: r.KitchenCapability,
		StaffSize:         r.StaffSize,
		EstablishmentType: r.EstablishmentType,
		ServiceStyle:      r.ServiceStyle,
		Location:          r.Location,
		TargetDemographic: r.TargetDemographic,
		PricePosition:     r.PricePosition,
		TargetMargin:      r.TargetMargin,
		FoodCostTarget:    r.FoodCostTarget,
		DietaryNeeds:      r.DietaryNeeds,
		Equipment:         r.Equipment,
		Challenges:        r.Challenges,
		Priorities:        r.Priorities,
	}
}

// ValidateRestaurant validates a restaurant record before persistence
func ValidateRestaurant(r *Restaurant) error {
	if r.Name == "" {
		return fmt.Errorf("restaurant name is required")
	}
	if r.Theme == "" {
		return fmt.Errorf("restaurant theme is required")
	}
	if r.StaffSize < 0 {
		return fmt.Errorf("staff size cannot be negative")
	}
	return nil
}

package models

import (
	"fmt"

	"github.com/jinzhu/gorm"
)

// StaffMember represents an employee of the restaurant
type StaffMember struct {
	gorm.Model
	RestaurantID uint        `json:"restaurant_id"`
	Name         string      `json:"name"`
	Email        string      `json:"email" gorm:"unique_index"`
	Password     string      `json:"-"`
	Role         string      `json:"role"`
	Station      string      `json:"station"`
	HourlyRate   float64     `json:"hourly_rate"`
	Skills       StringSlice `json:"skills" gorm:"type:text"`
	Active       bool        `json:"active"`
}

// TableName sets the table name for StaffMember
func (StaffMember) TableName() string {
	return "staff_members"
}

// StaffRole represents the role of a staff member
type StaffRole string

const (
	RoleManager   StaffRole = "manager"
	RoleHeadChef  StaffRole = "head_chef"
	RoleSousChef  StaffRole = "sous_chef"
	RoleLineCook  StaffRole = "line_cook"
	RolePrepCook  StaffRole = "prep_cook"
	RoleServer    StaffRole = "server"
	RoleBartender StaffRole = "bartender"
)

// ValidateStaffMember validates a staff member record
func ValidateStaffMember(s *StaffMember) error {
	if s.Name == "" {
		return fmt.Errorf("staff member name is required")
	}
	if s.Email == "" {
		return fmt.Errorf("staff member email is required")
	}
	if s.HourlyRate < 0 {
		return fmt.Errorf("hourly rate cannot be negative")
	}
	return nil
}

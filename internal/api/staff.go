package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brigade/internal/models"
)

// CreateStaffMember handles POST /api/v1/staff
func (s *Server) CreateStaffMember(c *gin.Context) {
	var staff models.StaffMember
	if err := c.ShouldBindJSON(&staff); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := models.ValidateStaffMember(&staff); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	staff.Active = true

	if err := s.db.Create(&staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create staff member"})
		return
	}
	c.JSON(http.StatusCreated, staff)
}

// ListStaff handles GET /api/v1/staff
func (s *Server) ListStaff(c *gin.Context) {
	query := s.db
	if rid := c.Query("restaurant_id"); rid != "" {
		query = query.Where("restaurant_id = ?", rid)
	}

	var staff []models.StaffMember
	if err := query.Find(&staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list staff"})
		return
	}
	c.JSON(http.StatusOK, staff)
}

// GetStaffMember handles GET /api/v1/staff/:id
func (s *Server) GetStaffMember(c *gin.Context) {
	var staff models.StaffMember
	if err := s.db.First(&staff, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "staff member not found"})
		return
	}
	c.JSON(http.StatusOK, staff)
}

// UpdateStaffMember handles PUT /api/v1/staff/:id
func (s *Server) UpdateStaffMember(c *gin.Context) {
	var staff models.StaffMember
	if err := s.db.First(&staff, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "staff member not found"})
		return
	}

	var update models.StaffMember
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	update.ID = staff.ID
	update.CreatedAt = staff.CreatedAt
	if update.Password == "" {
		update.Password = staff.Password
	}
	if err := models.ValidateStaffMember(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.db.Save(&update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update staff member"})
		return
	}
	c.JSON(http.StatusOK, update)
}

// DeleteStaffMember handles DELETE /api/v1/staff/:id
func (s *Server) DeleteStaffMember(c *gin.Context) {
	if err := s.db.Delete(&models.StaffMember{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete staff member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "staff member deleted"})
}

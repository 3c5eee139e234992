package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brigade/internal/models"
)

// CreateMenuItem handles POST /api/v1/menu-items
func (s *Server) CreateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := models.ValidateMenuItem(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.db.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create menu item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// ListMenuItems handles GET /api/v1/menu-items, optionally filtered by
// restaurant_id and category.
func (s *Server) ListMenuItems(c *gin.Context) {
	query := s.db
	if rid := c.Query("restaurant_id"); rid != "" {
		query = query.Where("restaurant_id = ?", rid)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var items []models.MenuItem
	if err := query.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list menu items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetMenuItem handles GET /api/v1/menu-items/:id
func (s *Server) GetMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := s.db.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateMenuItem handles PUT /api/v1/menu-items/:id
func (s *Server) UpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := s.db.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}

	var update models.MenuItem
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	update.ID = item.ID
	update.CreatedAt = item.CreatedAt
	if err := models.ValidateMenuItem(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.db.Save(&update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, update)
}

// DeleteMenuItem handles DELETE /api/v1/menu-items/:id
func (s *Server) DeleteMenuItem(c *gin.Context) {
	if err := s.db.Delete(&models.MenuItem{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "menu item deleted"})
}

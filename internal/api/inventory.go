package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brigade/internal/models"
)

// CreateInventoryItem handles POST /api/v1/inventory
func (s *Server) CreateInventoryItem(c *gin.Context) {
	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if item.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "inventory item name is required"})
		return
	}
	if item.Status == "" {
		item.Status = string(models.StatusInStock)
	}

	if err := s.db.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create inventory item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// ListInventory handles GET /api/v1/inventory. Passing ?reorder=true
// narrows the result to items at or below their reorder threshold.
func (s *Server) ListInventory(c *gin.Context) {
	query := s.db
	if rid := c.Query("restaurant_id"); rid != "" {
		query = query.Where("restaurant_id = ?", rid)
	}

	var items []models.InventoryItem
	if err := query.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list inventory"})
		return
	}

	if c.Query("reorder") == "true" {
		needed := items[:0]
		for _, item := range items {
			if item.NeedsReorder() {
				needed = append(needed, item)
			}
		}
		items = needed
	}

	c.JSON(http.StatusOK, items)
}

// UpdateInventoryItem handles PUT /api/v1/inventory/:id
func (s *Server) UpdateInventoryItem(c *gin.Context) {
	var item models.InventoryItem
	if err := s.db.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "inventory item not found"})
		return
	}

	var update models.InventoryItem
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	update.ID = item.ID
	update.CreatedAt = item.CreatedAt

	if err := s.db.Save(&update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update inventory item"})
		return
	}
	c.JSON(http.StatusOK, update)
}

// DeleteInventoryItem handles DELETE /api/v1/inventory/:id
func (s *Server) DeleteInventoryItem(c *gin.Context) {
	if err := s.db.Delete(&models.InventoryItem{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete inventory item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "inventory item deleted"})
}

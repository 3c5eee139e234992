package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brigade/internal/models"
)

// CreateRestaurant handles POST /api/v1/restaurants
func (s *Server) CreateRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := c.ShouldBindJSON(&restaurant); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := models.ValidateRestaurant(&restaurant); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.db.Create(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create restaurant"})
		return
	}
	c.JSON(http.StatusCreated, restaurant)
}

// ListRestaurants handles GET /api/v1/restaurants
func (s *Server) ListRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	if err := s.db.Find(&restaurants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list restaurants"})
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// GetRestaurant handles GET /api/v1/restaurants/:id
func (s *Server) GetRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// UpdateRestaurant handles PUT /api/v1/restaurants/:id
func (s *Server) UpdateRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
		return
	}

	var update models.Restaurant
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	update.ID = restaurant.ID
	update.CreatedAt = restaurant.CreatedAt
	if err := models.ValidateRestaurant(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.db.Save(&update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update restaurant"})
		return
	}
	c.JSON(http.StatusOK, update)
}

// DeleteRestaurant handles DELETE /api/v1/restaurants/:id
func (s *Server) DeleteRestaurant(c *gin.Context) {
	if err := s.db.Delete(&models.Restaurant{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete restaurant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "restaurant deleted"})
}

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"brigade/internal/models"
)

// RecordSale handles POST /api/v1/sales
func (s *Server) RecordSale(c *gin.Context) {
	var sale models.Sale
	if err := c.ShouldBindJSON(&sale); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if sale.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be greater than 0"})
		return
	}

	// Fill price from the menu item when not provided
	if sale.UnitPrice == 0 && sale.MenuItemID != 0 {
		var item models.MenuItem
		if err := s.db.First(&item, sale.MenuItemID).Error; err == nil {
			sale.UnitPrice = item.Price
		}
	}
	sale.Total = sale.UnitPrice * float64(sale.Quantity)
	if sale.SoldAt.IsZero() {
		sale.SoldAt = time.Now()
	}

	if err := s.db.Create(&sale).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record sale"})
		return
	}
	c.JSON(http.StatusCreated, sale)
}

// ListSales handles GET /api/v1/sales
func (s *Server) ListSales(c *gin.Context) {
	query := s.db
	if rid := c.Query("restaurant_id"); rid != "" {
		query = query.Where("restaurant_id = ?", rid)
	}

	var sales []models.Sale
	if err := query.Order("sold_at desc").Find(&sales).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sales"})
		return
	}
	c.JSON(http.StatusOK, sales)
}

// SalesSummary handles GET /api/v1/sales/summary, aggregating the last N
// days (default 7).
func (s *Server) SalesSummary(c *gin.Context) {
	days := 7
	if d := c.Query("days"); d != "" {
		if parsed, err := strconv.Atoi(d); err == nil && parsed > 0 {
			days = parsed
		}
	}
	from := time.Now().AddDate(0, 0, -days)

	query := s.db.Model(&models.Sale{}).Where("sold_at >= ?", from)
	if rid := c.Query("restaurant_id"); rid != "" {
		query = query.Where("restaurant_id = ?", rid)
	}

	var sales []models.Sale
	if err := query.Find(&sales).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to summarize sales"})
		return
	}

	summary := models.SalesSummary{From: from, To: time.Now()}
	for _, sale := range sales {
		summary.OrderCount++
		summary.Revenue += sale.Total
	}
	c.JSON(http.StatusOK, summary)
}

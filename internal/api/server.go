package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"go.uber.org/zap"

	"brigade/internal/assistant"
	"brigade/internal/metrics"
	"brigade/internal/monitoring"
)

// Server is the main API handler for the restaurant backend.
type Server struct {
	Router  *gin.Engine
	db      *gorm.DB
	chef    *assistant.Service
	monitor *monitoring.Monitor
	log     *zap.Logger

	jwtSecret []byte
	tokenTTL  int
}

// NewServer wires the REST API over the database and the chef assistant
// service.
func NewServer(db *gorm.DB, chef *assistant.Service, monitor *monitoring.Monitor, jwtSecret string, tokenTTLHours int, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		Router:    gin.New(),
		db:        db,
		chef:      chef,
		monitor:   monitor,
		log:       log,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTLHours,
	}

	s.Router.Use(gin.Recovery(), metrics.RequestCounter())
	s.setupRoutes()
	return s
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes() {
	s.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "brigade API is running"})
	})

	s.Router.POST("/auth/login", s.Login)

	v1 := s.Router.Group("/api/v1")
	v1.Use(s.AuthMiddleware())
	{
		v1.GET("/status", s.GetStatus)

		// Restaurant management
		v1.POST("/restaurants", s.CreateRestaurant)
		v1.GET("/restaurants", s.ListRestaurants)
		v1.GET("/restaurants/:id", s.GetRestaurant)
		v1.PUT("/restaurants/:id", s.UpdateRestaurant)
		v1.DELETE("/restaurants/:id", s.DeleteRestaurant)

		// Menu management
		v1.POST("/menu-items", s.CreateMenuItem)
		v1.GET("/menu-items", s.ListMenuItems)
		v1.GET("/menu-items/:id", s.GetMenuItem)
		v1.PUT("/menu-items/:id", s.UpdateMenuItem)
		v1.DELETE("/menu-items/:id", s.DeleteMenuItem)

		// Inventory management
		v1.POST("/inventory", s.CreateInventoryItem)
		v1.GET("/inventory", s.ListInventory)
		v1.PUT("/inventory/:id", s.UpdateInventoryItem)
		v1.DELETE("/inventory/:id", s.DeleteInventoryItem)

		// Staff management
		v1.POST("/staff", s.CreateStaffMember)
		v1.GET("/staff", s.ListStaff)
		v1.GET("/staff/:id", s.GetStaffMember)
		v1.PUT("/staff/:id", s.UpdateStaffMember)
		v1.DELETE("/staff/:id", s.DeleteStaffMember)

		// Sales
		v1.POST("/sales", s.RecordSale)
		v1.GET("/sales", s.ListSales)
		v1.GET("/sales/summary", s.SalesSummary)

		// Stored recommendations and chat history
		v1.GET("/recommendations", s.ListRecommendations)
		v1.GET("/chat/:session", s.GetChatHistory)

		// Chef assistant
		v1.POST("/assistant/advice", s.GetAdvice)
		v1.POST("/assistant/menu-suggestions", s.MenuSuggestions)
		v1.POST("/assistant/flavor-pairings", s.FlavorPairings)
		v1.POST("/assistant/efficiency", s.OperationalEfficiency)
		v1.POST("/assistant/cocktails", s.SignatureCocktails)
	}
}

// GetStatus reports runtime counters for the dashboard.
func (s *Server) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.monitor.Snapshot())
}

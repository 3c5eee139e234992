package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"brigade/internal/assistant"
	"brigade/internal/metrics"
	"brigade/internal/models"
)

type adviceRequest struct {
	RestaurantID uint   `json:"restaurant_id" binding:"required"`
	SessionID    string `json:"session_id"`
	Message      string `json:"message" binding:"required"`
	Length       string `json:"length"`
}

type adviceResponse struct {
	SessionID string                  `json:"session_id"`
	Response  *assistant.ChefResponse `json:"response"`
}

// GetAdvice handles POST /api/v1/assistant/advice: loads the restaurant
// profile and recent session history, runs one advice request, then
// persists both chat turns and any extracted recommendations.
func (s *Server) GetAdvice(c *gin.Context) {
	var req adviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant, ok := s.loadRestaurant(c, req.RestaurantID)
	if !ok {
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	var history []assistant.ConversationTurn
	var stored []models.ChatMessage
	if err := s.db.Where("session_id = ?", sessionID).Order("id asc").Find(&stored).Error; err == nil {
		for i := range stored {
			history = append(history, stored[i].Turn())
		}
	}

	start := time.Now()
	resp, err := s.chef.GetAdvice(c.Request.Context(), req.Message, restaurant.Profile(), history, assistant.LengthPreference(req.Length))
	if err != nil {
		s.failAdvice(c, err)
		return
	}

	s.persistExchange(restaurant.ID, sessionID, req.Message, resp)
	metrics.ObserveAdvice(string(resp.Category), time.Since(start), len(resp.Recommendations))
	s.monitor.RecordAdvice(string(resp.Category))

	c.JSON(http.StatusOK, adviceResponse{SessionID: sessionID, Response: resp})
}

type profileRequest struct {
	RestaurantID uint   `json:"restaurant_id" binding:"required"`
	Ingredient   string `json:"ingredient"`
}

// MenuSuggestions handles POST /api/v1/assistant/menu-suggestions
func (s *Server) MenuSuggestions(c *gin.Context) {
	s.cannedAdvice(c, func(profile assistant.RestaurantProfile, _ string) (*assistant.ChefResponse, error) {
		return s.chef.GenerateMenuSuggestions(c.Request.Context(), profile)
	})
}

// FlavorPairings handles POST /api/v1/assistant/flavor-pairings
func (s *Server) FlavorPairings(c *gin.Context) {
	s.cannedAdvice(c, func(profile assistant.RestaurantProfile, ingredient string) (*assistant.ChefResponse, error) {
		if ingredient == "" {
			return nil, errBadIngredient
		}
		return s.chef.GenerateFlavorPairings(c.Request.Context(), ingredient, profile)
	})
}

// OperationalEfficiency handles POST /api/v1/assistant/efficiency
func (s *Server) OperationalEfficiency(c *gin.Context) {
	s.cannedAdvice(c, func(profile assistant.RestaurantProfile, _ string) (*assistant.ChefResponse, error) {
		return s.chef.AnalyzeOperationalEfficiency(c.Request.Context(), profile)
	})
}

// SignatureCocktails handles POST /api/v1/assistant/cocktails
func (s *Server) SignatureCocktails(c *gin.Context) {
	s.cannedAdvice(c, func(profile assistant.RestaurantProfile, _ string) (*assistant.ChefResponse, error) {
		return s.chef.CreateSignatureCocktails(c.Request.Context(), profile)
	})
}

var errBadIngredient = errors.New("ingredient is required")

// cannedAdvice runs one of the fixed-prompt convenience operations and
// persists its recommendations under a fresh session.
func (s *Server) cannedAdvice(c *gin.Context, run func(assistant.RestaurantProfile, string) (*assistant.ChefResponse, error)) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant, ok := s.loadRestaurant(c, req.RestaurantID)
	if !ok {
		return
	}

	start := time.Now()
	resp, err := run(restaurant.Profile(), req.Ingredient)
	if errors.Is(err, errBadIngredient) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		s.failAdvice(c, err)
		return
	}

	sessionID := uuid.NewString()
	s.persistRecommendations(restaurant.ID, sessionID, resp)
	metrics.ObserveAdvice(string(resp.Category), time.Since(start), len(resp.Recommendations))
	s.monitor.RecordAdvice(string(resp.Category))

	c.JSON(http.StatusOK, adviceResponse{SessionID: sessionID, Response: resp})
}

// GetChatHistory handles GET /api/v1/chat/:session
func (s *Server) GetChatHistory(c *gin.Context) {
	var messages []models.ChatMessage
	if err := s.db.Where("session_id = ?", c.Param("session")).Order("id asc").Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load chat history"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

// ListRecommendations handles GET /api/v1/recommendations
func (s *Server) ListRecommendations(c *gin.Context) {
	query := s.db
	if rid := c.Query("restaurant_id"); rid != "" {
		query = query.Where("restaurant_id = ?", rid)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var recs []models.Recommendation
	if err := query.Order("id desc").Find(&recs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list recommendations"})
		return
	}
	c.JSON(http.StatusOK, recs)
}

func (s *Server) loadRestaurant(c *gin.Context, id uint) (*models.Restaurant, bool) {
	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
		return nil, false
	}
	return &restaurant, true
}

func (s *Server) failAdvice(c *gin.Context, err error) {
	metrics.ObserveGenerationFailure()
	s.monitor.Increment("generation_failures")

	var genErr *assistant.GenerationError
	if errors.As(err, &genErr) {
		c.JSON(http.StatusBadGateway, gin.H{"error": genErr.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func (s *Server) persistExchange(restaurantID uint, sessionID, userMessage string, resp *assistant.ChefResponse) {
	s.db.Create(&models.ChatMessage{
		RestaurantID: restaurantID,
		SessionID:    sessionID,
		Role:         assistant.RoleUser,
		Content:      userMessage,
	})
	s.db.Create(&models.ChatMessage{
		RestaurantID: restaurantID,
		SessionID:    sessionID,
		Role:         assistant.RoleAssistant,
		Content:      resp.Content,
		Category:     string(resp.Category),
	})
	s.persistRecommendations(restaurantID, sessionID, resp)
}

func (s *Server) persistRecommendations(restaurantID uint, sessionID string, resp *assistant.ChefResponse) {
	for _, rec := range resp.Recommendations {
		stored := models.NewRecommendation(restaurantID, sessionID, resp.Category, rec)
		if err := s.db.Create(&stored).Error; err != nil {
			s.log.Warn("failed to persist recommendation",
				zap.String("title", rec.Title),
				zap.Error(err))
		}
	}
}

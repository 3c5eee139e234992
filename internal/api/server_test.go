package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brigade/internal/assistant"
	"brigade/internal/assistant/provider"
	"brigade/internal/database"
	"brigade/internal/models"
	"brigade/internal/monitoring"
)

type stubProvider struct {
	reply string
	err   error
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Complete(context.Context, []provider.Message) (string, error) {
	return s.reply, s.err
}

func (s *stubProvider) SetTemperature(float64) {}
func (s *stubProvider) SetMaxTokens(int)       {}

func newTestServer(t *testing.T, reply string) (*Server, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))

	db.Create(&models.StaffMember{
		Name:     "Alex Moreau",
		Email:    "alex@copperpot.example",
		Password: "secret",
		Role:     "manager",
		Active:   true,
	})
	db.Create(&models.Restaurant{
		Name:              "The Copper Pot",
		Theme:             "modern bistro",
		Categories:        models.StringSlice{"french"},
		KitchenCapability: "standard",
		StaffSize:         12,
	})

	chef := assistant.NewService(&stubProvider{reply: reply}, nil)
	return NewServer(db, chef, monitoring.NewMonitor(), "test-secret", 1, nil), db
}

func login(t *testing.T, s *Server) string {
	t.Helper()

	body := `{"email":"alex@copperpot.example","password":"secret"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(body))
	s.Router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])
	return resp["token"]
}

func doJSON(s *Server, method, path, token, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	s.Router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	s, _ := newTestServer(t, "")

	w := doJSON(s, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRequired(t *testing.T) {
	s, _ := newTestServer(t, "")

	w := doJSON(s, http.MethodGet, "/api/v1/restaurants", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s, _ := newTestServer(t, "")

	body := `{"email":"alex@copperpot.example","password":"wrong"}`
	w := doJSON(s, http.MethodPost, "/auth/login", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRestaurantCRUD(t *testing.T) {
	s, _ := newTestServer(t, "")
	token := login(t, s)

	created := doJSON(s, http.MethodPost, "/api/v1/restaurants", token,
		`{"name":"Harbor Grill","theme":"seafood","staff_size":8}`)
	require.Equal(t, http.StatusCreated, created.Code)

	var restaurant models.Restaurant
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &restaurant))

	listed := doJSON(s, http.MethodGet, "/api/v1/restaurants", token, "")
	require.Equal(t, http.StatusOK, listed.Code)
	var restaurants []models.Restaurant
	require.NoError(t, json.Unmarshal(listed.Body.Bytes(), &restaurants))
	assert.Len(t, restaurants, 2)

	missing := doJSON(s, http.MethodGet, "/api/v1/restaurants/999", token, "")
	assert.Equal(t, http.StatusNotFound, missing.Code)

	invalid := doJSON(s, http.MethodPost, "/api/v1/restaurants", token, `{"theme":"nameless"}`)
	assert.Equal(t, http.StatusBadRequest, invalid.Code)
}

func TestMenuItemValidation(t *testing.T) {
	s, _ := newTestServer(t, "")
	token := login(t, s)

	w := doJSON(s, http.MethodPost, "/api/v1/menu-items", token,
		`{"restaurant_id":1,"name":"Free Lunch","price":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(s, http.MethodPost, "/api/v1/menu-items", token,
		`{"restaurant_id":1,"name":"Steak Frites","price":28.0,"category":"entree"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAdviceEndpoint(t *testing.T) {
	reply := "Recipe: **Grilled Salmon** Ingredients:\n- salmon\n- lemon\nInstructions:\n1. Grill\n2. Serve"
	s, db := newTestServer(t, reply)
	token := login(t, s)

	w := doJSON(s, http.MethodPost, "/api/v1/assistant/advice", token,
		`{"restaurant_id":1,"message":"What fish dish should we add?"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp adviceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Response)
	assert.NotEmpty(t, resp.SessionID)
	require.Len(t, resp.Response.Recommendations, 1)
	assert.Equal(t, "Grilled Salmon", resp.Response.Recommendations[0].Title)

	// Both chat turns were persisted under the session.
	var messages []models.ChatMessage
	require.NoError(t, db.Where("session_id = ?", resp.SessionID).Find(&messages).Error)
	assert.Len(t, messages, 2)

	// So was the extracted recommendation.
	var recs []models.Recommendation
	require.NoError(t, db.Where("session_id = ?", resp.SessionID).Find(&recs).Error)
	require.Len(t, recs, 1)
	assert.True(t, recs[0].HasRecipe)
	assert.Equal(t, models.StringSlice{"salmon", "lemon"}, recs[0].Ingredients)
}

func TestAdviceReusesSessionHistory(t *testing.T) {
	s, db := newTestServer(t, "A follow-up answer that is long enough to extract from.")
	token := login(t, s)

	first := doJSON(s, http.MethodPost, "/api/v1/assistant/advice", token,
		`{"restaurant_id":1,"message":"First question about the menu"}`)
	require.Equal(t, http.StatusOK, first.Code)

	var resp adviceResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &resp))

	second := doJSON(s, http.MethodPost, "/api/v1/assistant/advice", token,
		`{"restaurant_id":1,"session_id":"`+resp.SessionID+`","message":"And a follow-up"}`)
	require.Equal(t, http.StatusOK, second.Code)

	var messages []models.ChatMessage
	require.NoError(t, db.Where("session_id = ?", resp.SessionID).Find(&messages).Error)
	assert.Len(t, messages, 4)
}

func TestAdviceGenerationFailure(t *testing.T) {
	s, _ := newTestServer(t, "")
	token := login(t, s)

	// Empty reply from the provider surfaces as a gateway failure.
	w := doJSON(s, http.MethodPost, "/api/v1/assistant/advice", token,
		`{"restaurant_id":1,"message":"hello"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestAdviceUnknownRestaurant(t *testing.T) {
	s, _ := newTestServer(t, "some reply")
	token := login(t, s)

	w := doJSON(s, http.MethodPost, "/api/v1/assistant/advice", token,
		`{"restaurant_id":42,"message":"hello"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFlavorPairingsRequiresIngredient(t *testing.T) {
	s, _ := newTestServer(t, "some pairing advice that is long enough to keep.")
	token := login(t, s)

	w := doJSON(s, http.MethodPost, "/api/v1/assistant/flavor-pairings", token,
		`{"restaurant_id":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(s, http.MethodPost, "/api/v1/assistant/flavor-pairings", token,
		`{"restaurant_id":1,"ingredient":"fennel"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"brigade/internal/assistant/provider"

	"go.uber.org/zap"
)

// historyLimit bounds how many prior turns are forwarded to the model.
// Older turns are dropped, not summarized.
const historyLimit = 10

// defaultTimeout applies when the caller's context carries no deadline.
const defaultTimeout = 60 * time.Second

// lengthInstructions maps each response-length preference to the fixed
// sentence appended to the user message.
var lengthInstructions = map[LengthPreference]string{
	LengthBrief:    "Keep your answer brief and to the point.",
	LengthBalanced: "Give a balanced answer with moderate detail.",
	LengthDetailed: "Give a detailed, thorough answer with specifics.",
}

// Service runs advice requests end to end: builds the profile prompt,
// calls the generation provider once, then classifies the reply and
// extracts structured recommendations from it. It holds no per-request
// state; concurrent requests are independent.
type Service struct {
	provider provider.Provider
	log      *zap.Logger
}

// NewService creates an advice service over an explicitly constructed
// provider.
func NewService(p provider.Provider, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{provider: p, log: log}
}

// GetAdvice answers one user question in the context of a restaurant
// profile and recent conversation history. A failed or empty completion
// surfaces as *GenerationError; no partial response is ever returned.
func (s *Service) GetAdvice(ctx context.Context, userMessage string, profile RestaurantProfile, history []ConversationTurn, pref LengthPreference) (*ChefResponse, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultTimeout)
		defer cancel()
	}

	suffix, ok := lengthInstructions[pref]
	if !ok {
		suffix = lengthInstructions[LengthBalanced]
	}

	messages := make([]provider.Message, 0, historyLimit+2)
	messages = append(messages, provider.Message{Role: "system", Content: BuildSystemPrompt(profile)})
	for _, turn := range trimHistory(history) {
		messages = append(messages, provider.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, provider.Message{
		Role:    "user",
		Content: userMessage + "\n\n" + suffix,
	})

	start := time.Now()
	content, err := s.provider.Complete(ctx, messages)
	if err != nil {
		s.log.Warn("completion failed",
			zap.String("provider", s.provider.Name()),
			zap.Error(err))
		return nil, &GenerationError{Provider: s.provider.Name(), Err: err}
	}
	if strings.TrimSpace(content) == "" {
		return nil, &GenerationError{Provider: s.provider.Name()}
	}

	resp := &ChefResponse{
		Content:         content,
		Category:        Classify(userMessage, content),
		Recommendations: ExtractRecommendations(content),
	}

	s.log.Info("advice generated",
		zap.String("category", string(resp.Category)),
		zap.Int("recommendations", len(resp.Recommendations)),
		zap.Duration("took", time.Since(start)))

	return resp, nil
}

// GenerateMenuSuggestions asks for new dishes suited to the profile.
func (s *Service) GenerateMenuSuggestions(ctx context.Context, profile RestaurantProfile) (*ChefResponse, error) {
	return s.GetAdvice(ctx,
		"Suggest new menu items that fit our restaurant. Present each as a Recipe block with ingredients and instructions.",
		profile, nil, LengthDetailed)
}

// GenerateFlavorPairings asks for pairings built around one ingredient.
func (s *Service) GenerateFlavorPairings(ctx context.Context, ingredient string, profile RestaurantProfile) (*ChefResponse, error) {
	return s.GetAdvice(ctx,
		fmt.Sprintf("What flavors pair well with %s? Suggest how we could feature these pairings on our menu.", ingredient),
		profile, nil, LengthBalanced)
}

// AnalyzeOperationalEfficiency asks for cost and workflow improvements.
func (s *Service) AnalyzeOperationalEfficiency(ctx context.Context, profile RestaurantProfile) (*ChefResponse, error) {
	return s.GetAdvice(ctx,
		"Analyze our operational efficiency. Where can we reduce food cost, labor cost, and waste?",
		profile, nil, LengthDetailed)
}

// CreateSignatureCocktails asks for signature drinks matching the theme.
func (s *Service) CreateSignatureCocktails(ctx context.Context, profile RestaurantProfile) (*ChefResponse, error) {
	return s.GetAdvice(ctx,
		"Create signature cocktails that match our restaurant's theme. Present each as a Recipe block.",
		profile, nil, LengthBalanced)
}

func trimHistory(history []ConversationTurn) []ConversationTurn {
	if len(history) <= historyLimit {
		return history
	}
	return history[len(history)-historyLimit:]
}

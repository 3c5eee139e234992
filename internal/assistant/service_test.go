package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brigade/internal/assistant/provider"
)

// fakeProvider records the messages of the last completion and returns a
// scripted reply.
type fakeProvider struct {
	reply    string
	err      error
	messages []provider.Message
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(_ context.Context, messages []provider.Message) (string, error) {
	f.messages = messages
	return f.reply, f.err
}

func (f *fakeProvider) SetTemperature(float64) {}
func (f *fakeProvider) SetMaxTokens(int)       {}

func TestGetAdvice(t *testing.T) {
	fake := &fakeProvider{
		reply: "Recipe: **Grilled Salmon** Ingredients:\n- salmon\nInstructions:\n1. Grill",
	}
	svc := NewService(fake, nil)

	resp, err := svc.GetAdvice(context.Background(), "What fish dish should we add to the menu?", minimalProfile(), nil, LengthBalanced)
	require.NoError(t, err)

	assert.Equal(t, fake.reply, resp.Content)
	assert.Equal(t, CategoryFlavorPairing, resp.Category)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, "Grilled Salmon", resp.Recommendations[0].Title)

	// System prompt first, user message last.
	require.NotEmpty(t, fake.messages)
	assert.Equal(t, "system", fake.messages[0].Role)
	assert.Contains(t, fake.messages[0].Content, "The Copper Pot")
	last := fake.messages[len(fake.messages)-1]
	assert.Equal(t, "user", last.Role)
	assert.Contains(t, last.Content, "What fish dish")
}

func TestGetAdviceLengthInstruction(t *testing.T) {
	tests := []struct {
		pref LengthPreference
		want string
	}{
		{LengthBrief, "brief"},
		{LengthBalanced, "balanced"},
		{LengthDetailed, "detailed"},
		{LengthPreference("bogus"), "balanced"}, // unknown falls back
	}

	for _, tt := range tests {
		fake := &fakeProvider{reply: strings.Repeat("menu ideas ", 10)}
		svc := NewService(fake, nil)

		_, err := svc.GetAdvice(context.Background(), "hello", minimalProfile(), nil, tt.pref)
		require.NoError(t, err)

		last := fake.messages[len(fake.messages)-1]
		assert.Contains(t, strings.ToLower(last.Content), tt.want)
	}
}

func TestGetAdviceTrimsHistory(t *testing.T) {
	fake := &fakeProvider{reply: strings.Repeat("long enough reply ", 5)}
	svc := NewService(fake, nil)

	var history []ConversationTurn
	for i := 0; i < 15; i++ {
		history = append(history, ConversationTurn{
			Role:    RoleUser,
			Content: fmt.Sprintf("turn %d", i),
		})
	}

	_, err := svc.GetAdvice(context.Background(), "latest question", minimalProfile(), history, LengthBalanced)
	require.NoError(t, err)

	// system + 10 history turns + user message
	require.Len(t, fake.messages, 12)
	assert.Equal(t, "turn 5", fake.messages[1].Content)
	assert.Equal(t, "turn 14", fake.messages[10].Content)
}

func TestGetAdviceProviderError(t *testing.T) {
	fake := &fakeProvider{err: errors.New("connection refused")}
	svc := NewService(fake, nil)

	_, err := svc.GetAdvice(context.Background(), "hello", minimalProfile(), nil, LengthBalanced)
	require.Error(t, err)

	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, "fake", genErr.Provider)
	assert.Contains(t, genErr.Error(), "connection refused")
}

func TestGetAdviceEmptyContent(t *testing.T) {
	fake := &fakeProvider{reply: "   \n"}
	svc := NewService(fake, nil)

	_, err := svc.GetAdvice(context.Background(), "hello", minimalProfile(), nil, LengthBalanced)

	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Contains(t, genErr.Error(), "empty response")
}

func TestConvenienceWrappers(t *testing.T) {
	tests := []struct {
		name string
		call func(*Service) (*ChefResponse, error)
		want string // substring expected in the user message
	}{
		{
			name: "menu suggestions",
			call: func(s *Service) (*ChefResponse, error) {
				return s.GenerateMenuSuggestions(context.Background(), minimalProfile())
			},
			want: "menu items",
		},
		{
			name: "flavor pairings",
			call: func(s *Service) (*ChefResponse, error) {
				return s.GenerateFlavorPairings(context.Background(), "fennel", minimalProfile())
			},
			want: "fennel",
		},
		{
			name: "operational efficiency",
			call: func(s *Service) (*ChefResponse, error) {
				return s.AnalyzeOperationalEfficiency(context.Background(), minimalProfile())
			},
			want: "efficiency",
		},
		{
			name: "signature cocktails",
			call: func(s *Service) (*ChefResponse, error) {
				return s.CreateSignatureCocktails(context.Background(), minimalProfile())
			},
			want: "cocktails",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeProvider{reply: strings.Repeat("advice content ", 5)}
			svc := NewService(fake, nil)

			resp, err := tt.call(svc)
			require.NoError(t, err)
			assert.NotNil(t, resp)

			last := fake.messages[len(fake.messages)-1]
			assert.Contains(t, strings.ToLower(last.Content), tt.want)
		})
	}
}

package images

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketlog/internal/prompts"
	"ticketlog/internal/shared/config"
	"ticketlog/pkg/cache"
)

type stubPromptService struct {
	calls int
}

func (s *stubPromptService) SetCacheService(cache.Service) {}

func (s *stubPromptService) GeneratePrompt(ctx context.Context, req prompts.GeneratePromptRequest) (*prompts.GeneratePromptResponse, error) {
	s.calls++
	return &prompts.GeneratePromptResponse{Prompt: "a stage scene"}, nil
}

// Without an API key the router wires a nil client; the request has to fail
// cleanly instead of dereferencing it.
func TestGenerateImageWithoutClient(t *testing.T) {
	promptService := &stubPromptService{}
	svc := NewService(nil, promptService, config.OpenAIConfig{})

	result, err := svc.GenerateImage(context.Background(), "user-1", prompts.GeneratePromptRequest{
		Title: "Hedwig",
		Genre: prompts.GenreMusical,
	})

	require.Nil(t, result)
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Zero(t, promptService.calls)
}

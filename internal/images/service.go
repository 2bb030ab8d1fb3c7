package images

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ticketlog/internal/prompts"
	"ticketlog/internal/shared/config"
	"ticketlog/pkg/logger"

	openai "github.com/sashabaranov/go-openai"
)

// ErrNotConfigured is returned when no image generation API key is set.
var ErrNotConfigured = errors.New("image generation not configured")

type GenerateImageResponse struct {
	Prompt   string `json:"prompt"`
	ImageURL string `json:"image_url"`
}

type Service interface {
	GenerateImage(ctx context.Context, userID string, req prompts.GeneratePromptRequest) (*GenerateImageResponse, error)
}

type service struct {
	client        *openai.Client
	promptService prompts.Service
	cfg           config.OpenAIConfig
}

func NewService(client *openai.Client, promptService prompts.Service, cfg config.OpenAIConfig) Service {
	return &service{
		client:        client,
		promptService: promptService,
		cfg:           cfg,
	}
}

// GenerateImage builds a scene prompt from the ticket details and review,
// then renders it. The returned URL is signed and short-lived; clients
// persist it onto the ticket, where the query token is stripped.
func (s *service) GenerateImage(ctx context.Context, userID string, req prompts.GeneratePromptRequest) (*GenerateImageResponse, error) {
	if s.client == nil {
		return nil, ErrNotConfigured
	}

	promptResult, err := s.promptService.GeneratePrompt(ctx, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := s.client.CreateImage(ctx, openai.ImageRequest{
		Model:   s.cfg.ImageModel,
		Prompt:  promptResult.Prompt,
		N:       1,
		Size:    s.cfg.ImageSize,
		Quality: s.cfg.ImageQuality,
	})
	if err != nil {
		return nil, fmt.Errorf("image generation failed: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("image generation returned no data")
	}

	logger.GetDefault().LogImageGenerated(ctx, userID, len(promptResult.Prompt), time.Since(start))

	return &GenerateImageResponse{
		Prompt:   promptResult.Prompt,
		ImageURL: resp.Data[0].URL,
	}, nil
}

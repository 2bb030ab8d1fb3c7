package prompts

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ReviewAnalyzer extracts scene keywords (emotion, theme, setting,
// relationship, actions, characters, lighting) from a free-text review.
type ReviewAnalyzer interface {
	AnalyzeReview(ctx context.Context, review string) (map[string]string, error)
}

type openAIAnalyzer struct {
	client *openai.Client
}

func NewOpenAIAnalyzer(client *openai.Client) ReviewAnalyzer {
	return &openAIAnalyzer{client: client}
}

const analysisPrompt = `Analyze the following performance review and return ONLY JSON (no explanations, no code blocks).
Keys: emotion, theme, setting, relationship, actions, character1, character2, (character3, character4 if available), lighting
IMPORTANT: Return all values in ENGLISH only. Translate Korean words/phrases to English.
Review: %s`

func (a *openAIAnalyzer) AnalyzeReview(ctx context.Context, review string) (map[string]string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(analysisPrompt, review)},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("review analysis request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("review analysis returned no choices")
	}

	result := make(map[string]string)
	if err := json.Unmarshal([]byte(extractJSON(resp.Choices[0].Message.Content)), &result); err != nil {
		return nil, fmt.Errorf("review analysis returned malformed JSON: %w", err)
	}
	return result, nil
}

// extractJSON pulls the outermost {...} block out of a model reply that may
// carry code fences or surrounding prose.
func extractJSON(content string) string {
	if content == "" {
		return "{}"
	}
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		return content[start : end+1]
	}
	return content
}

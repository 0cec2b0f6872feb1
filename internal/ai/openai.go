package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	DefaultModel   = "gemini-2.0-flash"
)

type RateLimitError struct {
	Status int
}

func (r RateLimitError) Error() string {
	return fmt.Sprintf("rate limited (http %d)", r.Status)
}

// OpenAICompatGenerator talks to any chat-completions endpoint that speaks the
// OpenAI wire format. Gemini exposes one, which is the default target.
type OpenAICompatGenerator struct {
	Model  string
	client openai.Client
}

func NewOpenAICompatGenerator(apiKey, baseURL, model string, timeout time.Duration) (*OpenAICompatGenerator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("api key is not set")
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(timeout),
	)
	return &OpenAICompatGenerator{Model: model, client: client}, nil
}

func (g *OpenAICompatGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			if apiErr.StatusCode == http.StatusTooManyRequests {
				return "", RateLimitError{Status: apiErr.StatusCode}
			}
			return "", fmt.Errorf("generator http error: %d: %w", apiErr.StatusCode, err)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("generator request timed out")
		}
		return "", fmt.Errorf("generator request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty generator response")
	}
	return resp.Choices[0].Message.Content, nil
}

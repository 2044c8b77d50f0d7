package textgen

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"
)

// ModelName is the fixed model version used for every call.
const ModelName = "gemini-2.5-flash"

// contentGenerator is the subset of *genai.Models used by GeminiClient.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiClient generates text with the Gemini API.
// There is no retry and no caching: each call is one request.
type GeminiClient struct {
	models contentGenerator
	model  string
}

// NewGeminiClient creates a client authenticated with apiKey.
// PRE: apiKey is non-empty
// POST: Returns a ready-to-use client; no network call is made
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiClient{models: client.Models, model: ModelName}, nil
}

// Generate sends prompt to the model and waits for the full response.
// PRE: prompt is non-empty
// POST: Returns Success with the response text, or Failure describing what went wrong
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (res Result) {
	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			res = Failure(fmt.Errorf("gemini client panic: %v", p))
		}
		if res.OK() {
			slog.Info("textgen_generated", "model", c.model, "chars", len(res.Text), "duration_ms", time.Since(start).Milliseconds())
		} else {
			slog.Warn("textgen_failed", "model", c.model, "error", res.Err.Error(), "duration_ms", time.Since(start).Milliseconds())
		}
	}()

	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return Failure(err)
	}
	if resp == nil {
		return Failure(ErrEmptyResponse)
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return Failure(ErrEmptyResponse)
	}
	return Success(text)
}

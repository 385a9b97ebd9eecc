// Package gemini provides a text completion client backed by the Google
// Generative Language API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/kaloria/v1/internal/infrastructure/config"
	"github.com/kaloria/v1/internal/ports/outbound"
)

const defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta"

// ErrNotConfigured is returned when no API key is set.
var ErrNotConfigured = errors.New("gemini api key is not configured")

// Client implements the TextCompleter port against the Gemini API
type Client struct {
	apiKey     string
	model      string
	endpoint   string
	maxTokens  int
	temp       float64
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a Gemini client from configuration
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	endpoint := cfg.AI.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &Client{
		apiKey:    cfg.AI.GeminiKey,
		model:     cfg.AI.GeminiModel,
		endpoint:  endpoint,
		maxTokens: cfg.AI.MaxTokens,
		temp:      cfg.AI.Temperature,
		httpClient: &http.Client{
			Timeout: cfg.AI.RequestTimeout,
		},
		logger: logger.Named("gemini-client"),
	}
}

var _ outbound.TextCompleter = (*Client)(nil)

type generateRequest struct {
	SystemInstruction *content         `json:"systemInstruction,omitempty"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
	Temperature     float64 `json:"temperature"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends a prompt to the model and returns the generated text
func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	reqBody := generateRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			MaxOutputTokens: c.maxTokens,
			Temperature:     c.temp,
		},
	}
	if system != "" {
		reqBody.SystemInstruction = &content{Parts: []part{{Text: system}}}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.endpoint, c.model, url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := resp.Status
		if parsed.Error != nil {
			msg = parsed.Error.Message
		}
		c.logger.Warn("Gemini API error",
			zap.Int("status", resp.StatusCode),
			zap.String("message", msg),
		)
		return "", fmt.Errorf("gemini api error: %s", msg)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini returned no candidates")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

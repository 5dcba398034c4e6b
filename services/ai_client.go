package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"askpdf/config"
	"askpdf/metrics"
)

const (
	defaultTimeout = 30 * time.Second
	maxBodyBytes   = 10 << 20
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// AIClient talks to an OpenAI-compatible chat-completion endpoint
// (Perplexity by default). Every Complete is exactly one HTTP request.
type AIClient struct {
	apiKey      string
	url         string
	model       string
	temperature float64
	maxTokens   int
	httpClient  *http.Client
}

// NewAIClient builds a client from cfg. A non-positive timeout falls back
// to 30s so a call is always bounded.
func NewAIClient(cfg *config.Config) *AIClient {
	timeout := cfg.AI.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &AIClient{
		apiKey:      cfg.AI.APIKey,
		url:         cfg.AI.BaseURL,
		model:       cfg.AI.Model,
		temperature: cfg.AI.Temperature,
		maxTokens:   cfg.AI.MaxTokens,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// Complete sends prompt as a single user message and returns the content
// of the first choice.
func (c *AIClient) Complete(ctx context.Context, prompt string) (string, error) {
	payload := chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", &InternalError{Err: fmt.Errorf("marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(b))
	if err != nil {
		return "", &InternalError{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	metrics.UpstreamCalls.Inc()
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.UpstreamLatency.Observe(time.Since(start).Seconds())
		return "", transportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	metrics.UpstreamLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		return "", transportError(err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var r chatResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return "", &InternalError{Err: fmt.Errorf("decode response: %w", err)}
	}
	if len(r.Choices) == 0 {
		return "", &UpstreamError{
			StatusCode: http.StatusBadGateway,
			Body:       string(body),
			Message:    "Perplexity API returned no choices",
		}
	}
	return r.Choices[0].Message.Content, nil
}

func transportError(err error) error {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return &TimeoutError{Err: err}
	}
	return &NetworkError{Err: err}
}

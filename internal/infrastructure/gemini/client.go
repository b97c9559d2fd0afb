package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cosmic-watch/services/astro-api/internal/config"
	"cosmic-watch/services/astro-api/internal/utils/httpclients"

	"resty.dev/v3"
)

// ErrEmptyResponse is returned when the upstream answered 2xx but produced no
// usable candidate text.
var ErrEmptyResponse = errors.New("gemini: empty response")

// UpstreamError is a non-2xx or transport failure from the generativelanguage
// API. The client never retries; fallback policy belongs to the caller.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("gemini: %s", e.Message)
	}
	return fmt.Sprintf("gemini: upstream status %d: %s", e.StatusCode, e.Message)
}

// IsRateLimited reports whether err looks like an upstream rate-limit rejection.
func IsRateLimited(err error) bool {
	var upstreamErr *UpstreamError
	if !errors.As(err, &upstreamErr) {
		return false
	}
	return upstreamErr.StatusCode == 429 || strings.Contains(strings.ToLower(upstreamErr.Message), "quota")
}

// IsModelNotFound reports whether err looks like the requested model does not
// exist upstream. The 404 check is a heuristic; the body text is consulted too.
func IsModelNotFound(err error) bool {
	var upstreamErr *UpstreamError
	if !errors.As(err, &upstreamErr) {
		return false
	}
	if upstreamErr.StatusCode == 404 {
		return true
	}
	msg := strings.ToLower(upstreamErr.Message)
	return strings.Contains(msg, "not found") || strings.Contains(msg, "is not supported")
}

var safetyOff = []SafetySetting{
	{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_NONE"},
	{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_NONE"},
	{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_NONE"},
	{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_NONE"},
}

type Client struct {
	client *resty.Client
	apiKey string
}

func NewClient(cfg *config.Config) *Client {
	client := httpclients.NewClient("GeminiClient")
	client.SetBaseURL(cfg.GeminiBaseURL)
	return &Client{
		client: client,
		apiKey: cfg.GeminiAPIKey,
	}
}

// Generate calls modelID with the given prompt and sampling params and
// extracts the first candidate's first text part. The operation timeout is
// carried by ctx.
func (c *Client) Generate(ctx context.Context, prompt, modelID string, params GenerationParams) (*Result, error) {
	body := GenerateRequest{
		Contents: []Content{{Parts: []Part{{Text: prompt}}}},
		GenerationConfig: &GenerationConfig{
			Temperature:     params.Temperature,
			TopP:            params.TopP,
			TopK:            params.TopK,
			MaxOutputTokens: params.MaxOutputTokens,
		},
	}
	if params.DisableSafety {
		body.SafetySettings = safetyOff
	}

	var respBody GenerateResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", c.apiKey).
		SetBody(body).
		SetResult(&respBody).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", modelID))
	if err != nil {
		return nil, &UpstreamError{Message: err.Error()}
	}
	if resp.IsError() {
		return nil, &UpstreamError{StatusCode: resp.StatusCode(), Message: strings.TrimSpace(resp.String())}
	}

	if len(respBody.Candidates) == 0 || len(respBody.Candidates[0].Content.Parts) == 0 {
		return nil, ErrEmptyResponse
	}
	text := respBody.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyResponse
	}

	return &Result{
		Text:        text,
		TotalTokens: respBody.UsageMetadata.TotalTokenCount,
	}, nil
}

// ListModels fetches upstream model metadata.
func (c *Client) ListModels(ctx context.Context) ([]Model, error) {
	var respBody ModelsResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetResult(&respBody).
		Get("/v1beta/models")
	if err != nil {
		return nil, &UpstreamError{Message: err.Error()}
	}
	if resp.IsError() {
		return nil, &UpstreamError{StatusCode: resp.StatusCode(), Message: strings.TrimSpace(resp.String())}
	}
	return respBody.Models, nil
}

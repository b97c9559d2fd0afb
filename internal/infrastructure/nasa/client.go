package nasa

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cosmic-watch/services/astro-api/internal/config"
	"cosmic-watch/services/astro-api/internal/infrastructure/metrics"
	"cosmic-watch/services/astro-api/internal/utils/httpclients"

	"resty.dev/v3"
)

// ErrRateLimited is returned when the NeoWs API rejects the call with 429.
// The hourly quota for DEMO_KEY keys is small, so callers degrade to sample
// data instead of retrying.
var ErrRateLimited = errors.New("nasa: rate limit exceeded")

// FeedResponse is the NeoWs /feed payload, trimmed to the fields we consume.
type FeedResponse struct {
	ElementCount     int                  `json:"element_count"`
	NearEarthObjects map[string][]NeoItem `json:"near_earth_objects"`
}

type NeoItem struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	AbsoluteMagnitude float64 `json:"absolute_magnitude_h"`
	IsHazardous       bool    `json:"is_potentially_hazardous_asteroid"`
	EstimatedDiameter struct {
		Kilometers struct {
			Max float64 `json:"estimated_diameter_max"`
		} `json:"kilometers"`
	} `json:"estimated_diameter"`
	CloseApproachData []CloseApproach `json:"close_approach_data"`
}

type CloseApproach struct {
	Date             string `json:"close_approach_date"`
	RelativeVelocity struct {
		KilometersPerHour string `json:"kilometers_per_hour"`
	} `json:"relative_velocity"`
	MissDistance struct {
		Kilometers string `json:"kilometers"`
	} `json:"miss_distance"`
	OrbitingBody string `json:"orbiting_body"`
}

type Client struct {
	client  *resty.Client
	apiKey  string
	timeout time.Duration
}

func NewClient(cfg *config.Config) *Client {
	client := httpclients.NewClient("NASAClient")
	client.SetBaseURL(cfg.NASABaseURL)
	return &Client{
		client:  client,
		apiKey:  cfg.NASAAPIKey,
		timeout: cfg.NASATimeout,
	}
}

// Feed fetches close approaches between the two dates (inclusive, YYYY-MM-DD).
func (c *Client) Feed(ctx context.Context, startDate, endDate string) (*FeedResponse, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var respBody FeedResponse
	resp, err := c.client.R().
		SetContext(callCtx).
		SetQueryParams(map[string]string{
			"start_date": startDate,
			"end_date":   endDate,
			"api_key":    c.apiKey,
		}).
		SetResult(&respBody).
		Get("/feed")
	if err != nil {
		metrics.NeoFeedFetchesTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("nasa: fetch feed: %w", err)
	}
	if resp.StatusCode() == 429 {
		metrics.NeoFeedFetchesTotal.WithLabelValues("rate_limited").Inc()
		return nil, ErrRateLimited
	}
	if resp.IsError() {
		metrics.NeoFeedFetchesTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("nasa: feed status %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
	}

	metrics.NeoFeedFetchesTotal.WithLabelValues("success").Inc()
	return &respBody, nil
}

// KeyType reports whether the configured key is the shared demo key.
func (c *Client) KeyType() string {
	if c.apiKey == "DEMO_KEY" {
		return "DEMO"
	}
	return "PERSONAL"
}

// MaskedKey returns the key truncated for diagnostics output.
func (c *Client) MaskedKey() string {
	if len(c.apiKey) > 8 {
		return c.apiKey[:8] + "..."
	}
	return c.apiKey
}

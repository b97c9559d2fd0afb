// Package model holds response shapes for the model-listing endpoint.
package model

// ModelInfo is one upstream model in the GET /models listing.
type ModelInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Description string `json:"description,omitempty"`
}

// ListResponse is the GET /models success payload.
type ListResponse struct {
	Success           bool        `json:"success"`
	Models            []ModelInfo `json:"models"`
	Total             int         `json:"total"`
	CurrentModel      string      `json:"currentModel"`
	RecommendedModels []string    `json:"recommendedModels"`
}

// ListFailure is the GET /models degraded payload.
type ListFailure struct {
	Success        bool     `json:"success"`
	Error          string   `json:"error"`
	FallbackModels []string `json:"fallbackModels"`
}

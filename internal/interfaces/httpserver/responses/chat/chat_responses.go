// Package chat holds response shapes for the chat-facing endpoints.
package chat

import "time"

// ChatResponse is the POST /chat payload. Upstream failures keep HTTP 200 and
// carry Success=false with a fallback text.
type ChatResponse struct {
	Response  string    `json:"response"`
	Success   bool      `json:"success"`
	Model     string    `json:"model"`
	Tokens    int       `json:"tokens,omitempty"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// AsteroidInfoResponse is the POST /asteroid-info payload.
type AsteroidInfoResponse struct {
	Response string `json:"response"`
	Success  bool   `json:"success"`
	Asteroid string `json:"asteroid"`
	Model    string `json:"model,omitempty"`
	Note     string `json:"note,omitempty"`
}

// EchoResponse is the POST /echo payload.
type EchoResponse struct {
	Response string `json:"response"`
	Model    string `json:"model"`
	Status   string `json:"status"`
}

// QuickTestResponse is the GET /quick-test payload. Never a non-2xx.
type QuickTestResponse struct {
	Success        bool   `json:"success"`
	Status         string `json:"status"`
	Response       string `json:"response,omitempty"`
	ResponseTimeMS int64  `json:"responseTime"`
}

// ModelTestResponse is the GET /test-gemini success payload.
type ModelTestResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Model    string `json:"model"`
	Response string `json:"response"`
}

// ModelTestFailure is the GET /test-gemini exhaustion payload (HTTP 500).
type ModelTestFailure struct {
	Success     bool     `json:"success"`
	Error       string   `json:"error"`
	TriedModels []string `json:"triedModels"`
}

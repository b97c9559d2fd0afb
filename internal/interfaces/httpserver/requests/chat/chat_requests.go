// Package chat holds request bindings for the chat-facing endpoints.
package chat

// ChatRequest is the POST /chat body.
type ChatRequest struct {
	Message string `json:"message"`
}

// AsteroidInfoRequest is the POST /asteroid-info body.
type AsteroidInfoRequest struct {
	AsteroidName string `json:"asteroidName"`
}

// EchoRequest is the POST /echo body.
type EchoRequest struct {
	Message string `json:"message"`
}

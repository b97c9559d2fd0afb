package chathandler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"cosmic-watch/services/astro-api/internal/config"
	"cosmic-watch/services/astro-api/internal/domain/chat"
	"cosmic-watch/services/astro-api/internal/infrastructure/gemini"
)

func newTestRouter(t *testing.T, upstream http.HandlerFunc) (*gin.Engine, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		GeminiAPIKey:  "test-key",
		GeminiBaseURL: srv.URL,
		DefaultModel:  "gemini-2.0-flash",
	}
	handler := NewChatHandler(chat.NewService(gemini.NewClient(cfg), cfg))

	engine := gin.New()
	engine.POST("/chat", handler.Chat)
	engine.POST("/asteroid-info", handler.AsteroidInfo)
	engine.POST("/echo", handler.Echo)
	engine.GET("/quick-test", handler.QuickTest)
	return engine, srv
}

func generateOK(text string, tokens int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
			},
			"usageMetadata": map[string]int{"totalTokenCount": tokens},
		})
	}
}

func TestChatRejectsMissingMessage(t *testing.T) {
	engine, _ := newTestRouter(t, generateOK("unused", 0))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["error"] != "message is required" {
		t.Fatalf("unexpected error message %q", body["error"])
	}
}

func TestChatSuccess(t *testing.T) {
	engine, _ := newTestRouter(t, generateOK("Titan is a moon of Saturn.", 42))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"tell me about Titan"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Response string `json:"response"`
		Success  bool   `json:"success"`
		Model    string `json:"model"`
		Tokens   int    `json:"tokens"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !body.Success {
		t.Fatalf("expected success, got %+v", body)
	}
	if body.Response != "Titan is a moon of Saturn." {
		t.Fatalf("unexpected response %q", body.Response)
	}
	if body.Model != "gemini-2.0-flash" {
		t.Fatalf("unexpected model %q", body.Model)
	}
	if body.Tokens != 42 {
		t.Fatalf("unexpected token count %d", body.Tokens)
	}
}

func TestChatUpstreamFailureStaysHTTP200(t *testing.T) {
	engine, _ := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"what is the closest asteroid today?"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("upstream failures must keep HTTP 200, got %d", rec.Code)
	}
	var body struct {
		Response string `json:"response"`
		Success  bool   `json:"success"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Success {
		t.Fatalf("expected success=false on upstream failure")
	}
	if body.Response == "" {
		t.Fatalf("expected a fallback answer, got empty response")
	}
}

func TestAsteroidInfoPromptsForMissingName(t *testing.T) {
	engine, _ := newTestRouter(t, generateOK("unused", 0))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/asteroid-info", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("missing name must not be an error status, got %d", rec.Code)
	}
	var body struct {
		Response string `json:"response"`
		Success  bool   `json:"success"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Success {
		t.Fatalf("expected success=false prompt payload")
	}
	if !strings.Contains(body.Response, "asteroid name") {
		t.Fatalf("expected prompt for a name, got %q", body.Response)
	}
}

func TestAsteroidInfoDegradesToCatalog(t *testing.T) {
	engine, _ := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/asteroid-info", strings.NewReader(`{"asteroidName":"Bennu"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Response string `json:"response"`
		Success  bool   `json:"success"`
		Asteroid string `json:"asteroid"`
		Note     string `json:"note"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Asteroid != "Bennu" {
		t.Fatalf("expected asteroid echo, got %q", body.Asteroid)
	}
	if !strings.Contains(body.Response, "Bennu") {
		t.Fatalf("expected catalog fact sheet, got %q", body.Response)
	}
	if body.Note == "" {
		t.Fatalf("expected a degradation note")
	}
}

func TestQuickTestDegradedStaysHTTP200(t *testing.T) {
	engine, _ := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/quick-test", nil)
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("quick test must always answer 200, got %d", rec.Code)
	}
	var body struct {
		Success bool   `json:"success"`
		Status  string `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Success || body.Status != "degraded" {
		t.Fatalf("expected degraded status, got %+v", body)
	}
}

func TestEchoWrapsMessage(t *testing.T) {
	engine, _ := newTestRouter(t, generateOK("unused", 0))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"message":"ping"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Response string `json:"response"`
		Status   string `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !strings.Contains(body.Response, "ping") {
		t.Fatalf("echo must contain the original message, got %q", body.Response)
	}
	if body.Status != "ok" {
		t.Fatalf("unexpected status %q", body.Status)
	}
}

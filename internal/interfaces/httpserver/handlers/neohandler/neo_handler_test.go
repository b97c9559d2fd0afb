package neohandler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"cosmic-watch/services/astro-api/internal/config"
	"cosmic-watch/services/astro-api/internal/domain/neo"
	"cosmic-watch/services/astro-api/internal/infrastructure/nasa"
)

func newTestRouter(t *testing.T, upstream http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		NASAAPIKey:  "DEMO_KEY",
		NASABaseURL: srv.URL,
		NASATimeout: 5 * time.Second,
		NeoCacheTTL: 5 * time.Minute,
	}
	client := nasa.NewClient(cfg)
	handler := NewNeoHandler(neo.NewService(client, cfg), client)

	engine := gin.New()
	engine.GET("/asteroids/today", handler.Today)
	engine.GET("/alerts", handler.Alerts)
	engine.GET("/simulate/threat", handler.SimulateThreat)
	engine.GET("/api/nasa/status", handler.NASAStatus)
	return engine
}

func feedDown(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "service unavailable", http.StatusServiceUnavailable)
}

func TestTodayServesSampleDataWhenFeedDown(t *testing.T) {
	engine := newTestRouter(t, feedDown)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/asteroids/today", nil)
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Success    bool   `json:"success"`
		Count      int    `json:"count"`
		DataSource string `json:"data_source"`
		Asteroids  []struct {
			Name        string  `json:"name"`
			RiskScore   float64 `json:"risk_score"`
			ThreatLevel string  `json:"threat_level"`
		} `json:"asteroids"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !body.Success || body.Count == 0 {
		t.Fatalf("expected sample asteroids, got %+v", body)
	}
	if !strings.Contains(body.DataSource, "sample") {
		t.Fatalf("expected sample data source label, got %q", body.DataSource)
	}
	for _, a := range body.Asteroids {
		if a.ThreatLevel == "" {
			t.Fatalf("asteroid %s missing threat level", a.Name)
		}
	}
}

func TestTodayHonorsLimit(t *testing.T) {
	engine := newTestRouter(t, feedDown)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/asteroids/today?limit=2", nil)
	engine.ServeHTTP(rec, req)

	var body struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Count != 2 {
		t.Fatalf("expected limit of 2 applied, got %d", body.Count)
	}
}

func TestAlertsAlwaysAnswers(t *testing.T) {
	engine := newTestRouter(t, feedDown)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/alerts", nil)
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Success bool `json:"success"`
		Count   int  `json:"count"`
		Alerts  []struct {
			Level string `json:"level"`
		} `json:"alerts"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !body.Success || body.Count == 0 {
		t.Fatalf("expected at least the system-normal alert, got %+v", body)
	}
}

func TestSimulateThreatIsLabelled(t *testing.T) {
	engine := newTestRouter(t, feedDown)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/simulate/threat", nil)
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Simulation bool   `json:"simulation"`
		Warning    string `json:"warning"`
		Asteroid   struct {
			Name string `json:"name"`
		} `json:"asteroid"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !body.Simulation || !strings.Contains(body.Warning, "SIMULATION") {
		t.Fatalf("simulated threat must be clearly labelled, got %+v", body)
	}
	if !strings.Contains(body.Asteroid.Name, "SIMULATED") {
		t.Fatalf("unexpected simulated asteroid name %q", body.Asteroid.Name)
	}
}

func TestNASAStatusMasksKey(t *testing.T) {
	engine := newTestRouter(t, feedDown)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/nasa/status", nil)
	engine.ServeHTTP(rec, req)

	var body struct {
		KeyType   string `json:"key_type"`
		MaskedKey string `json:"masked_key"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.KeyType != "DEMO" {
		t.Fatalf("expected DEMO key type, got %q", body.KeyType)
	}
	if strings.Contains(body.MaskedKey, "DEMO_KEY") && !strings.Contains(body.MaskedKey, "...") {
		t.Fatalf("key must be masked, got %q", body.MaskedKey)
	}
}

func TestParseLimitBounds(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"", defaultLimit},
		{"abc", defaultLimit},
		{"0", defaultLimit},
		{"-3", defaultLimit},
		{"7", 7},
		{"500", maxLimit},
	}
	for _, tc := range cases {
		if got := parseLimit(tc.raw); got != tc.want {
			t.Fatalf("parseLimit(%q) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}

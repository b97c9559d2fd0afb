package neohandler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"cosmic-watch/services/astro-api/internal/domain/neo"
	"cosmic-watch/services/astro-api/internal/infrastructure/logger"
	"cosmic-watch/services/astro-api/internal/infrastructure/nasa"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// NeoHandler serves the near-earth object monitoring endpoints.
type NeoHandler struct {
	neoService *neo.Service
	nasaClient *nasa.Client
	log        zerolog.Logger
}

func NewNeoHandler(neoService *neo.Service, nasaClient *nasa.Client) *NeoHandler {
	return &NeoHandler{
		neoService: neoService,
		nasaClient: nasaClient,
		log:        logger.Component("neohandler"),
	}
}

// Dashboard handles GET /dashboard with a combined monitoring snapshot.
func (h *NeoHandler) Dashboard(c *gin.Context) {
	today, live := h.neoService.Today(c.Request.Context())
	stats := h.neoService.Summarize(today)
	alerts := h.neoService.Alerts(today)

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"asteroids_today":  today,
		"statistics":       stats,
		"alerts":           alerts,
		"upcoming_watch":   h.neoService.Upcoming(),
		"data_source":      sourceLabel(live),
		"monitoring_since": "2026-01-01",
		"timestamp":        time.Now().UTC().Format(time.RFC3339),
	})
}

// Today handles GET /asteroids/today.
func (h *NeoHandler) Today(c *gin.Context) {
	limit := parseLimit(c.Query("limit"))
	asteroids, live := h.neoService.Today(c.Request.Context())
	if len(asteroids) > limit {
		asteroids = asteroids[:limit]
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"count":       len(asteroids),
		"asteroids":   asteroids,
		"data_source": sourceLabel(live),
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Hazardous handles GET /asteroids/hazardous.
func (h *NeoHandler) Hazardous(c *gin.Context) {
	asteroids, live := h.neoService.Hazardous(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"count":       len(asteroids),
		"asteroids":   asteroids,
		"data_source": sourceLabel(live),
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Upcoming handles GET /asteroids/upcoming.
func (h *NeoHandler) Upcoming(c *gin.Context) {
	asteroids := h.neoService.Upcoming()

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"count":     len(asteroids),
		"asteroids": asteroids,
		"note":      "curated watchlist of notable future approaches",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Statistics handles GET /statistics.
func (h *NeoHandler) Statistics(c *gin.Context) {
	asteroids, live := h.neoService.Today(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"statistics":  h.neoService.Summarize(asteroids),
		"data_source": sourceLabel(live),
	})
}

// Alerts handles GET /alerts.
func (h *NeoHandler) Alerts(c *gin.Context) {
	asteroids, _ := h.neoService.Today(c.Request.Context())
	alerts := h.neoService.Alerts(asteroids)

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"count":     len(alerts),
		"alerts":    alerts,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// SimulateThreat handles GET /simulate/threat. The simulated object is never
// cached or mixed into real feed data.
func (h *NeoHandler) SimulateThreat(c *gin.Context) {
	simulated := h.neoService.SimulateThreat()

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"simulation": true,
		"warning":    "THIS IS A SIMULATION - no real threat detected",
		"asteroid":   simulated,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}

// NASAStatus handles GET /api/nasa/status with feed credential diagnostics.
func (h *NeoHandler) NASAStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"key_type":   h.nasaClient.KeyType(),
		"masked_key": h.nasaClient.MaskedKey(),
		"note":       "DEMO keys share a low hourly rate limit; sample data is served when the feed is unavailable",
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}

func parseLimit(raw string) int {
	if raw == "" {
		return defaultLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

func sourceLabel(live bool) string {
	if live {
		return "NASA NeoWs (live)"
	}
	return "sample data (feed unavailable)"
}

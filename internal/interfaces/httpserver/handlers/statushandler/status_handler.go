package statushandler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"cosmic-watch/services/astro-api/internal/config"
	"cosmic-watch/services/astro-api/internal/domain/chat"
)

// StatusHandler serves the service manifest and health endpoints.
type StatusHandler struct {
	cfg         *config.Config
	chatService *chat.Service
}

func NewStatusHandler(cfg *config.Config, chatService *chat.Service) *StatusHandler {
	return &StatusHandler{cfg: cfg, chatService: chatService}
}

// Manifest handles GET /test. It is a static capability listing plus the
// currently active model, and never calls upstream.
func (h *StatusHandler) Manifest(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Cosmic Watch astro-api is online",
		"service": h.cfg.ServiceName,
		"version": config.Version,
		"model":   h.chatService.ActiveModel(),
		"endpoints": gin.H{
			"chat":         "POST /chat",
			"asteroidInfo": "POST /asteroid-info",
			"echo":         "POST /echo",
			"models":       "GET /models",
			"testGemini":   "GET /test-gemini",
			"quickTest":    "GET /quick-test",
			"health":       "GET /health",
			"dashboard":    "GET /dashboard",
		},
		"capabilities": []string{
			"chat completion with model fallback",
			"asteroid knowledge lookups",
			"near-earth object monitoring",
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Health handles GET /health.
func (h *StatusHandler) Health(c *gin.Context) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"service":     h.cfg.ServiceName,
		"version":     config.Version,
		"model":       h.chatService.ActiveModel(),
		"uptime":      h.cfg.Uptime().Round(time.Second).String(),
		"environment": h.cfg.Environment,
		"memory": gin.H{
			"allocMB":      mem.Alloc / 1024 / 1024,
			"totalAllocMB": mem.TotalAlloc / 1024 / 1024,
			"sysMB":        mem.Sys / 1024 / 1024,
			"numGC":        mem.NumGC,
		},
		"goroutines": runtime.NumGoroutine(),
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}

package infrastructure

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"cosmic-watch/services/astro-api/internal/config"
	"cosmic-watch/services/astro-api/internal/infrastructure/crontab"
	"cosmic-watch/services/astro-api/internal/infrastructure/gemini"
	"cosmic-watch/services/astro-api/internal/infrastructure/logger"
	"cosmic-watch/services/astro-api/internal/infrastructure/nasa"
)

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.Load()
}

// Infrastructure holds shared infrastructure dependencies
type Infrastructure struct {
	GeminiClient *gemini.Client
	NASAClient   *nasa.Client
	Logger       zerolog.Logger
}

// NewInfrastructure creates a new infrastructure instance
func NewInfrastructure(
	geminiClient *gemini.Client,
	nasaClient *nasa.Client,
	log zerolog.Logger,
) *Infrastructure {
	return &Infrastructure{
		GeminiClient: geminiClient,
		NASAClient:   nasaClient,
		Logger:       log,
	}
}

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	// Config
	ProvideConfig,

	// Upstream clients
	gemini.NewClient,
	nasa.NewClient,

	// Logger
	logger.GetLogger,

	// Crontab for feed refresh
	crontab.NewCrontab,

	// Infrastructure struct
	NewInfrastructure,
)

package domain

import (
	"github.com/google/wire"

	"cosmic-watch/services/astro-api/internal/domain/chat"
	"cosmic-watch/services/astro-api/internal/domain/neo"
)

// ServiceProvider provides all domain services
var ServiceProvider = wire.NewSet(
	// Chat domain
	chat.NewService,

	// NEO monitoring domain
	neo.NewService,
)

package routes

import (
	"github.com/google/wire"

	"cosmic-watch/services/astro-api/internal/interfaces/httpserver/handlers/chathandler"
	"cosmic-watch/services/astro-api/internal/interfaces/httpserver/handlers/modelhandler"
	"cosmic-watch/services/astro-api/internal/interfaces/httpserver/handlers/neohandler"
	"cosmic-watch/services/astro-api/internal/interfaces/httpserver/handlers/statushandler"
)

var RouteProvider = wire.NewSet(
	// Handlers
	chathandler.NewChatHandler,
	modelhandler.NewModelHandler,
	neohandler.NewNeoHandler,
	statushandler.NewStatusHandler,

	// Routes
	NewChatRoute,
	NewModelRoute,
	NewNeoRoute,
	NewStatusRoute,
)

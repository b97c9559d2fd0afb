package interfaces

import (
	"github.com/google/wire"

	"cosmic-watch/services/astro-api/internal/interfaces/httpserver"
)

var InterfacesProvider = wire.NewSet(
	httpserver.NewHttpServer,
)

//go:build wireinject

package main

import (
	"github.com/google/wire"

	"cosmic-watch/services/astro-api/internal/domain"
	"cosmic-watch/services/astro-api/internal/infrastructure"
	"cosmic-watch/services/astro-api/internal/interfaces"
	"cosmic-watch/services/astro-api/internal/interfaces/httpserver/routes"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		domain.ServiceProvider,
		infrastructure.InfrastructureProvider,
		routes.RouteProvider,
		interfaces.InterfacesProvider,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}

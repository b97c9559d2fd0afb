package routes

import (
	"github.com/gin-gonic/gin"

	"cosmic-watch/services/astro-api/internal/interfaces/httpserver/handlers/statushandler"
)

// StatusRoute handles routing for service manifest and health endpoints.
type StatusRoute struct {
	handler *statushandler.StatusHandler
}

func NewStatusRoute(handler *statushandler.StatusHandler) *StatusRoute {
	return &StatusRoute{handler: handler}
}

// RegisterRouter registers status routes.
func (route *StatusRoute) RegisterRouter(router gin.IRouter) {
	router.GET("/test", route.manifest)
	router.GET("/health", route.health)
}

func (route *StatusRoute) manifest(reqCtx *gin.Context) {
	route.handler.Manifest(reqCtx)
}

func (route *StatusRoute) health(reqCtx *gin.Context) {
	route.handler.Health(reqCtx)
}

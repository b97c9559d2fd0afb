package routes

import (
	"github.com/gin-gonic/gin"

	"cosmic-watch/services/astro-api/internal/interfaces/httpserver/handlers/modelhandler"
)

// ModelRoute handles routing for model listing endpoints.
type ModelRoute struct {
	handler *modelhandler.ModelHandler
}

func NewModelRoute(handler *modelhandler.ModelHandler) *ModelRoute {
	return &ModelRoute{handler: handler}
}

// RegisterRouter registers model routes.
func (route *ModelRoute) RegisterRouter(router gin.IRouter) {
	router.GET("/models", route.listModels)
}

func (route *ModelRoute) listModels(reqCtx *gin.Context) {
	route.handler.List(reqCtx)
}

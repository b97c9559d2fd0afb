package routes

import (
	"github.com/gin-gonic/gin"

	"cosmic-watch/services/astro-api/internal/interfaces/httpserver/handlers/chathandler"
)

// ChatRoute handles routing for chat completion endpoints.
type ChatRoute struct {
	handler *chathandler.ChatHandler
}

func NewChatRoute(handler *chathandler.ChatHandler) *ChatRoute {
	return &ChatRoute{handler: handler}
}

// RegisterRouter registers chat routes.
func (route *ChatRoute) RegisterRouter(router gin.IRouter) {
	router.POST("/chat", route.chat)
	router.POST("/asteroid-info", route.asteroidInfo)
	router.POST("/echo", route.echo)
	router.GET("/test-gemini", route.testGemini)
	router.GET("/quick-test", route.quickTest)
}

func (route *ChatRoute) chat(reqCtx *gin.Context) {
	route.handler.Chat(reqCtx)
}

func (route *ChatRoute) asteroidInfo(reqCtx *gin.Context) {
	route.handler.AsteroidInfo(reqCtx)
}

func (route *ChatRoute) echo(reqCtx *gin.Context) {
	route.handler.Echo(reqCtx)
}

func (route *ChatRoute) testGemini(reqCtx *gin.Context) {
	route.handler.TestModel(reqCtx)
}

func (route *ChatRoute) quickTest(reqCtx *gin.Context) {
	route.handler.QuickTest(reqCtx)
}

package routes

import (
	"github.com/gin-gonic/gin"

	"cosmic-watch/services/astro-api/internal/interfaces/httpserver/handlers/neohandler"
)

// NeoRoute handles routing for near-earth object monitoring endpoints.
type NeoRoute struct {
	handler *neohandler.NeoHandler
}

func NewNeoRoute(handler *neohandler.NeoHandler) *NeoRoute {
	return &NeoRoute{handler: handler}
}

// RegisterRouter registers monitoring routes.
func (route *NeoRoute) RegisterRouter(router gin.IRouter) {
	router.GET("/dashboard", route.dashboard)
	router.GET("/statistics", route.statistics)
	router.GET("/alerts", route.alerts)
	router.GET("/simulate/threat", route.simulateThreat)

	asteroids := router.Group("/asteroids")
	asteroids.GET("/today", route.today)
	asteroids.GET("/hazardous", route.hazardous)
	asteroids.GET("/upcoming", route.upcoming)

	router.GET("/api/nasa/status", route.nasaStatus)
}

func (route *NeoRoute) dashboard(reqCtx *gin.Context) {
	route.handler.Dashboard(reqCtx)
}

func (route *NeoRoute) statistics(reqCtx *gin.Context) {
	route.handler.Statistics(reqCtx)
}

func (route *NeoRoute) alerts(reqCtx *gin.Context) {
	route.handler.Alerts(reqCtx)
}

func (route *NeoRoute) simulateThreat(reqCtx *gin.Context) {
	route.handler.SimulateThreat(reqCtx)
}

func (route *NeoRoute) today(reqCtx *gin.Context) {
	route.handler.Today(reqCtx)
}

func (route *NeoRoute) hazardous(reqCtx *gin.Context) {
	route.handler.Hazardous(reqCtx)
}

func (route *NeoRoute) upcoming(reqCtx *gin.Context) {
	route.handler.Upcoming(reqCtx)
}

func (route *NeoRoute) nasaStatus(reqCtx *gin.Context) {
	route.handler.NASAStatus(reqCtx)
}

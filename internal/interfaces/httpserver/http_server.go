package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"cosmic-watch/services/astro-api/internal/config"
	"cosmic-watch/services/astro-api/internal/infrastructure"
	middleware "cosmic-watch/services/astro-api/internal/interfaces/httpserver/middlewares"
	"cosmic-watch/services/astro-api/internal/interfaces/httpserver/routes"
)

type HttpServer struct {
	engine      *gin.Engine
	infra       *infrastructure.Infrastructure
	chatRoute   *routes.ChatRoute
	modelRoute  *routes.ModelRoute
	neoRoute    *routes.NeoRoute
	statusRoute *routes.StatusRoute
	config      *config.Config
}

func NewHttpServer(
	chatRoute *routes.ChatRoute,
	modelRoute *routes.ModelRoute,
	neoRoute *routes.NeoRoute,
	statusRoute *routes.StatusRoute,
	infra *infrastructure.Infrastructure,
	cfg *config.Config,
) *HttpServer {
	gin.SetMode(gin.ReleaseMode)
	server := HttpServer{
		gin.New(),
		infra,
		chatRoute,
		modelRoute,
		neoRoute,
		statusRoute,
		cfg,
	}
	server.engine.Use(middleware.RequestID())
	server.engine.Use(middleware.TracingMiddleware(cfg.ServiceName))
	server.engine.Use(middleware.LoggingMiddleware(infra.Logger))
	server.engine.Use(middleware.CORSMiddleware())
	server.engine.Use(middleware.MetricsMiddleware())

	// Liveness probes for container orchestrators
	server.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	server.engine.GET("/readyz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	return &server
}

func (httpServer *HttpServer) Run() error {
	root := httpServer.engine.Group("/")

	httpServer.statusRoute.RegisterRouter(root)
	httpServer.chatRoute.RegisterRouter(root)
	httpServer.modelRoute.RegisterRouter(root)
	httpServer.neoRoute.RegisterRouter(root)

	if err := httpServer.engine.Run(fmt.Sprintf(":%d", httpServer.config.HTTPPort)); err != nil {
		return err
	}
	return nil
}

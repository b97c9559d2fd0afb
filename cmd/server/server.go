package main

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"cosmic-watch/services/astro-api/internal/config"
	"cosmic-watch/services/astro-api/internal/infrastructure/crontab"
	"cosmic-watch/services/astro-api/internal/infrastructure/logger"
	"cosmic-watch/services/astro-api/internal/infrastructure/metrics"
	"cosmic-watch/services/astro-api/internal/infrastructure/observability"
	"cosmic-watch/services/astro-api/internal/interfaces/httpserver"

	_ "net/http/pprof"
)

type Application struct {
	httpServer *httpserver.HttpServer
	crontab    *crontab.Crontab
}

func init() {
	logger.GetLogger()
}

func (application *Application) Start() {
	background := context.Background()
	ctx, cancel := context.WithCancel(background)
	defer cancel()

	cfg := config.GetGlobal()

	var eg errgroup.Group
	eg.Go(func() error {
		err := http.ListenAndServe("0.0.0.0:6060", nil)
		if err != nil {
			cancel()
		}
		return err
	})
	eg.Go(func() error {
		err := metrics.Serve(cfg.MetricsPort)
		if err != nil {
			cancel()
		}
		return err
	})
	eg.Go(func() error {
		err := application.crontab.Run(ctx)
		if err != nil {
			cancel()
		}
		return err
	})
	eg.Go(func() error {
		err := application.httpServer.Run()
		if err != nil {
			cancel()
		}
		return err
	})

	if err := eg.Wait(); err != nil {
		panic(err)
	}
}

func main() {
	ctx := context.Background()
	log := logger.GetLogger()

	if _, err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	cfg := config.GetGlobal()

	if reconfigured, err := logger.New(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Warn().Err(err).Msg("invalid log settings, keeping defaults")
	} else {
		log = reconfigured
	}

	application, err := CreateApplication()
	if err != nil {
		log.Fatal().Err(err).Msg("create application")
	}

	otelShutdown, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("initialize observability")
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := otelShutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("shutdown telemetry")
			}
		}()
	}

	application.Start()
}

package crontab

import (
	"context"
	"time"

	"github.com/mileusna/crontab"

	"cosmic-watch/services/astro-api/internal/config"
	"cosmic-watch/services/astro-api/internal/domain/neo"
	"cosmic-watch/services/astro-api/internal/infrastructure/logger"
	"cosmic-watch/services/astro-api/internal/utils/platformerrors"
)

// CronJobTimeout bounds each scheduled refresh.
const CronJobTimeout = 2 * time.Minute

// Crontab keeps the NEO day cache warm on a fixed schedule so the first
// dashboard request of the day doesn't pay the NeoWs latency.
type Crontab struct {
	ctab       *crontab.Crontab
	neoService *neo.Service
	cfg        *config.Config
}

func NewCrontab(neoService *neo.Service, cfg *config.Config) *Crontab {
	return &Crontab{
		ctab:       crontab.New(),
		neoService: neoService,
		cfg:        cfg,
	}
}

func (c *Crontab) Run(ctx context.Context) error {
	log := logger.GetLogger()

	if !c.cfg.NeoRefreshEnabled {
		log.Info().Msg("NEO feed refresh disabled")
		<-ctx.Done()
		c.ctab.Shutdown()
		return nil
	}

	// warm the cache once on server start
	c.refresh()

	if err := c.ctab.AddJob(c.cfg.NeoRefreshSchedule, c.refresh); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, err, "failed to add NEO refresh job")
	}
	log.Info().Str("schedule", c.cfg.NeoRefreshSchedule).Msg("NEO feed refresh scheduled")

	<-ctx.Done()
	c.ctab.Shutdown()
	return nil
}

func (c *Crontab) refresh() {
	jobCtx, cancel := context.WithTimeout(context.Background(), CronJobTimeout)
	defer cancel()
	c.neoService.Refresh(jobCtx)
}

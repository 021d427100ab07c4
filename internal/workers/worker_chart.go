// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"time"

	"github.com/melodia-app/melodia-server/internal/logger"
	"github.com/melodia-app/melodia-server/internal/service"
)

// ChartWorker periodically recomputes the play-count chart so that top-song
// reads stay cheap. The chart is a materialized view; readers keep seeing
// the previous ranking while a refresh is in flight.
type ChartWorker struct {
	songService service.SongService
	interval    time.Duration
	logger      *logger.Logger
}

// NewChartWorker constructs a ChartWorker refreshing every interval.
func NewChartWorker(songService service.SongService, interval time.Duration, logger *logger.Logger) *ChartWorker {
	return &ChartWorker{
		songService: songService,
		interval:    interval,
		logger:      logger,
	}
}

// Run refreshes the chart once at startup, then on every tick until ctx is
// cancelled. A failed refresh is logged and retried on the next tick.
func (w *ChartWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("chart worker started")

	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("chart worker stopped")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *ChartWorker) refresh(ctx context.Context) {
	if err := w.songService.RefreshTopSongs(ctx); err != nil {
		w.logger.Err(err).Str("func", "*ChartWorker.refresh").Msg("chart refresh failed")
		return
	}
	w.logger.Debug().Msg("chart refreshed")
}

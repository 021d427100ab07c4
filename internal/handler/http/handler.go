package http

import (
	"golang.org/x/time/rate"

	"github.com/melodia-app/melodia-server/internal/config"
	"github.com/melodia-app/melodia-server/internal/logger"
	"github.com/melodia-app/melodia-server/internal/service"
)

type Handler struct {
	services *service.Services

	// loginLimiter throttles credential verification attempts across all
	// clients. Bad credentials and rate exhaustion both leave the response
	// shape untouched.
	loginLimiter *rate.Limiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	// a non-positive rate means the limiter is not configured, not that
	// every login is rejected
	limit := rate.Inf
	burst := 0
	if cfg.LoginRatePerSecond > 0 {
		limit = rate.Limit(cfg.LoginRatePerSecond)
		burst = cfg.LoginRateBurst
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		loginLimiter: rate.NewLimiter(limit, burst),
		logger:       logger,
	}
}

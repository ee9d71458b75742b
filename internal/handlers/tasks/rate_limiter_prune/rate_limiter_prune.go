package rate_limiter_prune

import (
	"context"
	"time"

	"swiftrider/pkg/logger"
)

type Pruner interface {
	Prune() int
	Len() int
}

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
}

// RateLimiterPrune чистит корзины клиентов, которые успели полностью пополниться.
type RateLimiterPrune struct {
	log      taskLogger
	limiter  Pruner
	interval time.Duration
}

func New(log taskLogger, limiter Pruner, interval time.Duration) *RateLimiterPrune {
	return &RateLimiterPrune{
		log:      log,
		limiter:  limiter,
		interval: interval,
	}
}

func (p *RateLimiterPrune) TTL() time.Duration {
	return p.interval
}

func (p *RateLimiterPrune) Do(context.Context) error {
	removed := p.limiter.Prune()
	if removed > 0 {
		p.log.Info("rate limiter buckets pruned",
			logger.NewField("removed", removed),
			logger.NewField("remaining", p.limiter.Len()),
		)
	}
	return nil
}

func (p *RateLimiterPrune) Info() string {
	return "rate limiter prune"
}

package payment_reconcile

import (
	"context"
	"time"

	"swiftrider/pkg/logger"
)

// PaymentReconcile досверяет со шлюзом pending платежи, по которым клиент
// так и не вызвал verify.
type PaymentReconcile struct {
	log      taskLogger
	service  Service
	interval time.Duration
	minAge   time.Duration
	batch    int
}

func New(log taskLogger, service Service, interval, minAge time.Duration, batch int) *PaymentReconcile {
	return &PaymentReconcile{
		log:      log,
		service:  service,
		interval: interval,
		minAge:   minAge,
		batch:    batch,
	}
}

func (p *PaymentReconcile) TTL() time.Duration {
	return p.interval
}

func (p *PaymentReconcile) Do(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	settled, err := p.service.Reconcile(ctx, p.minAge, p.batch)
	if settled > 0 {
		p.log.Info("payments reconciled", logger.NewField("settled", settled))
	}

	return err
}

func (p *PaymentReconcile) Info() string {
	return "payment reconcile"
}

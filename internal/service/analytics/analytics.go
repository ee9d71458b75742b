package analytics

import (
	"context"

	"golang.org/x/sync/errgroup"
	"swiftrider/internal/entities"
	"swiftrider/pkg/logger"
)

type Analytics struct {
	repository Repository
	log        serviceLogger
}

func New(repository Repository, log serviceLogger) *Analytics {
	return &Analytics{
		repository: repository,
		log:        log,
	}
}

// Get считает разделы отчета параллельно. Раздел, который не удалось посчитать,
// остается нулевым, ошибка только логируется.
func (s *Analytics) Get(ctx context.Context, window entities.AnalyticsWindow) (*entities.AnalyticsReport, error) {
	err := validateWindow(window)
	if err != nil {
		return nil, err
	}

	var (
		report entities.AnalyticsReport
		g      errgroup.Group
	)

	g.Go(func() error {
		counts, err := s.repository.DeliveryCounts(ctx, window)
		if err != nil {
			s.sectionFailed("deliveries", err)
			return nil
		}
		report.Deliveries = counts
		return nil
	})
	g.Go(func() error {
		revenue, err := s.repository.Revenue(ctx, window)
		if err != nil {
			s.sectionFailed("revenue", err)
			return nil
		}
		report.Revenue = revenue
		return nil
	})
	g.Go(func() error {
		users, err := s.repository.UserCounts(ctx, window)
		if err != nil {
			s.sectionFailed("users", err)
			return nil
		}
		report.Users = users
		return nil
	})
	g.Go(func() error {
		performance, err := s.repository.Performance(ctx, window)
		if err != nil {
			s.sectionFailed("performance", err)
			return nil
		}
		report.Performance = performance
		return nil
	})

	_ = g.Wait()

	return &report, nil
}

func (s *Analytics) sectionFailed(section string, err error) {
	s.log.Error("analytics section failed",
		logger.NewField("section", section),
		logger.NewField("error", err),
	)
}

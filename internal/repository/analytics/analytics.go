package analytics

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"swiftrider/internal/entities"
	"swiftrider/internal/repository"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// windowed ограничивает выборку по created_at, границы включительно.
func windowed(builder sq.SelectBuilder, window entities.AnalyticsWindow) sq.SelectBuilder {
	if window.Start != nil {
		builder = builder.Where(sq.GtOrEq{"created_at": *window.Start})
	}
	if window.End != nil {
		builder = builder.Where(sq.LtOrEq{"created_at": *window.End})
	}
	return builder
}

func (r *Repository) DeliveryCounts(ctx context.Context, window entities.AnalyticsWindow) (entities.DeliveryCounts, error) {
	query, args, err := windowed(qb.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE status = 'pending')",
		"COUNT(*) FILTER (WHERE status = 'accepted')",
		"COUNT(*) FILTER (WHERE status = 'in-progress')",
		"COUNT(*) FILTER (WHERE status = 'completed')",
		"COUNT(*) FILTER (WHERE status = 'cancelled')",
	).From("deliveries"), window).ToSql()
	if err != nil {
		return entities.DeliveryCounts{}, fmt.Errorf("unexpected analytics repository delivery counts error: %w", err)
	}

	var counts entities.DeliveryCounts
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&counts.Total,
		&counts.Pending,
		&counts.Accepted,
		&counts.InProgress,
		&counts.Completed,
		&counts.Cancelled,
	)
	if err != nil {
		return entities.DeliveryCounts{}, fmt.Errorf("unexpected analytics repository delivery counts error: %w", err)
	}

	return counts, nil
}

func (r *Repository) Revenue(ctx context.Context, window entities.AnalyticsWindow) (entities.RevenueSummary, error) {
	query, args, err := windowed(qb.Select(
		"COALESCE(SUM(amount), 0)::float8",
		"COALESCE(AVG(amount), 0)::float8",
		"COUNT(*)",
	).From("payments").Where(sq.Eq{"status": entities.TransactionSuccess.String()}), window).ToSql()
	if err != nil {
		return entities.RevenueSummary{}, fmt.Errorf("unexpected analytics repository revenue error: %w", err)
	}

	var revenue entities.RevenueSummary
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&revenue.Total,
		&revenue.AverageOrderValue,
		&revenue.SuccessfulTransactions,
	)
	if err != nil {
		return entities.RevenueSummary{}, fmt.Errorf("unexpected analytics repository revenue error: %w", err)
	}

	return revenue, nil
}

func (r *Repository) UserCounts(ctx context.Context, window entities.AnalyticsWindow) (entities.UserCounts, error) {
	query, args, err := windowed(qb.Select(
		"COUNT(*) FILTER (WHERE role = 'customer')",
		"COUNT(*) FILTER (WHERE role = 'rider')",
		"COUNT(*) FILTER (WHERE role = 'rider' AND is_available)",
	).From("users"), window).ToSql()
	if err != nil {
		return entities.UserCounts{}, fmt.Errorf("unexpected analytics repository user counts error: %w", err)
	}

	var users entities.UserCounts
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&users.Customers,
		&users.Riders,
		&users.AvailableRiders,
	)
	if err != nil {
		return entities.UserCounts{}, fmt.Errorf("unexpected analytics repository user counts error: %w", err)
	}

	return users, nil
}

// Performance считает среднее время от забора до доставки по завершенным доставкам.
func (r *Repository) Performance(ctx context.Context, window entities.AnalyticsWindow) (entities.PerformanceSummary, error) {
	query, args, err := windowed(qb.Select(
		"COALESCE(AVG(EXTRACT(EPOCH FROM (delivery_time - pickup_time)) / 60), 0)::float8",
	).From("deliveries").
		Where(sq.Eq{"status": entities.DeliveryCompleted.String()}).
		Where("pickup_time IS NOT NULL").
		Where("delivery_time > pickup_time"), window).ToSql()
	if err != nil {
		return entities.PerformanceSummary{}, fmt.Errorf("unexpected analytics repository performance error: %w", err)
	}

	var performance entities.PerformanceSummary
	err = r.querier.QueryRow(ctx, query, args...).Scan(&performance.AverageDeliveryMinutes)
	if err != nil {
		return entities.PerformanceSummary{}, fmt.Errorf("unexpected analytics repository performance error: %w", err)
	}

	return performance, nil
}

package delivery

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"swiftrider/internal/entities"
	"swiftrider/internal/repository"
	"swiftrider/internal/service/delivery"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const oneActivePerRider = "deliveries_one_active_per_rider"

var deliveryColumns = []string{
	"id", "customer_id", "rider_id", "pickup_address", "delivery_address",
	"package_description", "package_weight_kg", "package_length", "package_width", "package_height",
	"estimated_cost", "actual_cost", "distance_km", "status", "payment_status",
	"pickup_time", "delivery_time", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(deliveryColumns, ", ")

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanDelivery(row pgx.Row, d *DeliveryDB) error {
	return row.Scan(
		&d.ID,
		&d.CustomerID,
		&d.RiderID,
		&d.PickupAddress,
		&d.DeliveryAddress,
		&d.PackageDescription,
		&d.PackageWeightKg,
		&d.PackageLength,
		&d.PackageWidth,
		&d.PackageHeight,
		&d.EstimatedCost,
		&d.ActualCost,
		&d.DistanceKm,
		&d.Status,
		&d.PaymentStatus,
		&d.PickupTime,
		&d.DeliveryTime,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
}

func (r *Repository) Create(ctx context.Context, create entities.DeliveryCreate) (*entities.Delivery, error) {
	var length, width, height *float64
	if dims := create.Package.Dimensions; dims != nil {
		length, width, height = &dims.Length, &dims.Width, &dims.Height
	}

	query, args, err := qb.
		Insert("deliveries").
		Columns("customer_id", "pickup_address", "delivery_address", "package_description",
			"package_weight_kg", "package_length", "package_width", "package_height",
			"estimated_cost", "distance_km").
		Values(
			create.CustomerID,
			create.PickupAddress,
			create.DeliveryAddress,
			create.Package.Description,
			create.Package.WeightKg,
			length,
			width,
			height,
			create.EstimatedCost,
			create.DistanceKm,
		).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	var deliveryDB DeliveryDB
	err = scanDelivery(r.querier.QueryRow(ctx, query, args...), &deliveryDB)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Delivery, error) {
	query, args, err := qb.Select(deliveryColumns...).From("deliveries").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getbyid error: %w", err)
	}

	var deliveryDB DeliveryDB
	err = scanDelivery(r.querier.QueryRow(ctx, query, args...), &deliveryDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository getbyid error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

func (r *Repository) List(ctx context.Context, filter entities.DeliveryFilter) ([]entities.Delivery, int64, error) {
	where := sq.And{}
	if filter.Status != nil {
		where = append(where, sq.Eq{"status": filter.Status.String()})
	}
	if filter.CustomerID != nil {
		where = append(where, sq.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.RiderID != nil {
		where = append(where, sq.Eq{"rider_id": *filter.RiderID})
	}

	countQuery, countArgs, err := qb.Select("COUNT(*)").From("deliveries").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}

	var total int64
	err = r.querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected delivery repository count error: %w", err)
	}

	page := filter.Page.Normalize()
	query, args, err := qb.
		Select(deliveryColumns...).
		From("deliveries").
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}
	defer rows.Close()

	deliveriesDB := make([]DeliveryDB, 0, page.Limit)
	for rows.Next() {
		var deliveryDB DeliveryDB
		err := scanDelivery(rows, &deliveryDB)
		if err != nil {
			return nil, 0, fmt.Errorf("unexpected delivery repository list error: %w", err)
		}
		deliveriesDB = append(deliveriesDB, deliveryDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}

	return ToDomainList(deliveriesDB), total, nil
}

// Transition меняет статус, только если в базе все еще transition.From.
// Время забора и доставки пишется один раз.
func (r *Repository) Transition(ctx context.Context, transition entities.DeliveryTransition) (*entities.Delivery, error) {
	query := `
		UPDATE deliveries
		SET status = $3,
			rider_id = COALESCE($4, rider_id),
			pickup_time = COALESCE(pickup_time, $5),
			delivery_time = COALESCE(delivery_time, $6),
			updated_at = NOW()
		WHERE id = $1 AND status = $2
	` + returning

	var deliveryDB DeliveryDB
	err := scanDelivery(r.querier.QueryRow(
		ctx,
		query,
		transition.ID,
		transition.From.String(),
		transition.To.String(),
		transition.RiderID,
		transition.PickupTime,
		transition.DeliveryTime,
	), &deliveryDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.missingOrChanged(ctx, transition.ID)
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) &&
			repository.ConstraintName(err) == oneActivePerRider {
			return nil, delivery.ErrRiderUnavailable
		}
		return nil, fmt.Errorf("unexpected delivery repository transition error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

func (r *Repository) missingOrChanged(ctx context.Context, id int64) error {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM deliveries WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository transition error: %w", err)
	}
	if !exists {
		return delivery.ErrDeliveryNotFound
	}
	return delivery.ErrStatusChanged
}

func (r *Repository) UpdateActualCost(ctx context.Context, id int64, actualCost float64) (*entities.Delivery, error) {
	query := `
		UPDATE deliveries
		SET actual_cost = $2,
			updated_at = NOW()
		WHERE id = $1
	` + returning

	var deliveryDB DeliveryDB
	err := scanDelivery(r.querier.QueryRow(ctx, query, id, actualCost), &deliveryDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository update actual cost error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

// MarkPaid фиксирует оплату: статус оплаты и фактическая стоимость.
func (r *Repository) MarkPaid(ctx context.Context, id int64, amount float64) error {
	query := `
		UPDATE deliveries
		SET payment_status = 'paid',
			actual_cost = $2,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, id, amount)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository mark paid error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return delivery.ErrDeliveryNotFound
	}
	return nil
}

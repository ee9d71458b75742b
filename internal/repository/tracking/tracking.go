package tracking

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"swiftrider/internal/entities"
	"swiftrider/internal/repository"
	"swiftrider/internal/service/delivery"
	"swiftrider/internal/service/tracking"
)

const columns = `id, delivery_id, rider_id, latitude, longitude, status, note, created_at`

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanEntry(row pgx.Row, t *TrackingEntryDB) error {
	return row.Scan(
		&t.ID,
		&t.DeliveryID,
		&t.RiderID,
		&t.Latitude,
		&t.Longitude,
		&t.Status,
		&t.Note,
		&t.CreatedAt,
	)
}

func (r *Repository) Create(ctx context.Context, create entities.TrackingCreate) (*entities.TrackingEntry, error) {
	query := `
		INSERT INTO tracking_entries (delivery_id, rider_id, latitude, longitude, status, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + columns

	var entryDB TrackingEntryDB
	err := scanEntry(r.querier.QueryRow(
		ctx,
		query,
		create.DeliveryID,
		create.RiderID,
		create.Location.Latitude,
		create.Location.Longitude,
		create.Status.String(),
		create.Note,
	), &entryDB)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected tracking repository create error: %w", err)
	}

	return ToDomain(&entryDB), nil
}

// ListByDelivery отдает точки от новых к старым.
func (r *Repository) ListByDelivery(ctx context.Context, deliveryID int64) ([]entities.TrackingEntry, error) {
	query := `
		SELECT ` + columns + `
		FROM tracking_entries
		WHERE delivery_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.querier.Query(ctx, query, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository list error: %w", err)
	}
	defer rows.Close()

	entries := make([]entities.TrackingEntry, 0, 16)
	for rows.Next() {
		var entryDB TrackingEntryDB
		err := scanEntry(rows, &entryDB)
		if err != nil {
			return nil, fmt.Errorf("unexpected tracking repository list error: %w", err)
		}
		entries = append(entries, *ToDomain(&entryDB))
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository list error: %w", err)
	}

	return entries, nil
}

func (r *Repository) Latest(ctx context.Context, deliveryID int64) (*entities.TrackingEntry, error) {
	query := `
		SELECT ` + columns + `
		FROM tracking_entries
		WHERE delivery_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	var entryDB TrackingEntryDB
	err := scanEntry(r.querier.QueryRow(ctx, query, deliveryID), &entryDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tracking.ErrNoTracking
		}
		return nil, fmt.Errorf("unexpected tracking repository latest error: %w", err)
	}

	return ToDomain(&entryDB), nil
}

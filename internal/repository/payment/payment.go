package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"swiftrider/internal/entities"
	"swiftrider/internal/repository"
	"swiftrider/internal/service/payment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var paymentColumns = []string{
	"id", "customer_id", "delivery_id", "amount", "payment_method", "payment_gateway",
	"transaction_reference", "status", "gateway_response", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(paymentColumns, ", ")

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanPayment(row pgx.Row, p *PaymentDB) error {
	return row.Scan(
		&p.ID,
		&p.CustomerID,
		&p.DeliveryID,
		&p.Amount,
		&p.PaymentMethod,
		&p.PaymentGateway,
		&p.TransactionReference,
		&p.Status,
		&p.GatewayResponse,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}

func (r *Repository) Create(ctx context.Context, create entities.PaymentCreate) (*entities.Payment, error) {
	query := `
		INSERT INTO payments (customer_id, delivery_id, amount, payment_method, payment_gateway,
			transaction_reference, gateway_response)
		VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb)
	` + returning

	var paymentDB PaymentDB
	err := scanPayment(r.querier.QueryRow(
		ctx,
		query,
		create.CustomerID,
		create.DeliveryID,
		create.Amount,
		create.Method.String(),
		create.Gateway,
		create.TransactionReference,
		nullableJSON(create.GatewayResponse),
	), &paymentDB)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, payment.ErrDuplicateRef
		}
		return nil, fmt.Errorf("unexpected payment repository create error: %w", err)
	}

	return ToDomain(&paymentDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Payment, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, "getbyid")
}

func (r *Repository) GetByReference(ctx context.Context, reference string) (*entities.Payment, error) {
	return r.getOne(ctx, sq.Eq{"transaction_reference": reference}, "getbyreference")
}

func (r *Repository) getOne(ctx context.Context, where sq.Eq, op string) (*entities.Payment, error) {
	query, args, err := qb.Select(paymentColumns...).From("payments").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository %s error: %w", op, err)
	}

	var paymentDB PaymentDB
	err = scanPayment(r.querier.QueryRow(ctx, query, args...), &paymentDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("unexpected payment repository %s error: %w", op, err)
	}

	return ToDomain(&paymentDB), nil
}

func (r *Repository) List(ctx context.Context, filter entities.PaymentFilter) ([]entities.Payment, int64, error) {
	where := sq.And{}
	if filter.Status != nil {
		where = append(where, sq.Eq{"status": filter.Status.String()})
	}
	if filter.CustomerID != nil {
		where = append(where, sq.Eq{"customer_id": *filter.CustomerID})
	}

	countQuery, countArgs, err := qb.Select("COUNT(*)").From("payments").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected payment repository list error: %w", err)
	}

	var total int64
	err = r.querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected payment repository count error: %w", err)
	}

	page := filter.Page.Normalize()
	query, args, err := qb.
		Select(paymentColumns...).
		From("payments").
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected payment repository list error: %w", err)
	}

	payments, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected payment repository list error: %w", err)
	}

	return payments, total, nil
}

// Complete закрывает только pending платеж, повторный вызов получает ErrAlreadySettled.
func (r *Repository) Complete(
	ctx context.Context,
	id int64,
	status entities.TransactionStatus,
	gatewayResponse json.RawMessage,
) (*entities.Payment, error) {
	query := `
		UPDATE payments
		SET status = $2,
			gateway_response = COALESCE($3::jsonb, gateway_response),
			updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	` + returning

	var paymentDB PaymentDB
	err := scanPayment(r.querier.QueryRow(ctx, query, id, status.String(), nullableJSON(gatewayResponse)), &paymentDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// платежа нет совсем или он уже закрыт
			_, getErr := r.GetByID(ctx, id)
			if getErr != nil {
				return nil, getErr
			}
			return nil, payment.ErrAlreadySettled
		}
		return nil, fmt.Errorf("unexpected payment repository complete error: %w", err)
	}

	return ToDomain(&paymentDB), nil
}

func (r *Repository) ListPending(ctx context.Context, createdBefore time.Time, limit int) ([]entities.Payment, error) {
	query, args, err := qb.
		Select(paymentColumns...).
		From("payments").
		Where(sq.Eq{"status": entities.TransactionPending.String()}).
		Where(sq.Lt{"created_at": createdBefore}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository list pending error: %w", err)
	}

	payments, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository list pending error: %w", err)
	}
	return payments, nil
}

func (r *Repository) query(ctx context.Context, query string, args ...any) ([]entities.Payment, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	paymentsDB := make([]PaymentDB, 0, 8)
	for rows.Next() {
		var paymentDB PaymentDB
		err := scanPayment(rows, &paymentDB)
		if err != nil {
			return nil, err
		}
		paymentsDB = append(paymentsDB, paymentDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return ToDomainList(paymentsDB), nil
}

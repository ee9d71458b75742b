package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"swiftrider/internal/entities"
	"swiftrider/internal/repository"
	"swiftrider/internal/service/user"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{
	"id", "name", "email", "phone", "role", "password_hash", "is_verified",
	"address", "vehicle_type", "license_plate", "is_available", "created_at", "updated_at",
}

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanUser(row pgx.Row, userDB *UserDB) error {
	return row.Scan(
		&userDB.ID,
		&userDB.Name,
		&userDB.Email,
		&userDB.Phone,
		&userDB.Role,
		&userDB.PasswordHash,
		&userDB.IsVerified,
		&userDB.Address,
		&userDB.VehicleType,
		&userDB.LicensePlate,
		&userDB.IsAvailable,
		&userDB.CreatedAt,
		&userDB.UpdatedAt,
	)
}

func (r *Repository) Create(ctx context.Context, create entities.UserCreate) (*entities.User, error) {
	createDB := FromDomainCreate(&create)

	query, args, err := qb.
		Insert("users").
		Columns("name", "email", "phone", "role", "password_hash", "is_verified",
			"address", "vehicle_type", "license_plate", "is_available").
		Values(
			createDB.Name,
			createDB.Email,
			createDB.Phone,
			createDB.Role,
			createDB.PasswordHash,
			createDB.IsVerified,
			createDB.Address,
			createDB.VehicleType,
			createDB.LicensePlate,
			createDB.IsAvailable,
		).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository create error: %w", err)
	}

	var userDB UserDB
	err = scanUser(r.querier.QueryRow(ctx, query, args...), &userDB)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, user.ErrEmailTaken
		}
		return nil, fmt.Errorf("unexpected user repository create error: %w", err)
	}

	return ToDomain(&userDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, "getbyid")
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.getOne(ctx, sq.Eq{"email": email}, "getbyemail")
}

func (r *Repository) getOne(ctx context.Context, where sq.Eq, op string) (*entities.User, error) {
	query, args, err := qb.Select(userColumns...).From("users").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository %s error: %w", op, err)
	}

	var userDB UserDB
	err = scanUser(r.querier.QueryRow(ctx, query, args...), &userDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository %s error: %w", op, err)
	}

	return ToDomain(&userDB), nil
}

func (r *Repository) List(ctx context.Context, filter entities.UserFilter) ([]entities.User, int64, error) {
	where := sq.And{}
	if filter.Role != nil {
		where = append(where, sq.Eq{"role": filter.Role.String()})
	}

	countQuery, countArgs, err := qb.Select("COUNT(*)").From("users").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected user repository list error: %w", err)
	}

	var total int64
	err = r.querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected user repository count error: %w", err)
	}

	page := filter.Page.Normalize()
	query, args, err := qb.
		Select(userColumns...).
		From("users").
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected user repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected user repository list error: %w", err)
	}
	defer rows.Close()

	usersDB := make([]UserDB, 0, page.Limit)
	for rows.Next() {
		var userDB UserDB
		err := scanUser(rows, &userDB)
		if err != nil {
			return nil, 0, fmt.Errorf("unexpected user repository list error: %w", err)
		}
		usersDB = append(usersDB, userDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected user repository list error: %w", err)
	}

	return ToDomainList(usersDB), total, nil
}

func (r *Repository) Update(ctx context.Context, modify entities.UserModify) (*entities.User, error) {
	if modify.ID == nil {
		return nil, user.ErrInvalidUserID
	}

	builder := qb.Update("users")

	// опциональные поля
	changed := false
	if modify.IsVerified != nil {
		builder = builder.Set("is_verified", *modify.IsVerified)
		changed = true
	}
	if modify.IsAvailable != nil {
		builder = builder.Set("is_available", *modify.IsAvailable)
		changed = true
	}
	if !changed {
		return nil, user.ErrNoFieldsToUpdate
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": *modify.ID}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	var userDB UserDB
	err = scanUser(r.querier.QueryRow(ctx, query, args...), &userDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		// is_available у не курьера режет users_rider_profile_check
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, user.ErrNotRider
		}
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	return ToDomain(&userDB), nil
}

func (r *Repository) HasActiveDelivery(ctx context.Context, riderID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM deliveries
			WHERE rider_id = $1 AND status IN ('accepted', 'in-progress')
		)
	`

	var exists bool
	err := r.querier.QueryRow(ctx, query, riderID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected user repository has active delivery error: %w", err)
	}
	return exists, nil
}

// ClaimRider снимает флаг доступности, только если он стоял.
// false - курьер уже занят или это не курьер.
func (r *Repository) ClaimRider(ctx context.Context, riderID int64) (bool, error) {
	query := `
		UPDATE users
		SET is_available = FALSE,
			updated_at = NOW()
		WHERE id = $1 AND role = 'rider' AND is_available
	`

	result, err := r.querier.Exec(ctx, query, riderID)
	if err != nil {
		return false, fmt.Errorf("unexpected user repository claim rider error: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

func (r *Repository) ReleaseRider(ctx context.Context, riderID int64) error {
	query := `
		UPDATE users
		SET is_available = TRUE,
			updated_at = NOW()
		WHERE id = $1 AND role = 'rider'
	`

	result, err := r.querier.Exec(ctx, query, riderID)
	if err != nil {
		return fmt.Errorf("unexpected user repository release rider error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func columnList() string {
	return strings.Join(userColumns, ", ")
}

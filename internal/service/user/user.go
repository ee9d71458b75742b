package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"swiftrider/internal/entities"
	"swiftrider/pkg/logger"
	"swiftrider/pkg/password"
)

type User struct {
	repository Repository
	hasher     PasswordHasher
	tokens     TokenIssuer
	notifier   Notifier
	txManager  TxManager
	log        serviceLogger
}

func New(
	repository Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	notifier Notifier,
	txManager TxManager,
	log serviceLogger,
) *User {
	return &User{
		repository: repository,
		hasher:     hasher,
		tokens:     tokens,
		notifier:   notifier,
		txManager:  txManager,
		log:        log,
	}
}

func (s *User) Register(ctx context.Context, reg entities.UserRegistration) (*entities.AuthResult, error) {
	reg.Name = strings.TrimSpace(reg.Name)
	reg.Email = normalizeEmail(reg.Email)
	reg.Phone = strings.TrimSpace(reg.Phone)

	err := validateRegistration(reg)
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	create := entities.UserCreate{
		Name:         reg.Name,
		Email:        reg.Email,
		Phone:        reg.Phone,
		Role:         reg.Role,
		PasswordHash: hash,
	}
	switch reg.Role {
	case entities.RoleCustomer:
		create.Customer = &entities.CustomerProfile{
			Address: strings.TrimSpace(reg.Customer.Address),
		}
	case entities.RoleRider:
		create.Rider = &entities.RiderProfile{
			VehicleType:  reg.Rider.VehicleType,
			LicensePlate: strings.TrimSpace(reg.Rider.LicensePlate),
			IsAvailable:  true,
		}
	}

	user, err := s.repository.Create(ctx, create)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	result, err := s.authenticate(user)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, entities.Notification{
		Kind: entities.NotificationWelcome,
		To:   user.Email,
		Data: map[string]string{
			"name": user.Name,
			"role": user.Role.String(),
		},
	})

	return result, nil
}

func (s *User) Login(ctx context.Context, email, plainPassword string) (*entities.AuthResult, error) {
	email = normalizeEmail(email)
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if plainPassword == "" {
		return nil, ErrInvalidPassword
	}

	user, err := s.repository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	err = s.hasher.Compare(user.PasswordHash, plainPassword)
	if err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("compare password: %w", err)
	}

	return s.authenticate(user)
}

func (s *User) Me(ctx context.Context, identity entities.Identity) (*entities.User, error) {
	return s.GetUser(ctx, identity.UserID)
}

func (s *User) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	if id <= 0 {
		return nil, ErrInvalidUserID
	}

	user, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *User) ListUsers(ctx context.Context, filter entities.UserFilter) (*entities.List[entities.User], error) {
	if filter.Role != nil && !filter.Role.IsValid() {
		return nil, ErrInvalidRole
	}
	filter.Page = filter.Page.Normalize()

	users, total, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return &entities.List[entities.User]{
		Items:      users,
		Pagination: entities.NewPagination(filter.Page, total),
	}, nil
}

// SetAvailability меняет доступность курьера, который делает запрос.
func (s *User) SetAvailability(ctx context.Context, identity entities.Identity, isAvailable bool) (*entities.User, error) {
	if identity.Role != entities.RoleRider {
		return nil, ErrNotRider
	}

	return s.UpdateUser(ctx, entities.UserModify{
		ID:          &identity.UserID,
		IsAvailable: &isAvailable,
	})
}

func (s *User) UpdateUser(ctx context.Context, modify entities.UserModify) (*entities.User, error) {
	if modify.ID == nil || *modify.ID <= 0 {
		return nil, ErrInvalidUserID
	}
	if modify.IsVerified == nil && modify.IsAvailable == nil {
		return nil, ErrNoFieldsToUpdate
	}

	var updated *entities.User
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if modify.IsAvailable != nil {
			current, err := s.repository.GetByID(ctx, *modify.ID)
			if err != nil {
				return fmt.Errorf("get user: %w", err)
			}
			if current.Role != entities.RoleRider {
				return ErrNotRider
			}

			// свободным нельзя стать, пока есть accepted или in-progress доставка
			if *modify.IsAvailable {
				busy, err := s.repository.HasActiveDelivery(ctx, current.ID)
				if err != nil {
					return fmt.Errorf("check active delivery: %w", err)
				}
				if busy {
					return ErrRiderBusy
				}
			}
		}

		var err error
		updated, err = s.repository.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// EnsureAdmin создает администратора при старте, если его еще нет.
func (s *User) EnsureAdmin(ctx context.Context, name, email, plainPassword string) (*entities.User, error) {
	email = normalizeEmail(email)
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if !isValidPassword(plainPassword) {
		return nil, ErrInvalidPassword
	}

	existing, err := s.repository.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Role != entities.RoleAdmin {
			return nil, ErrEmailTaken
		}
		return existing, nil
	case !errors.Is(err, ErrUserNotFound):
		return nil, fmt.Errorf("get admin by email: %w", err)
	}

	hash, err := s.hasher.Hash(plainPassword)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin, err := s.repository.Create(ctx, entities.UserCreate{
		Name:         strings.TrimSpace(name),
		Email:        email,
		Phone:        "0000000000",
		Role:         entities.RoleAdmin,
		PasswordHash: hash,
		IsVerified:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}

	s.log.Info("admin account created", logger.NewField("user_id", admin.ID))
	return admin, nil
}

func (s *User) authenticate(user *entities.User) (*entities.AuthResult, error) {
	token, err := s.tokens.Issue(entities.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &entities.AuthResult{
		Token: token,
		User:  user,
	}, nil
}

// notify не возвращает ошибку: письмо не должно ломать основную операцию.
func (s *User) notify(ctx context.Context, notification entities.Notification) {
	notification.CreatedAt = time.Now().UTC()

	err := s.notifier.Publish(ctx, notification)
	if err != nil {
		s.log.Error("publish notification",
			logger.NewField("kind", notification.Kind.String()),
			logger.NewField("error", err),
		)
	}
}

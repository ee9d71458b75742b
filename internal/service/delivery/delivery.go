package delivery

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"swiftrider/internal/entities"
	"swiftrider/internal/service/access"
	"swiftrider/pkg/logger"
)

type Delivery struct {
	repository Repository
	users      UserRepository
	distances  DistanceCalculator
	notifier   Notifier
	gate       Authorizer
	txManager  TxManager
	log        serviceLogger
}

// New собирает сервис доставок. distances может быть nil,
// тогда расстояние не считается.
func New(
	repository Repository,
	users UserRepository,
	distances DistanceCalculator,
	notifier Notifier,
	gate Authorizer,
	txManager TxManager,
	log serviceLogger,
) *Delivery {
	return &Delivery{
		repository: repository,
		users:      users,
		distances:  distances,
		notifier:   notifier,
		gate:       gate,
		txManager:  txManager,
		log:        log,
	}
}

func (s *Delivery) Create(ctx context.Context, identity entities.Identity, create entities.DeliveryCreate) (*entities.Delivery, error) {
	if identity.Role != entities.RoleCustomer {
		return nil, ErrCustomerOnly
	}

	create.CustomerID = identity.UserID
	create.PickupAddress = strings.TrimSpace(create.PickupAddress)
	create.DeliveryAddress = strings.TrimSpace(create.DeliveryAddress)
	create.Package.Description = strings.TrimSpace(create.Package.Description)

	err := validateCreate(create)
	if err != nil {
		return nil, err
	}

	create.DistanceKm = s.distance(ctx, create.PickupAddress, create.DeliveryAddress)

	delivery, err := s.repository.Create(ctx, create)
	if err != nil {
		return nil, fmt.Errorf("create delivery: %w", err)
	}

	return delivery, nil
}

func (s *Delivery) Get(ctx context.Context, identity entities.Identity, id int64) (*entities.Delivery, error) {
	if !isValidDeliveryID(id) {
		return nil, ErrInvalidDeliveryID
	}

	delivery, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}

	err = s.gate.Authorize(identity, access.DeliveryResource{Delivery: delivery}, access.ActionRead)
	if err != nil {
		return nil, err
	}

	return delivery, nil
}

func (s *Delivery) ListForCustomer(ctx context.Context, identity entities.Identity, page entities.Page) (*entities.List[entities.Delivery], error) {
	return s.list(ctx, entities.DeliveryFilter{CustomerID: &identity.UserID, Page: page})
}

func (s *Delivery) ListForRider(ctx context.Context, identity entities.Identity, page entities.Page) (*entities.List[entities.Delivery], error) {
	return s.list(ctx, entities.DeliveryFilter{RiderID: &identity.UserID, Page: page})
}

// ListAvailable - pending доставки, новые первыми.
func (s *Delivery) ListAvailable(ctx context.Context, page entities.Page) (*entities.List[entities.Delivery], error) {
	status := entities.DeliveryPending
	return s.list(ctx, entities.DeliveryFilter{Status: &status, Page: page})
}

func (s *Delivery) List(ctx context.Context, filter entities.DeliveryFilter) (*entities.List[entities.Delivery], error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return s.list(ctx, filter)
}

func (s *Delivery) list(ctx context.Context, filter entities.DeliveryFilter) (*entities.List[entities.Delivery], error) {
	filter.Page = filter.Page.Normalize()

	deliveries, total, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}

	return &entities.List[entities.Delivery]{
		Items:      deliveries,
		Pagination: entities.NewPagination(filter.Page, total),
	}, nil
}

// Accept назначает доставку курьеру. Из нескольких одновременных Accept
// одной доставки успешен ровно один: и занятие курьера, и смена статуса
// выполняются условными UPDATE в одной транзакции.
func (s *Delivery) Accept(ctx context.Context, identity entities.Identity, id int64) (*entities.Delivery, error) {
	if identity.Role != entities.RoleRider {
		return nil, ErrRiderOnly
	}
	if !isValidDeliveryID(id) {
		return nil, ErrInvalidDeliveryID
	}

	current, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	if current.Status != entities.DeliveryPending {
		return nil, ErrNotPending
	}

	riderID := identity.UserID
	var accepted *entities.Delivery
	err = s.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		claimed, err := s.users.ClaimRider(ctx, riderID)
		if err != nil {
			return fmt.Errorf("claim rider: %w", err)
		}
		if !claimed {
			return ErrRiderUnavailable
		}

		accepted, err = s.repository.Transition(ctx, entities.DeliveryTransition{
			ID:      id,
			From:    entities.DeliveryPending,
			To:      entities.DeliveryAccepted,
			RiderID: &riderID,
		})
		if err != nil {
			if errors.Is(err, ErrStatusChanged) {
				return ErrNotPending
			}
			return fmt.Errorf("accept delivery: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	StatusTransitionsTotal.WithLabelValues(entities.DeliveryPending.String(), entities.DeliveryAccepted.String()).Inc()
	s.notifyCustomer(ctx, accepted)

	return accepted, nil
}

func (s *Delivery) UpdateStatus(ctx context.Context, identity entities.Identity, id int64, status entities.DeliveryStatus) (*entities.Delivery, error) {
	if !isValidDeliveryID(id) {
		return nil, ErrInvalidDeliveryID
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	current, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}

	// клиент владеет доставкой, но статус не меняет
	if identity.Role == entities.RoleCustomer {
		return nil, ErrStatusForbidden
	}
	err = s.gate.Authorize(identity, access.DeliveryResource{Delivery: current}, access.ActionWrite)
	if err != nil {
		return nil, ErrStatusForbidden
	}

	if status == entities.DeliveryAccepted || !canTransition(current.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, status)
	}

	now := time.Now().UTC()
	transition := entities.DeliveryTransition{
		ID:   id,
		From: current.Status,
		To:   status,
	}
	switch status {
	case entities.DeliveryInProgress:
		transition.PickupTime = &now
	case entities.DeliveryCompleted:
		transition.DeliveryTime = &now
	}

	var updated *entities.Delivery
	err = s.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.repository.Transition(ctx, transition)
		if err != nil {
			return fmt.Errorf("update delivery status: %w", err)
		}

		if status.IsTerminal() && current.RiderID != nil {
			err = s.users.ReleaseRider(ctx, *current.RiderID)
			if err != nil {
				return fmt.Errorf("release rider: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	StatusTransitionsTotal.WithLabelValues(current.Status.String(), status.String()).Inc()
	s.notifyCustomer(ctx, updated)

	return updated, nil
}

// AdminUpdate сначала меняет статус через UpdateStatus, чтобы сработали
// все побочные эффекты перехода, потом фактическую стоимость.
func (s *Delivery) AdminUpdate(ctx context.Context, identity entities.Identity, id int64, update entities.DeliveryAdminUpdate) (*entities.Delivery, error) {
	if !identity.IsAdmin() {
		return nil, ErrAdminOnly
	}
	if !isValidDeliveryID(id) {
		return nil, ErrInvalidDeliveryID
	}
	if update.ActualCost == nil && update.Status == nil {
		return nil, ErrNoFieldsToUpdate
	}
	if update.ActualCost != nil && !isPositive(*update.ActualCost) {
		return nil, ErrInvalidActualCost
	}

	var (
		delivery *entities.Delivery
		err      error
	)
	if update.Status != nil {
		delivery, err = s.UpdateStatus(ctx, identity, id, *update.Status)
		if err != nil {
			return nil, err
		}
	}

	if update.ActualCost != nil {
		delivery, err = s.repository.UpdateActualCost(ctx, id, *update.ActualCost)
		if err != nil {
			return nil, fmt.Errorf("update actual cost: %w", err)
		}
	}

	return delivery, nil
}

func (s *Delivery) distance(ctx context.Context, origin, destination string) *float64 {
	if s.distances == nil {
		return nil
	}

	km, err := s.distances.Distance(ctx, origin, destination)
	if err != nil {
		s.log.Warn("distance calculation failed", logger.NewField("error", err))
		return nil
	}
	return &km
}

func (s *Delivery) notifyCustomer(ctx context.Context, delivery *entities.Delivery) {
	kind, ok := entities.NotificationKindForStatus(delivery.Status)
	if !ok {
		return
	}

	log := s.log.With(
		logger.NewField("delivery_id", delivery.ID),
		logger.NewField("kind", kind.String()),
	)

	customer, err := s.users.GetByID(ctx, delivery.CustomerID)
	if err != nil {
		log.Warn("notification skipped: customer lookup failed", logger.NewField("error", err))
		return
	}

	data := map[string]string{
		"customerName": customer.Name,
		"deliveryId":   strconv.FormatInt(delivery.ID, 10),
	}
	if delivery.Status == entities.DeliveryAccepted && delivery.RiderID != nil {
		rider, err := s.users.GetByID(ctx, *delivery.RiderID)
		if err != nil {
			log.Warn("rider lookup failed", logger.NewField("error", err))
		} else {
			data["riderName"] = rider.Name
			data["riderPhone"] = rider.Phone
		}
	}

	err = s.notifier.Publish(ctx, entities.Notification{
		Kind:      kind,
		To:        customer.Email,
		Data:      data,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		log.Error("publish notification", logger.NewField("error", err))
	}
}

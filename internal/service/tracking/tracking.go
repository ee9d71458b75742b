package tracking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"swiftrider/internal/entities"
	"swiftrider/internal/service/access"
	"swiftrider/pkg/logger"
)

type Tracking struct {
	repository Repository
	deliveries DeliveryRepository
	cache      LocationCache
	gate       Authorizer
	log        serviceLogger
}

func New(
	repository Repository,
	deliveries DeliveryRepository,
	cache LocationCache,
	gate Authorizer,
	log serviceLogger,
) *Tracking {
	return &Tracking{
		repository: repository,
		deliveries: deliveries,
		cache:      cache,
		gate:       gate,
		log:        log,
	}
}

// RecordLocation добавляет точку маршрута. Статус берется из доставки
// на момент записи, записи не изменяются.
func (s *Tracking) RecordLocation(ctx context.Context, identity entities.Identity, create entities.TrackingCreate) (*entities.TrackingEntry, error) {
	if identity.Role != entities.RoleRider {
		return nil, ErrRiderOnly
	}
	if create.DeliveryID <= 0 {
		return nil, ErrInvalidDeliveryID
	}
	err := validateLocation(create.Location)
	if err != nil {
		return nil, err
	}

	delivery, err := s.deliveries.GetByID(ctx, create.DeliveryID)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	if !delivery.IsAssignedTo(identity.UserID) {
		return nil, ErrNotAssigned
	}
	if !delivery.Status.IsActive() {
		return nil, ErrDeliveryNotActive
	}

	create.RiderID = identity.UserID
	create.Status = delivery.Status
	if create.Note != nil {
		note := strings.TrimSpace(*create.Note)
		create.Note = &note
		if note == "" {
			create.Note = nil
		}
	}

	entry, err := s.repository.Create(ctx, create)
	if err != nil {
		return nil, fmt.Errorf("create tracking entry: %w", err)
	}

	err = s.cache.Set(ctx, *entry)
	if err != nil {
		s.log.Warn("cache current location",
			logger.NewField("delivery_id", entry.DeliveryID),
			logger.NewField("error", err),
		)
	}

	return entry, nil
}

// History - точки маршрута, новые первыми.
func (s *Tracking) History(ctx context.Context, identity entities.Identity, deliveryID int64) ([]entities.TrackingEntry, error) {
	err := s.authorizeRead(ctx, identity, deliveryID)
	if err != nil {
		return nil, err
	}

	entries, err := s.repository.ListByDelivery(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("list tracking entries: %w", err)
	}
	return entries, nil
}

// Current отдает последнюю точку из кеша, при промахе читает из базы.
func (s *Tracking) Current(ctx context.Context, identity entities.Identity, deliveryID int64) (*entities.TrackingEntry, error) {
	err := s.authorizeRead(ctx, identity, deliveryID)
	if err != nil {
		return nil, err
	}

	entry, err := s.cache.Get(ctx, deliveryID)
	if err == nil {
		return entry, nil
	}
	if !errors.Is(err, ErrLocationNotCached) {
		s.log.Warn("read cached location", logger.NewField("delivery_id", deliveryID), logger.NewField("error", err))
	}

	entry, err = s.repository.Latest(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("get latest tracking entry: %w", err)
	}
	return entry, nil
}

func (s *Tracking) authorizeRead(ctx context.Context, identity entities.Identity, deliveryID int64) error {
	if deliveryID <= 0 {
		return ErrInvalidDeliveryID
	}

	delivery, err := s.deliveries.GetByID(ctx, deliveryID)
	if err != nil {
		return fmt.Errorf("get delivery: %w", err)
	}

	return s.gate.Authorize(identity, access.DeliveryResource{Delivery: delivery}, access.ActionRead)
}

package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"swiftrider/internal/entities"
	"swiftrider/internal/service/access"
	"swiftrider/pkg/logger"
)

const referencePrefix = "SWR-"

type Payment struct {
	repository Repository
	deliveries DeliveryRepository
	users      UserRepository
	gateway    Gateway
	notifier   Notifier
	gate       Authorizer
	txManager  TxManager
	log        serviceLogger
}

func New(
	repository Repository,
	deliveries DeliveryRepository,
	users UserRepository,
	gateway Gateway,
	notifier Notifier,
	gate Authorizer,
	txManager TxManager,
	log serviceLogger,
) *Payment {
	return &Payment{
		repository: repository,
		deliveries: deliveries,
		users:      users,
		gateway:    gateway,
		notifier:   notifier,
		gate:       gate,
		txManager:  txManager,
		log:        log,
	}
}

// Initialize открывает платеж в шлюзе и только после успешного ответа
// сохраняет pending запись.
func (s *Payment) Initialize(ctx context.Context, identity entities.Identity, input entities.PaymentInitialize) (*entities.PaymentInitialization, error) {
	if identity.Role != entities.RoleCustomer {
		return nil, ErrCustomerOnly
	}
	if input.DeliveryID <= 0 {
		return nil, ErrInvalidDeliveryID
	}
	if !isValidAmount(input.Amount) {
		return nil, ErrInvalidAmount
	}
	if input.Method == "" {
		input.Method = entities.DefaultPaymentMethod
	}
	if !input.Method.IsValid() {
		return nil, ErrInvalidMethod
	}

	delivery, err := s.deliveries.GetByID(ctx, input.DeliveryID)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}

	err = s.gate.Authorize(identity, access.DeliveryResource{Delivery: delivery}, access.ActionWrite)
	if err != nil {
		return nil, err
	}
	if delivery.PaymentStatus == entities.PaymentStatusPaid {
		return nil, ErrAlreadyPaid
	}
	if delivery.Status == entities.DeliveryCancelled {
		return nil, ErrDeliveryCanceled
	}

	reference := referencePrefix + uuid.NewString()
	initialization, err := s.gateway.Initialize(ctx, entities.GatewayCharge{
		Email:       identity.Email,
		AmountMinor: toMinorUnits(input.Amount),
		Reference:   reference,
		Metadata: map[string]any{
			"deliveryId":    delivery.ID,
			"customerId":    identity.UserID,
			"paymentMethod": input.Method.String(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("initialize gateway transaction: %w", err)
	}

	payment, err := s.repository.Create(ctx, entities.PaymentCreate{
		CustomerID:           identity.UserID,
		DeliveryID:           delivery.ID,
		Amount:               input.Amount,
		Method:               input.Method,
		Gateway:              entities.PaymentGatewayPaystack,
		TransactionReference: reference,
		GatewayResponse:      initialization.Raw,
	})
	if err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	return &entities.PaymentInitialization{
		Payment:          payment,
		AuthorizationURL: initialization.AuthorizationURL,
		AccessCode:       initialization.AccessCode,
	}, nil
}

// Verify сверяет платеж со шлюзом. Уже завершенный платеж возвращается как есть.
func (s *Payment) Verify(ctx context.Context, identity entities.Identity, reference string) (*entities.Payment, error) {
	if !isValidReference(reference) {
		return nil, ErrInvalidReference
	}

	payment, err := s.repository.GetByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	// сверяет только плательщик, админ тоже получает Forbidden
	if payment.CustomerID != identity.UserID {
		return nil, ErrNotPayer
	}

	if payment.Status.IsTerminal() {
		return payment, nil
	}

	verification, err := s.gateway.Verify(ctx, payment.TransactionReference)
	if err != nil {
		return nil, fmt.Errorf("verify gateway transaction: %w", err)
	}

	return s.settle(ctx, payment, verification)
}

func (s *Payment) Get(ctx context.Context, identity entities.Identity, id int64) (*entities.Payment, error) {
	if id <= 0 {
		return nil, ErrInvalidPaymentID
	}

	payment, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	err = s.gate.Authorize(identity, access.PaymentResource{Payment: payment}, access.ActionRead)
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *Payment) History(ctx context.Context, identity entities.Identity, page entities.Page) (*entities.List[entities.Payment], error) {
	return s.list(ctx, entities.PaymentFilter{CustomerID: &identity.UserID, Page: page})
}

func (s *Payment) List(ctx context.Context, filter entities.PaymentFilter) (*entities.List[entities.Payment], error) {
	if filter.Status != nil {
		switch *filter.Status {
		case entities.TransactionPending, entities.TransactionSuccess, entities.TransactionFailed:
		default:
			return nil, ErrInvalidStatus
		}
	}
	return s.list(ctx, filter)
}

func (s *Payment) list(ctx context.Context, filter entities.PaymentFilter) (*entities.List[entities.Payment], error) {
	filter.Page = filter.Page.Normalize()

	payments, total, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	return &entities.List[entities.Payment]{
		Items:      payments,
		Pagination: entities.NewPagination(filter.Page, total),
	}, nil
}

// Reconcile досверяет зависшие pending платежи, созданные раньше olderThan.
// Платежи, которые шлюз еще обрабатывает, пропускаются до следующего запуска.
func (s *Payment) Reconcile(ctx context.Context, olderThan time.Duration, limit int) (int, error) {
	pending, err := s.repository.ListPending(ctx, time.Now().UTC().Add(-olderThan), limit)
	if err != nil {
		return 0, fmt.Errorf("list pending payments: %w", err)
	}

	settled := 0
	for i := range pending {
		if ctx.Err() != nil {
			return settled, ctx.Err()
		}

		payment := &pending[i]
		log := s.log.With(logger.NewField("reference", payment.TransactionReference))

		verification, err := s.gateway.Verify(ctx, payment.TransactionReference)
		if err != nil {
			log.Warn("reconcile: gateway verify failed", logger.NewField("error", err))
			continue
		}
		if verification.InFlight() {
			continue
		}

		_, err = s.settle(ctx, payment, verification)
		if err != nil {
			log.Error("reconcile: settle payment failed", logger.NewField("error", err))
			continue
		}
		settled++
	}

	return settled, nil
}

// settle пишет итог платежа и отметку об оплате доставки в одной транзакции.
func (s *Payment) settle(ctx context.Context, payment *entities.Payment, verification *entities.GatewayVerification) (*entities.Payment, error) {
	status := entities.TransactionFailed
	if verification.Succeeded() {
		status = entities.TransactionSuccess
	}

	var settled *entities.Payment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		settled, err = s.repository.Complete(ctx, payment.ID, status, verification.Raw)
		if err != nil {
			return fmt.Errorf("complete payment: %w", err)
		}

		if status == entities.TransactionSuccess {
			err = s.deliveries.MarkPaid(ctx, payment.DeliveryID, payment.Amount)
			if err != nil {
				return fmt.Errorf("mark delivery paid: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		// параллельная сверка успела раньше, отдаем сохраненный результат
		if errors.Is(err, ErrAlreadySettled) {
			return s.repository.GetByID(ctx, payment.ID)
		}
		return nil, err
	}

	s.notify(ctx, settled)
	return settled, nil
}

func (s *Payment) notify(ctx context.Context, payment *entities.Payment) {
	kind := entities.NotificationPaymentFailed
	if payment.Status == entities.TransactionSuccess {
		kind = entities.NotificationPaymentSuccess
	}

	log := s.log.With(
		logger.NewField("payment_id", payment.ID),
		logger.NewField("kind", kind.String()),
	)

	customer, err := s.users.GetByID(ctx, payment.CustomerID)
	if err != nil {
		log.Warn("notification skipped: customer lookup failed", logger.NewField("error", err))
		return
	}

	err = s.notifier.Publish(ctx, entities.Notification{
		Kind: kind,
		To:   customer.Email,
		Data: map[string]string{
			"customerName":         customer.Name,
			"amount":               strconv.FormatFloat(payment.Amount, 'f', 2, 64),
			"deliveryId":           strconv.FormatInt(payment.DeliveryID, 10),
			"transactionReference": payment.TransactionReference,
		},
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		log.Error("publish notification", logger.NewField("error", err))
	}
}

// toMinorUnits переводит сумму в копейки/кобо, как ожидает шлюз.
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

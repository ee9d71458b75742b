package payment

import (
	"fmt"

	"swiftrider/internal/apperr"
)

var (
	ErrInvalidPaymentID  = fmt.Errorf("%w: invalid payment id", apperr.ErrValidation)
	ErrInvalidDeliveryID = fmt.Errorf("%w: invalid delivery id", apperr.ErrValidation)
	ErrInvalidAmount     = fmt.Errorf("%w: amount must be greater than 0", apperr.ErrValidation)
	ErrInvalidMethod     = fmt.Errorf("%w: payment method must be card or bank_transfer", apperr.ErrValidation)
	ErrInvalidReference  = fmt.Errorf("%w: transaction reference is required", apperr.ErrValidation)
	ErrInvalidStatus     = fmt.Errorf("%w: unknown payment status", apperr.ErrValidation)

	ErrCustomerOnly = fmt.Errorf("only customers can pay for deliveries: %w", apperr.ErrForbidden)
	ErrNotPayer     = fmt.Errorf("only the paying customer can verify a payment: %w", apperr.ErrForbidden)

	ErrPaymentNotFound  = fmt.Errorf("payment %w", apperr.ErrNotFound)
	ErrAlreadyPaid      = fmt.Errorf("delivery is already paid for: %w", apperr.ErrConflict)
	ErrDeliveryCanceled = fmt.Errorf("delivery is cancelled: %w", apperr.ErrConflict)
	ErrDuplicateRef     = fmt.Errorf("transaction reference already exists: %w", apperr.ErrConflict)
	ErrAlreadySettled   = fmt.Errorf("payment is already settled: %w", apperr.ErrConflict)
)

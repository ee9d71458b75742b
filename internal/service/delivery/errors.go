package delivery

import (
	"fmt"

	"swiftrider/internal/apperr"
)

var (
	ErrInvalidDeliveryID      = fmt.Errorf("%w: invalid delivery id", apperr.ErrValidation)
	ErrMissingPickupAddress   = fmt.Errorf("%w: pickup address is required", apperr.ErrValidation)
	ErrMissingDeliveryAddress = fmt.Errorf("%w: delivery address is required", apperr.ErrValidation)
	ErrMissingDescription     = fmt.Errorf("%w: package description is required", apperr.ErrValidation)
	ErrInvalidWeight          = fmt.Errorf("%w: package weight must be greater than 0", apperr.ErrValidation)
	ErrInvalidDimensions      = fmt.Errorf("%w: package dimensions must be greater than 0", apperr.ErrValidation)
	ErrInvalidEstimatedCost   = fmt.Errorf("%w: estimated cost must be greater than 0", apperr.ErrValidation)
	ErrInvalidActualCost      = fmt.Errorf("%w: actual cost must be greater than 0", apperr.ErrValidation)
	ErrInvalidStatus          = fmt.Errorf("%w: unknown delivery status", apperr.ErrValidation)
	ErrNoFieldsToUpdate       = fmt.Errorf("%w: no fields to update", apperr.ErrValidation)

	ErrCustomerOnly    = fmt.Errorf("only customers can create deliveries: %w", apperr.ErrForbidden)
	ErrRiderOnly       = fmt.Errorf("only riders can accept deliveries: %w", apperr.ErrForbidden)
	ErrAdminOnly       = fmt.Errorf("admin access required: %w", apperr.ErrForbidden)
	ErrStatusForbidden = fmt.Errorf("only the assigned rider or an admin can update the status: %w", apperr.ErrForbidden)

	ErrDeliveryNotFound  = fmt.Errorf("delivery %w", apperr.ErrNotFound)
	ErrNotPending        = fmt.Errorf("delivery is no longer pending: %w", apperr.ErrConflict)
	ErrStatusChanged     = fmt.Errorf("delivery status changed concurrently: %w", apperr.ErrConflict)
	ErrRiderUnavailable  = fmt.Errorf("rider is not available: %w", apperr.ErrPreconditionFailed)
	ErrInvalidTransition = fmt.Errorf("cannot change delivery status: %w", apperr.ErrInvalidTransition)
)

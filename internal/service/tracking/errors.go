package tracking

import (
	"errors"
	"fmt"

	"swiftrider/internal/apperr"
)

var (
	ErrInvalidDeliveryID = fmt.Errorf("%w: invalid delivery id", apperr.ErrValidation)
	ErrInvalidLatitude   = fmt.Errorf("%w: latitude must be between -90 and 90", apperr.ErrValidation)
	ErrInvalidLongitude  = fmt.Errorf("%w: longitude must be between -180 and 180", apperr.ErrValidation)

	ErrRiderOnly   = fmt.Errorf("only riders can record locations: %w", apperr.ErrForbidden)
	ErrNotAssigned = fmt.Errorf("not authorized to update this delivery: %w", apperr.ErrForbidden)

	ErrDeliveryNotActive = fmt.Errorf("delivery is not in progress: %w", apperr.ErrConflict)
	ErrNoTracking        = fmt.Errorf("tracking data %w", apperr.ErrNotFound)

	ErrLocationNotCached = errors.New("location not cached")
)

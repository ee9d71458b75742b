package analytics

import (
	"fmt"

	"swiftrider/internal/apperr"
)

var (
	ErrInvalidStartDate = fmt.Errorf("%w: startDate must be RFC3339 or YYYY-MM-DD", apperr.ErrValidation)
	ErrInvalidEndDate   = fmt.Errorf("%w: endDate must be RFC3339 or YYYY-MM-DD", apperr.ErrValidation)
	ErrInvalidWindow    = fmt.Errorf("%w: startDate must not be after endDate", apperr.ErrValidation)
)

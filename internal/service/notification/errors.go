package notification

import (
	"fmt"

	"swiftrider/internal/apperr"
)

var (
	ErrUnknownKind      = fmt.Errorf("%w: unknown notification kind", apperr.ErrValidation)
	ErrMissingRecipient = fmt.Errorf("%w: notification recipient is required", apperr.ErrValidation)
	ErrRender           = fmt.Errorf("%w: failed to render notification", apperr.ErrValidation)
)

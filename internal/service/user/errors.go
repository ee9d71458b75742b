package user

import (
	"fmt"

	"swiftrider/internal/apperr"
)

var (
	ErrInvalidUserID       = fmt.Errorf("%w: invalid user id", apperr.ErrValidation)
	ErrInvalidName         = fmt.Errorf("%w: name must be between 2 and 50 characters", apperr.ErrValidation)
	ErrInvalidEmail        = fmt.Errorf("%w: invalid email", apperr.ErrValidation)
	ErrInvalidPassword     = fmt.Errorf("%w: password must be at least 6 characters", apperr.ErrValidation)
	ErrInvalidPhone        = fmt.Errorf("%w: phone must be at least 10 characters", apperr.ErrValidation)
	ErrInvalidRole         = fmt.Errorf("%w: role must be customer or rider", apperr.ErrValidation)
	ErrMissingAddress      = fmt.Errorf("%w: address is required for customers", apperr.ErrValidation)
	ErrInvalidVehicleType  = fmt.Errorf("%w: vehicle type must be one of Motorcycle, Bicycle, Car, Van, Truck", apperr.ErrValidation)
	ErrMissingLicensePlate = fmt.Errorf("%w: license plate is required for riders", apperr.ErrValidation)
	ErrNoFieldsToUpdate    = fmt.Errorf("%w: no fields to update", apperr.ErrValidation)
	ErrNotRider            = fmt.Errorf("%w: availability applies to riders only", apperr.ErrValidation)

	ErrUserNotFound       = fmt.Errorf("user %w", apperr.ErrNotFound)
	ErrEmailTaken         = fmt.Errorf("email already registered: %w", apperr.ErrConflict)
	ErrRiderBusy          = fmt.Errorf("rider has an active delivery: %w", apperr.ErrConflict)
	ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", apperr.ErrUnauthenticated)
)

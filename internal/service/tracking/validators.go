package tracking

import (
	"github.com/go-playground/validator/v10"
	"swiftrider/internal/entities"
)

var validate = validator.New()

func validateLocation(location entities.Location) error {
	if validate.Var(location.Latitude, "gte=-90,lte=90") != nil {
		return ErrInvalidLatitude
	}
	if validate.Var(location.Longitude, "gte=-180,lte=180") != nil {
		return ErrInvalidLongitude
	}
	return nil
}

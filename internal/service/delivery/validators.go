package delivery

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"swiftrider/internal/entities"
)

var validate = validator.New()

func isPositive(value float64) bool {
	return validate.Var(value, "gt=0") == nil
}

func isValidDeliveryID(id int64) bool {
	return id > 0
}

func validateCreate(create entities.DeliveryCreate) error {
	if strings.TrimSpace(create.PickupAddress) == "" {
		return ErrMissingPickupAddress
	}
	if strings.TrimSpace(create.DeliveryAddress) == "" {
		return ErrMissingDeliveryAddress
	}
	if strings.TrimSpace(create.Package.Description) == "" {
		return ErrMissingDescription
	}
	if !isPositive(create.Package.WeightKg) {
		return ErrInvalidWeight
	}
	if dims := create.Package.Dimensions; dims != nil {
		if !isPositive(dims.Length) || !isPositive(dims.Width) || !isPositive(dims.Height) {
			return ErrInvalidDimensions
		}
	}
	if !isPositive(create.EstimatedCost) {
		return ErrInvalidEstimatedCost
	}
	return nil
}

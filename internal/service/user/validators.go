package user

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"swiftrider/internal/entities"
)

var validate = validator.New()

func isValidName(name string) bool {
	return validate.Var(name, "min=2,max=50") == nil
}

func isValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

func isValidPassword(password string) bool {
	return validate.Var(password, "min=6") == nil
}

func isValidPhone(phone string) bool {
	return validate.Var(phone, "min=10") == nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateRegistration(reg entities.UserRegistration) error {
	if !isValidName(reg.Name) {
		return ErrInvalidName
	}
	if !isValidEmail(reg.Email) {
		return ErrInvalidEmail
	}
	if !isValidPassword(reg.Password) {
		return ErrInvalidPassword
	}
	if !isValidPhone(reg.Phone) {
		return ErrInvalidPhone
	}

	switch reg.Role {
	case entities.RoleCustomer:
		if reg.Customer == nil || strings.TrimSpace(reg.Customer.Address) == "" {
			return ErrMissingAddress
		}
	case entities.RoleRider:
		if reg.Rider == nil || !reg.Rider.VehicleType.IsValid() {
			return ErrInvalidVehicleType
		}
		if strings.TrimSpace(reg.Rider.LicensePlate) == "" {
			return ErrMissingLicensePlate
		}
	default:
		// админ заводится только через EnsureAdmin
		return ErrInvalidRole
	}

	return nil
}

package payment

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func isValidAmount(amount float64) bool {
	return validate.Var(amount, "gt=0") == nil
}

func isValidReference(reference string) bool {
	return strings.TrimSpace(reference) != ""
}

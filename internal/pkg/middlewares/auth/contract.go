//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import "swiftrider/internal/entities"

type TokenParser interface {
	Parse(raw string) (entities.Identity, error)
}

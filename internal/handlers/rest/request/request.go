// Package request разбирает тело, параметры пути и пагинацию запроса.
package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"swiftrider/internal/apperr"
	"swiftrider/internal/entities"
	"swiftrider/internal/pkg/identity"
)

const maxBodyBytes = 1 << 20

var ErrMissingIdentity = fmt.Errorf("%w: missing identity", apperr.ErrUnauthenticated)

func DecodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is required", apperr.ErrValidation)
		}
		return fmt.Errorf("%w: malformed JSON body: %v", apperr.ErrValidation, err)
	}
	return nil
}

// PathID - положительный int64 из параметра пути.
func PathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", apperr.ErrValidation, name, raw)
	}
	return id, nil
}

// Page читает ?page=&limit=, пустые значения заменяются значениями по умолчанию.
func Page(r *http.Request) (entities.Page, error) {
	query := r.URL.Query()

	number, err := intParam(query.Get("page"), "page")
	if err != nil {
		return entities.Page{}, err
	}
	limit, err := intParam(query.Get("limit"), "limit")
	if err != nil {
		return entities.Page{}, err
	}

	return entities.Page{Number: number, Limit: limit}.Normalize(), nil
}

func intParam(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q", apperr.ErrValidation, name, raw)
	}
	return v, nil
}

func Identity(r *http.Request) (entities.Identity, error) {
	id, ok := identity.FromContext(r.Context())
	if !ok {
		return entities.Identity{}, ErrMissingIdentity
	}
	return id, nil
}

package identity

import (
	"context"

	"swiftrider/internal/entities"
)

type ctxKey struct{}

func WithIdentity(ctx context.Context, id entities.Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func FromContext(ctx context.Context) (entities.Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(entities.Identity)
	return id, ok
}

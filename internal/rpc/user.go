package rpc

import (
	"context"

	"viewify/internal/model"
)

// ProfileStore is the slice of the storage layer the user router uses.
type ProfileStore interface {
	FindProfileByID(ctx context.Context, id string) (*model.UserProfile, error)
}

// UserRouter exposes the signed-in-user procedure.
func UserRouter(store ProfileStore) *Router {
	return NewRouter("user",
		// me returns null, not an error, for anonymous requests. A context
		// that names a user with no matching row is left to the storage
		// layer's not-found error.
		NewQuery("me", func(ctx context.Context, rctx Ctx, _ Empty) (*model.UserProfile, error) {
			if !rctx.Authenticated() {
				return nil, nil
			}
			return store.FindProfileByID(ctx, rctx.UserID)
		}),
	)
}

// Package rpc implements the dashboard's typed procedure layer: a
// per-request context derived from the inbound headers, schema-validated
// query/mutation procedures, and a merged registry addressing them by name.
package rpc

import (
	"context"
	"net/http"
)

// Session is the minimal projection the context builder consumes from the
// auth service.
type Session struct {
	UserID string
}

// SessionResolver resolves a session from raw request headers. A nil
// session (with nil error) means no one is signed in.
type SessionResolver interface {
	GetSession(ctx context.Context, headers http.Header) (*Session, error)
}

// Ctx is the per-request value every procedure body receives. An empty
// UserID is the explicit unauthenticated marker.
type Ctx struct {
	UserID string
}

// Authenticated reports whether the request carries a signed-in user.
func (c Ctx) Authenticated() bool {
	return c.UserID != ""
}

// ContextBuilder derives a Ctx from inbound request headers, once per
// request. Resolution is delegated entirely to the session resolver; there
// is no caching or expiry handling here.
type ContextBuilder struct {
	sessions SessionResolver
}

// NewContextBuilder creates a context builder over the given resolver.
func NewContextBuilder(sessions SessionResolver) *ContextBuilder {
	return &ContextBuilder{sessions: sessions}
}

// Build produces the request context. A resolver failure is not handled
// here; it propagates to the caller untouched.
func (b *ContextBuilder) Build(ctx context.Context, headers http.Header) (Ctx, error) {
	session, err := b.sessions.GetSession(ctx, headers)
	if err != nil {
		return Ctx{}, err
	}
	if session == nil {
		return Ctx{}, nil
	}
	return Ctx{UserID: session.UserID}, nil
}

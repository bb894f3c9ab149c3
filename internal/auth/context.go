package auth

import (
	"context"

	"donorlink-web/internal/session"
)

type contextKey string

const (
	identityKey contextKey = "identity"
	stateKey    contextKey = "session_state"
)

// Identity is the caller proven by a valid access token.
type Identity struct {
	UserID int
	Email  string
	Role   session.Role
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFrom returns the caller identity, if the request carried a valid token.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// GetUserIDFromContext returns 0 for anonymous callers.
func GetUserIDFromContext(ctx context.Context) (int, bool) {
	id, ok := IdentityFrom(ctx)
	if !ok {
		return 0, false
	}
	return id.UserID, true
}

func WithState(ctx context.Context, st session.State) context.Context {
	return context.WithValue(ctx, stateKey, st)
}

// StateFrom returns the session state derived for this request, logged out
// when none was set.
func StateFrom(ctx context.Context) session.State {
	st, _ := ctx.Value(stateKey).(session.State)
	return st
}

package session

import (
	"context"
	"fmt"

	"donorlink-web/internal/metrics"

	"go.uber.org/zap"
)

// Gate derives the session State from one client's Store.
//
// A Gate holds no State of its own; callers keep the value returned by
// Initialize, Login and Logout.
type Gate struct {
	store    Store
	log      *zap.Logger
	counters *metrics.Session
}

// NewGate returns a Gate over store. log and counters may be nil.
func NewGate(store Store, log *zap.Logger, counters *metrics.Session) *Gate {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gate{store: store, log: log, counters: counters}
}

// Initialize reads the persisted user. A missing or empty record yields a
// logged-out State. A corrupt record is reported and also yields a
// logged-out State; the record itself is left in storage.
func (g *Gate) Initialize(ctx context.Context) State {
	g.counters.Load()

	raw, found, err := g.store.Load(ctx, RecordKey)
	if err != nil {
		g.log.Error("failed to read session record", zap.String("key", RecordKey), zap.Error(err))
		return LoggedOut()
	}
	if !found || raw == "" {
		return LoggedOut()
	}

	u, err := Decode(raw)
	if err != nil {
		g.counters.Corrupt()
		g.log.Error("corrupt session record",
			zap.String("key", RecordKey),
			zap.Int("size", len(raw)),
			zap.Error(err),
		)
		return LoggedOut()
	}

	return LoggedIn(u.Role)
}

// Login persists u and returns the logged-in State.
func (g *Gate) Login(ctx context.Context, u StoredUser) (State, error) {
	raw, err := Encode(u)
	if err != nil {
		return LoggedOut(), fmt.Errorf("encode session record: %w", err)
	}

	if err := g.store.Save(ctx, RecordKey, raw); err != nil {
		g.log.Error("failed to save session record", zap.String("user_id", u.ID), zap.Error(err))
		return LoggedOut(), fmt.Errorf("save session record: %w", err)
	}

	g.counters.Login()
	g.log.Info("session started", zap.String("user_id", u.ID), zap.String("role", string(u.Role)))
	return LoggedIn(u.Role), nil
}

// Logout removes the persisted user. Calling it with no record stored is fine.
func (g *Gate) Logout(ctx context.Context) (State, error) {
	if err := g.store.Delete(ctx, RecordKey); err != nil {
		g.log.Error("failed to delete session record", zap.Error(err))
		return LoggedOut(), fmt.Errorf("delete session record: %w", err)
	}

	g.counters.Logout()
	return LoggedOut(), nil
}

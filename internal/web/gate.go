package web

import (
	"context"
	"net/http"

	"donorlink-web/internal/auth"
	"donorlink-web/internal/logger"
	"donorlink-web/internal/session"
)

type gateKey struct{}

// withSession loads the session once per request, before any route is
// resolved, and exposes both the State and the gate to handlers.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		gate := session.NewGate(s.storage.For(w, r), logger.FromCtx(ctx), s.counters)
		st := gate.Initialize(ctx)

		ctx = auth.WithState(ctx, st)
		ctx = context.WithValue(ctx, gateKey{}, gate)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func gateFrom(ctx context.Context) *session.Gate {
	g, _ := ctx.Value(gateKey{}).(*session.Gate)
	return g
}

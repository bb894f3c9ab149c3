package web

import (
	"bytes"
	"html/template"
	"net/http"

	"donorlink-web/internal/cart"
	"donorlink-web/internal/donation"
	"donorlink-web/internal/logger"
	"donorlink-web/internal/metrics"
	"donorlink-web/internal/product"
	"donorlink-web/internal/route"
	"donorlink-web/internal/session"
	"donorlink-web/internal/storage"
	"donorlink-web/internal/user"

	"go.uber.org/zap"
)

type Options struct {
	Storage   storage.Provider
	Users     user.Service
	Products  product.Service
	Carts     cart.Service
	Donations donation.Service
	// Counters may be nil.
	Counters *metrics.Session
	// SecureCookies marks the access token cookie as HTTPS-only.
	SecureCookies bool
	Theme         *Theme
}

// Server renders the DonorLink pages. Every request gets its own session
// gate over the client's storage, so no session state is shared between
// requests.
type Server struct {
	storage   storage.Provider
	users     user.Service
	products  product.Service
	carts     cart.Service
	donations donation.Service
	counters  *metrics.Session

	secureCookies bool
	pages         map[route.ID]*template.Template
	theme         template.CSS
}

func NewServer(opts Options) (*Server, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, err
	}

	theme := DefaultTheme
	if opts.Theme != nil {
		theme = *opts.Theme
	}

	return &Server{
		storage:       opts.Storage,
		users:         opts.Users,
		products:      opts.Products,
		carts:         opts.Carts,
		donations:     opts.Donations,
		counters:      opts.Counters,
		secureCookies: opts.SecureCookies,
		pages:         pages,
		theme:         theme.CSS(),
	}, nil
}

// Handler returns the HTTP routes. /health bypasses the session gate.
func (s *Server) Handler() http.Handler {
	app := http.NewServeMux()
	app.HandleFunc("POST /login", s.handleLogin)
	app.HandleFunc("POST /signup", s.handleSignup)
	app.HandleFunc("POST /logout", s.handleLogout)
	app.HandleFunc("POST /cart", s.handleAddToCart)
	app.HandleFunc("POST /cart/remove", s.handleRemoveFromCart)
	app.HandleFunc("POST /donate", s.handleDonate)
	app.HandleFunc("/", s.handlePage)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("/", s.withSession(app))
	return mux
}

func (s *Server) newPage(st session.State, id route.ID) *pageData {
	return &pageData{
		Title:  titles[id],
		Route:  id,
		State:  st,
		Nav:    navFor(st, id),
		Theme:  s.theme,
		Status: http.StatusOK,
	}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, p *pageData) {
	t, ok := s.pages[p.Route]
	if !ok {
		t = s.pages[route.ErrorPage]
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, p); err != nil {
		logger.FromCtx(r.Context()).Error("failed to render page",
			zap.String("route", string(p.Route)),
			zap.Error(err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(p.Status)
	buf.WriteTo(w)
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, st session.State, status int) {
	p := s.newPage(st, route.ErrorPage)
	p.Status = status
	if status != http.StatusNotFound {
		p.Title = http.StatusText(status)
	}
	s.render(w, r, p)
}

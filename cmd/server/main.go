package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"donorlink-web/internal/cart"
	"donorlink-web/internal/config"
	"donorlink-web/internal/db"
	"donorlink-web/internal/donation"
	"donorlink-web/internal/logger"
	"donorlink-web/internal/metrics"
	"donorlink-web/internal/middleware"
	"donorlink-web/internal/product"
	"donorlink-web/internal/storage"
	"donorlink-web/internal/user"
	"donorlink-web/internal/web"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var (
	initDBFunc      = db.NewDatabase
	initRedisFunc   = db.NewRedis
	startServerFunc = listenAndServe
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server exited", zap.Error(err))
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET is empty, logins will fail")
	}

	database, err := initDBFunc(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, closeStorage, err := newStorage(ctx, cfg, database)
	if err != nil {
		return err
	}
	defer closeStorage()

	handler, err := newServer(ctx, cfg, database, provider)
	if err != nil {
		return err
	}

	addr := ":" + cfg.AppPort
	log.Info("server running",
		zap.String("addr", addr),
		zap.String("env", cfg.AppEnv),
		zap.String("session_store", cfg.SessionStore),
	)

	return startServerFunc(ctx, &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	})
}

// newStorage builds the client storage backend named by SESSION_STORE. The
// returned func releases whatever connection the backend opened.
func newStorage(ctx context.Context, cfg *config.Config, database *sql.DB) (storage.Provider, func(), error) {
	noop := func() {}

	switch cfg.SessionStore {
	case config.StorePostgres:
		return storage.NewPostgres(database), noop, nil
	case config.StoreRedis:
		client, err := initRedisFunc(ctx, cfg.RedisURL)
		if err != nil {
			return nil, noop, err
		}
		return storage.NewRedis(client, cfg.SessionTTL), func() { client.Close() }, nil
	case config.StoreMemory:
		return storage.NewMemory(), noop, nil
	default:
		return storage.NewCookie(cfg.CookieSecure), noop, nil
	}
}

func newServer(ctx context.Context, cfg *config.Config, database *sql.DB, provider storage.Provider) (http.Handler, error) {
	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo, cfg.JWTSecret)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, productRepo)

	donationRepo := donation.NewRepository(database)
	donationSvc := donation.NewService(donationRepo, cartSvc)

	srv, err := web.NewServer(web.Options{
		Storage:       provider,
		Users:         userSvc,
		Products:      productSvc,
		Carts:         cartSvc,
		Donations:     donationSvc,
		Counters:      &metrics.Session{},
		SecureCookies: cfg.CookieSecure,
	})
	if err != nil {
		return nil, err
	}

	limiter := middleware.NewRateLimiter(cfg.InternalSecretKey)
	go limiter.Run(ctx, time.Minute)

	return setupRouter(srv.Handler(), limiter, cfg.JWTSecret), nil
}

func setupRouter(app http.Handler, limiter *middleware.RateLimiter, jwtSecret string) http.Handler {
	h := limiter.Middleware(app)
	h = middleware.AuthMiddleware(jwtSecret)(h)
	h = logger.LoggingMiddleware(h)
	return logger.RequestIDMiddleware(h)
}

func listenAndServe(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.L().Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

package storage

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"donorlink-web/internal/logger"
	"donorlink-web/internal/session"

	"go.uber.org/zap"
)

// Postgres keeps client storage in the client_storage table, keyed by device.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) For(w http.ResponseWriter, r *http.Request) session.Store {
	return p.Device(DeviceID(w, r))
}

func (p *Postgres) Device(deviceID string) session.Store {
	return &postgresStore{db: p.db, device: deviceID}
}

type postgresStore struct {
	db     *sql.DB
	device string
}

func (s *postgresStore) Load(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM client_storage WHERE device_id = $1 AND key = $2",
		s.device, key,
	).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to load client storage",
			zap.String("device_id", s.device),
			zap.String("key", key),
			zap.Error(err),
		)
		return "", false, err
	}
	return value, true, nil
}

func (s *postgresStore) Save(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO client_storage (device_id, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (device_id, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`, s.device, key, value)

	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to save client storage",
			zap.String("device_id", s.device),
			zap.String("key", key),
			zap.Error(err),
		)
	}
	return err
}

func (s *postgresStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM client_storage WHERE device_id = $1 AND key = $2",
		s.device, key,
	)
	return err
}

package user

import (
	"context"
	"database/sql"
	"errors"

	"donorlink-web/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, params RegisterParams) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int) (*User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Create inserts a user. params.Password must already be hashed.
func (r *repository) Create(ctx context.Context, params RegisterParams) (*User, error) {
	log := logger.FromCtx(ctx)

	var u User
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO users (name, email, password, role) VALUES ($1, $2, $3, $4) RETURNING id, name, email, password, role, created_at",
		params.Name, params.Email, params.Password, string(params.Role),
	).Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == PgUniqueViolation {
			return nil, ErrEmailExists
		}
		log.Error("db: failed to insert user",
			zap.String("email", params.Email),
			zap.Error(err),
		)
		return nil, err
	}

	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx,
		"SELECT id, name, email, password, role, created_at FROM users WHERE email = $1",
		email,
	)
}

func (r *repository) FindByID(ctx context.Context, id int) (*User, error) {
	return r.findOne(ctx,
		"SELECT id, name, email, password, role, created_at FROM users WHERE id = $1",
		id,
	)
}

func (r *repository) findOne(ctx context.Context, query string, arg interface{}) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

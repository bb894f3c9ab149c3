package donation

import (
	"context"
	"database/sql"

	"donorlink-web/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, userID int, amount float64, message *string) (*Donation, error)
	ListByUser(ctx context.Context, userID int, limit int) ([]Donation, error)
	Summary(ctx context.Context) (*Summary, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, userID int, amount float64, message *string) (*Donation, error) {
	var d Donation
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO donations (user_id, amount, message)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, amount, message, created_at
	`, userID, amount, message).Scan(&d.ID, &d.UserID, &d.Amount, &d.Message, &d.CreatedAt)

	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert donation",
			zap.Int("user_id", userID),
			zap.Float64("amount", amount),
			zap.Error(err),
		)
		return nil, err
	}
	return &d, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int, limit int) ([]Donation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, amount, message, created_at
		FROM donations
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Donation
	for rows.Next() {
		var d Donation
		if err := rows.Scan(&d.ID, &d.UserID, &d.Amount, &d.Message, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *repository) Summary(ctx context.Context) (*Summary, error) {
	var s Summary
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(amount), 0), COUNT(DISTINCT user_id)
		FROM donations
	`).Scan(&s.Count, &s.Total, &s.Donors)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

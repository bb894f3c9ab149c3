package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"donorlink-web/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, opts ListOptions) ([]Product, error)
	GetByID(ctx context.Context, opts GetProductOptions) (*Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = "id, name, description, price, stock, image_url, status, created_at"

// likeEscaper makes LIKE wildcards in a search term match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func (r *repository) List(ctx context.Context, opts ListOptions) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "List"),
	)

	var (
		where []string
		args  []interface{}
	)
	if opts.OnlyActive {
		args = append(args, StatusActive)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if s := strings.TrimSpace(opts.Search); s != "" {
		args = append(args, "%"+likeEscaper.Replace(s)+"%")
		where = append(where, fmt.Sprintf(`name ILIKE $%d ESCAPE '\'`, len(args)))
	}

	query := "SELECT " + productColumns + " FROM products"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC"

	if opts.Limit > 0 {
		page := opts.Page
		if page < 1 {
			page = 1
		}
		args = append(args, opts.Limit, (page-1)*opts.Limit)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.ImageURL, &p.Status, &p.CreatedAt); err != nil {
			log.Error("failed to scan product", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, opts GetProductOptions) (*Product, error) {
	query := "SELECT " + productColumns + " FROM products WHERE id = $1"
	args := []interface{}{opts.ProductID}
	if opts.OnlyActive {
		query += " AND status = $2"
		args = append(args, StatusActive)
	}

	var p Product
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.ImageURL, &p.Status, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to get product",
			zap.String("product_id", opts.ProductID),
			zap.Error(err),
		)
		return nil, err
	}
	return &p, nil
}

package cart

import (
	"context"
	"database/sql"
	"errors"

	"donorlink-web/internal/logger"
	"donorlink-web/internal/product"

	"go.uber.org/zap"
)

type Repository interface {
	GetCartItems(ctx context.Context, userID int) ([]CartItem, error)
	GetCartItemByUserAndProduct(ctx context.Context, userID int, productID string) (*CartItem, error)
	CreateCartItem(ctx context.Context, params CreateCartItemParams) (*CartItem, error)
	UpdateCartItemQuantity(ctx context.Context, cartItemID string, quantity int) (*CartItem, error)
	RemoveFromCart(ctx context.Context, params DeleteFromCartParams) error
	ClearCart(ctx context.Context, userID int) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetCartItems(ctx context.Context, userID int) ([]CartItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetCartItems"),
		zap.Int("user_id", userID),
	)

	rows, err := r.db.QueryContext(ctx, `
	SELECT
		c.id,
		c.user_id,
		c.product_id,
		c.quantity,
		c.created_at,
		c.updated_at,
		p.name,
		p.price,
		p.stock,
		p.image_url,
		p.status
	FROM carts c
	JOIN products p ON p.id = c.product_id
	WHERE c.user_id = $1
	ORDER BY c.created_at ASC
	`, userID)
	if err != nil {
		log.Error("failed to query cart rows", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []CartItem
	for rows.Next() {
		item := CartItem{Product: &product.Product{}}
		if err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.ProductID,
			&item.Quantity,
			&item.CreatedAt,
			&item.UpdatedAt,
			&item.Product.Name,
			&item.Product.Price,
			&item.Product.Stock,
			&item.Product.ImageURL,
			&item.Product.Status,
		); err != nil {
			log.Error("failed to scan cart row", zap.Error(err))
			return nil, err
		}
		item.Product.ID = item.ProductID
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *repository) GetCartItemByUserAndProduct(
	ctx context.Context,
	userID int,
	productID string,
) (*CartItem, error) {
	query := `
	SELECT id, user_id, product_id, quantity, created_at, updated_at
	FROM carts
	WHERE user_id = $1 AND product_id = $2
	`

	var item CartItem
	err := r.db.QueryRowContext(ctx, query, userID, productID).Scan(
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *repository) CreateCartItem(ctx context.Context, params CreateCartItemParams) (*CartItem, error) {
	query := `
	INSERT INTO carts (user_id, product_id, quantity)
	VALUES ($1, $2, $3)
	RETURNING id, user_id, product_id, quantity, created_at, updated_at
	`

	var item CartItem
	err := r.db.QueryRowContext(ctx, query, params.UserID, params.ProductID, params.Quantity).Scan(
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to create cart item",
			zap.Int("user_id", params.UserID),
			zap.String("product_id", params.ProductID),
			zap.Error(err),
		)
		return nil, err
	}

	return &item, nil
}

func (r *repository) UpdateCartItemQuantity(
	ctx context.Context,
	cartItemID string,
	quantity int,
) (*CartItem, error) {
	query := `
	UPDATE carts
	SET quantity = $1,
	    updated_at = NOW()
	WHERE id = $2
	RETURNING id, user_id, product_id, quantity, created_at, updated_at
	`

	var item CartItem
	err := r.db.QueryRowContext(ctx, query, quantity, cartItemID).Scan(
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCartItemNotFound
	}
	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *repository) RemoveFromCart(ctx context.Context, params DeleteFromCartParams) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM carts
		WHERE user_id = $1 AND id = $2
	`, params.UserID, params.ItemID)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrCartItemNotFound
	}

	return nil
}

// ClearCart removes every item of the user. An empty cart is not an error.
func (r *repository) ClearCart(ctx context.Context, userID int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM carts WHERE user_id = $1`, userID)
	return err
}

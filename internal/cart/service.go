package cart

import (
	"context"
	"errors"

	"donorlink-web/internal/logger"
	"donorlink-web/internal/product"

	"go.uber.org/zap"
)

// Service defines the business logic for carts.
type Service interface {
	AddToCart(ctx context.Context, params AddToCartParams) (*CartItem, error)
	GetCart(ctx context.Context, userID int) (*Cart, error)
	RemoveFromCart(ctx context.Context, params DeleteFromCartParams) error
	ClearCart(ctx context.Context, userID int) error
}

type service struct {
	repo        Repository
	productRepo product.Repository
}

func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

// AddToCart adds a product to a user's cart, merging with an existing line.
func (s *service) AddToCart(ctx context.Context, params AddToCartParams) (*CartItem, error) {
	if params.UserID == 0 {
		return nil, ErrUserNotAuthenticated
	}
	if params.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	// only active products can be added
	p, err := s.productRepo.GetByID(ctx, product.GetProductOptions{
		ProductID:  params.ProductID,
		OnlyActive: true,
	})
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	existing, err := s.repo.GetCartItemByUserAndProduct(ctx, params.UserID, params.ProductID)
	if err != nil {
		return nil, err
	}

	finalQty := params.Quantity
	if existing != nil {
		finalQty += existing.Quantity
	}

	if p.Stock < finalQty {
		logger.FromCtx(ctx).Info("add to cart rejected: insufficient stock",
			zap.String("product_id", p.ID),
			zap.Int("stock", p.Stock),
			zap.Int("requested", finalQty),
		)
		return nil, ErrInsufficientStock
	}

	if existing == nil {
		return s.repo.CreateCartItem(ctx, CreateCartItemParams{
			UserID:    params.UserID,
			ProductID: params.ProductID,
			Quantity:  params.Quantity,
		})
	}
	return s.repo.UpdateCartItemQuantity(ctx, existing.ID, finalQty)
}

func (s *service) GetCart(ctx context.Context, userID int) (*Cart, error) {
	if userID == 0 {
		return nil, ErrUserNotAuthenticated
	}

	items, err := s.repo.GetCartItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	c := &Cart{Items: items}
	for _, item := range items {
		c.Total += item.Subtotal()
	}
	return c, nil
}

// RemoveFromCart deletes one line from the user's cart
func (s *service) RemoveFromCart(ctx context.Context, params DeleteFromCartParams) error {
	if params.UserID == 0 {
		return ErrUserNotAuthenticated
	}
	if params.ItemID == "" {
		return ErrInvalidRemoveCartInput
	}

	err := s.repo.RemoveFromCart(ctx, params)
	if err != nil && !errors.Is(err, ErrCartItemNotFound) {
		logger.FromCtx(ctx).Error("failed to remove cart item", zap.Error(err))
	}
	return err
}

func (s *service) ClearCart(ctx context.Context, userID int) error {
	if userID == 0 {
		return ErrUserNotAuthenticated
	}
	return s.repo.ClearCart(ctx, userID)
}

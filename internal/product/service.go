package product

import (
	"context"
	"strings"
	"time"

	"donorlink-web/internal/logger"

	"go.uber.org/zap"
)

const defaultPageSize = 24

type Service interface {
	List(ctx context.Context, search string, page int) ([]Product, error)
	GetProductByID(ctx context.Context, productID string) (*Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, search string, page int) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "List"),
	)
	start := time.Now()

	products, err := s.repo.List(ctx, ListOptions{
		Search:     search,
		OnlyActive: true,
		Limit:      defaultPageSize,
		Page:       page,
	})
	if err != nil {
		return nil, err
	}

	log.Debug("products listed",
		zap.Int("count", len(products)),
		zap.Duration("duration", time.Since(start)),
	)
	return products, nil
}

// GetProductByID returns an active product.
func (s *service) GetProductByID(ctx context.Context, productID string) (*Product, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, ErrInvalidID
	}

	p, err := s.repo.GetByID(ctx, GetProductOptions{ProductID: productID, OnlyActive: true})
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

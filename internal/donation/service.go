package donation

import (
	"context"
	"fmt"
	"math"
	"strings"

	"donorlink-web/internal/cart"
	"donorlink-web/internal/logger"

	"go.uber.org/zap"
)

const (
	maxMessageLen = 500
	historyLimit  = 20
)

type Service interface {
	Donate(ctx context.Context, params CreateDonationParams) (*Donation, error)
	History(ctx context.Context, userID int) ([]Donation, error)
	Summary(ctx context.Context) (*Summary, error)
}

type service struct {
	repo    Repository
	cartSvc cart.Service
}

func NewService(repo Repository, cartSvc cart.Service) Service {
	return &service{repo: repo, cartSvc: cartSvc}
}

func (s *service) Donate(ctx context.Context, params CreateDonationParams) (*Donation, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Donate"),
		zap.Int("user_id", params.UserID),
	)

	if params.UserID == 0 {
		return nil, ErrUserNotAuthenticated
	}

	msg := strings.TrimSpace(params.Message)
	if len(msg) > maxMessageLen {
		return nil, ErrMessageTooLong
	}

	amount := params.Amount
	if params.FromCart {
		c, err := s.cartSvc.GetCart(ctx, params.UserID)
		if err != nil {
			return nil, fmt.Errorf("load cart: %w", err)
		}
		if len(c.Items) == 0 {
			return nil, ErrEmptyCart
		}
		amount = c.Total
	}

	amount = math.Round(amount*100) / 100
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, ErrInvalidAmount
	}

	var message *string
	if msg != "" {
		message = &msg
	}

	d, err := s.repo.Create(ctx, params.UserID, amount, message)
	if err != nil {
		return nil, err
	}

	if params.FromCart {
		if err := s.cartSvc.ClearCart(ctx, params.UserID); err != nil {
			// donation already recorded, keep going
			log.Error("failed to clear cart after donation", zap.String("donation_id", d.ID), zap.Error(err))
		}
	}

	log.Info("donation recorded", zap.String("donation_id", d.ID), zap.Float64("amount", d.Amount))
	return d, nil
}

func (s *service) History(ctx context.Context, userID int) ([]Donation, error) {
	if userID == 0 {
		return nil, ErrUserNotAuthenticated
	}
	return s.repo.ListByUser(ctx, userID, historyLimit)
}

func (s *service) Summary(ctx context.Context) (*Summary, error) {
	return s.repo.Summary(ctx)
}

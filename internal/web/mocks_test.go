package web

import (
	"context"

	"donorlink-web/internal/cart"
	"donorlink-web/internal/donation"
	"donorlink-web/internal/product"
	"donorlink-web/internal/user"

	"github.com/stretchr/testify/mock"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, params user.RegisterParams) (*user.User, error) {
	args := m.Called(ctx, params)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (string, *user.User, error) {
	args := m.Called(ctx, email, password)
	u, _ := args.Get(1).(*user.User)
	return args.String(0), u, args.Error(2)
}

func (m *MockUserService) GetUserByID(ctx context.Context, id int) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context, search string, page int) ([]product.Product, error) {
	args := m.Called(ctx, search, page)
	items, _ := args.Get(0).([]product.Product)
	return items, args.Error(1)
}

func (m *MockProductService) GetProductByID(ctx context.Context, productID string) (*product.Product, error) {
	args := m.Called(ctx, productID)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}

type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) AddToCart(ctx context.Context, params cart.AddToCartParams) (*cart.CartItem, error) {
	args := m.Called(ctx, params)
	item, _ := args.Get(0).(*cart.CartItem)
	return item, args.Error(1)
}

func (m *MockCartService) GetCart(ctx context.Context, userID int) (*cart.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(*cart.Cart)
	return c, args.Error(1)
}

func (m *MockCartService) RemoveFromCart(ctx context.Context, params cart.DeleteFromCartParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *MockCartService) ClearCart(ctx context.Context, userID int) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockDonationService struct {
	mock.Mock
}

func (m *MockDonationService) Donate(ctx context.Context, params donation.CreateDonationParams) (*donation.Donation, error) {
	args := m.Called(ctx, params)
	d, _ := args.Get(0).(*donation.Donation)
	return d, args.Error(1)
}

func (m *MockDonationService) History(ctx context.Context, userID int) ([]donation.Donation, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]donation.Donation)
	return items, args.Error(1)
}

func (m *MockDonationService) Summary(ctx context.Context) (*donation.Summary, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*donation.Summary)
	return s, args.Error(1)
}

package order

import (
	"context"
	"errors"
	"testing"

	"devmart-be/internal/payment"
	"devmart-be/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]product.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockProductRepository) IncrementQuantity(ctx context.Context, id primitive.ObjectID, delta int) (*product.Product, error) {
	args := m.Called(ctx, id, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateProduct(ctx context.Context, params payment.ProductParams) (string, error) {
	args := m.Called(ctx, params)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) CreatePrice(ctx context.Context, productID string, unitAmount int64, currency string) (string, error) {
	args := m.Called(ctx, productID, unitAmount, currency)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) CreateCheckoutSession(ctx context.Context, items []payment.LineItem, successURL, cancelURL string) (string, error) {
	args := m.Called(ctx, items, successURL, cancelURL)
	return args.String(0), args.Error(1)
}

func TestService_Checkout(t *testing.T) {
	ctx := context.Background()
	referer := "https://shop.example.com/cart"

	products := []product.Product{
		{ID: primitive.NewObjectID(), Name: "Widget", Description: "A widget", Image: "widget.png", Price: 9.99},
		{ID: primitive.NewObjectID(), Name: "Gadget", Description: "A gadget", Image: "gadget.png", Price: 24.5},
		{ID: primitive.NewObjectID(), Name: "Gizmo", Description: "A gizmo", Image: "gizmo.png", Price: 3},
	}
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID.Hex()
	}

	t.Run("OneSessionPerRequest", func(t *testing.T) {
		mockProducts := new(MockProductRepository)
		mockGateway := new(MockGateway)
		svc := NewService(mockProducts, mockGateway)

		mockProducts.On("FindByIDs", ctx, mock.Anything).Return(products, nil)

		for i, p := range products {
			mockGateway.On("CreateProduct", ctx, payment.ProductParams{
				Name:        p.Name,
				Description: p.Description,
				Images:      []string{"https://shop.example.com/images/" + p.Image},
			}).Return("prod_"+p.ID.Hex(), nil)

			mockGateway.On("CreatePrice", ctx, "prod_"+p.ID.Hex(), toCents(p.Price), "usd").
				Return("price_"+p.ID.Hex(), nil)
			_ = i
		}

		mockGateway.On("CreateCheckoutSession", ctx, mock.MatchedBy(func(items []payment.LineItem) bool {
			if len(items) != len(products) {
				return false
			}
			for _, item := range items {
				if item.Quantity != 1 {
					return false
				}
			}
			return true
		}),
			"https://shop.example.com/success?session_id={CHECKOUT_SESSION_ID}",
			"https://shop.example.com/",
		).Return("cs_test_123", nil)

		sessionID, err := svc.Checkout(ctx, ids, referer)

		assert.NoError(t, err)
		assert.Equal(t, "cs_test_123", sessionID)
		mockGateway.AssertNumberOfCalls(t, "CreateProduct", len(products))
		mockGateway.AssertNumberOfCalls(t, "CreatePrice", len(products))
		mockGateway.AssertNumberOfCalls(t, "CreateCheckoutSession", 1)
		mockGateway.AssertExpectations(t)
	})

	t.Run("DuplicateIDChargesTwice", func(t *testing.T) {
		// The store's $in lookup returns the document once; the line items
		// must still follow the requested multiset.
		mockProducts := new(MockProductRepository)
		mockGateway := new(MockGateway)
		svc := NewService(mockProducts, mockGateway)

		widget := products[0]
		mockProducts.On("FindByIDs", ctx, mock.Anything).Return([]product.Product{widget}, nil)

		mockGateway.On("CreateProduct", ctx, mock.Anything).Return("prod_w", nil)
		mockGateway.On("CreatePrice", ctx, "prod_w", toCents(widget.Price), "usd").Return("price_w", nil)
		mockGateway.On("CreateCheckoutSession", ctx, mock.MatchedBy(func(items []payment.LineItem) bool {
			return len(items) == 2 && items[0].Price == "price_w" && items[1].Price == "price_w"
		}), mock.Anything, mock.Anything).Return("cs_test_dup", nil)

		sessionID, err := svc.Checkout(ctx, []string{widget.ID.Hex(), widget.ID.Hex()}, referer)

		assert.NoError(t, err)
		assert.Equal(t, "cs_test_dup", sessionID)
		mockGateway.AssertNumberOfCalls(t, "CreateProduct", 2)
		mockGateway.AssertNumberOfCalls(t, "CreatePrice", 2)
		mockGateway.AssertNumberOfCalls(t, "CreateCheckoutSession", 1)
	})

	t.Run("RoundsPriceToNearestCent", func(t *testing.T) {
		// 4.35 as a double is 4.3499...; truncation would charge 434.
		mockProducts := new(MockProductRepository)
		mockGateway := new(MockGateway)
		svc := NewService(mockProducts, mockGateway)

		p := product.Product{ID: primitive.NewObjectID(), Name: "Sticker", Image: "sticker.png", Price: 4.35}
		mockProducts.On("FindByIDs", ctx, mock.Anything).Return([]product.Product{p}, nil)

		mockGateway.On("CreateProduct", ctx, mock.Anything).Return("prod_s", nil)
		mockGateway.On("CreatePrice", ctx, "prod_s", int64(435), "usd").Return("price_s", nil)
		mockGateway.On("CreateCheckoutSession", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return("cs_test_round", nil)

		_, err := svc.Checkout(ctx, []string{p.ID.Hex()}, referer)

		assert.NoError(t, err)
		mockGateway.AssertExpectations(t)
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		mockProducts := new(MockProductRepository)
		mockGateway := new(MockGateway)
		svc := NewService(mockProducts, mockGateway)

		mockProducts.On("FindByIDs", ctx, mock.Anything).Return([]product.Product{}, nil)

		_, err := svc.Checkout(ctx, []string{primitive.NewObjectID().Hex()}, referer)

		assert.Error(t, err)
		mockGateway.AssertNotCalled(t, "CreateProduct")
	})

	t.Run("GatewayFailureAborts", func(t *testing.T) {
		// A price failure midway stops the sequence; nothing is rolled back.
		mockProducts := new(MockProductRepository)
		mockGateway := new(MockGateway)
		svc := NewService(mockProducts, mockGateway)

		mockProducts.On("FindByIDs", ctx, mock.Anything).Return(products[:1], nil)
		mockGateway.On("CreateProduct", ctx, mock.Anything).Return("prod_1", nil)
		mockGateway.On("CreatePrice", ctx, "prod_1", mock.Anything, "usd").
			Return("", errors.New("stripe error"))

		_, err := svc.Checkout(ctx, ids[:1], referer)

		assert.Error(t, err)
		mockGateway.AssertNotCalled(t, "CreateCheckoutSession")
	})

	t.Run("InvalidReferer", func(t *testing.T) {
		mockProducts := new(MockProductRepository)
		mockGateway := new(MockGateway)
		svc := NewService(mockProducts, mockGateway)

		_, err := svc.Checkout(ctx, ids, "not a url")

		assert.Error(t, err)
		mockProducts.AssertNotCalled(t, "FindByIDs")
	})

	t.Run("InvalidProductID", func(t *testing.T) {
		mockProducts := new(MockProductRepository)
		mockGateway := new(MockGateway)
		svc := NewService(mockProducts, mockGateway)

		_, err := svc.Checkout(ctx, []string{"bogus"}, referer)

		assert.Error(t, err)
		mockGateway.AssertNotCalled(t, "CreateProduct")
	})
}

func TestToCents(t *testing.T) {
	assert.Equal(t, int64(435), toCents(4.35))
	assert.Equal(t, int64(2935), toCents(29.35))
	assert.Equal(t, int64(999), toCents(9.99))
	assert.Equal(t, int64(300), toCents(3))
}

func TestOriginFromReferer(t *testing.T) {
	origin, err := originFromReferer("https://shop.example.com/some/deep/page?x=1")
	assert.NoError(t, err)
	assert.Equal(t, "https://shop.example.com", origin)

	_, err = originFromReferer("")
	assert.Error(t, err)
}

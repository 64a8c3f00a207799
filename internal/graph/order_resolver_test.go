package graph

import (
	"context"
	"net/http/httptest"
	"testing"

	"devmart-be/internal/order"
	"devmart-be/internal/transport"
	"devmart-be/internal/user"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMutationResolver_AddOrder(t *testing.T) {
	t.Run("Unauthenticated", func(t *testing.T) {
		mockUsers := new(MockUserService)
		mr := &mutationResolver{&Resolver{UserSvc: mockUsers}}

		_, err := mr.AddOrder(context.Background(), []string{primitive.NewObjectID().Hex()})

		assert.Equal(t, errNotLoggedIn, err)
		mockUsers.AssertNotCalled(t, "AddOrder")
	})

	t.Run("ReturnsUnexpandedOrder", func(t *testing.T) {
		mockUsers := new(MockUserService)
		mr := &mutationResolver{&Resolver{UserSvc: mockUsers}}

		uid := primitive.NewObjectID()
		ctx := authedCtx(uid)
		pid := primitive.NewObjectID()
		o := order.New([]primitive.ObjectID{pid})

		mockUsers.On("AddOrder", ctx, uid.Hex(), []string{pid.Hex()}).Return(&o, nil)

		res, err := mr.AddOrder(ctx, []string{pid.Hex()})
		assert.NoError(t, err)
		assert.Equal(t, o.ID.Hex(), res.ID)
		assert.Empty(t, res.Products)
	})
}

func TestQueryResolver_Order(t *testing.T) {
	t.Run("Unauthenticated", func(t *testing.T) {
		mockUsers := new(MockUserService)
		qr := &queryResolver{&Resolver{UserSvc: mockUsers}}

		_, err := qr.Order(context.Background(), primitive.NewObjectID().Hex())

		assert.Equal(t, errNotLoggedIn, err)
		mockUsers.AssertNotCalled(t, "GetOrder")
	})

	t.Run("NotFound", func(t *testing.T) {
		mockUsers := new(MockUserService)
		qr := &queryResolver{&Resolver{UserSvc: mockUsers}}

		uid := primitive.NewObjectID()
		ctx := authedCtx(uid)
		oid := primitive.NewObjectID()

		mockUsers.On("GetOrder", ctx, uid.Hex(), oid.Hex()).Return(nil, user.ErrOrderNotFound)

		_, err := qr.Order(ctx, oid.Hex())
		assert.Equal(t, user.ErrOrderNotFound, err)
	})

	t.Run("ExpandsProducts", func(t *testing.T) {
		mockUsers := new(MockUserService)
		mockProducts := new(MockProductService)
		qr := &queryResolver{&Resolver{UserSvc: mockUsers, ProductSvc: mockProducts}}

		uid := primitive.NewObjectID()
		ctx := authedCtx(uid)
		o := order.New([]primitive.ObjectID{primitive.NewObjectID()})

		mockUsers.On("GetOrder", ctx, uid.Hex(), o.ID.Hex()).Return(&o, nil)
		mockProducts.On("GetByIDs", ctx, o.Products).Return(nil, nil)

		res, err := qr.Order(ctx, o.ID.Hex())
		assert.NoError(t, err)
		assert.Equal(t, o.ID.Hex(), res.ID)
		mockProducts.AssertExpectations(t)
	})
}

func TestQueryResolver_Checkout(t *testing.T) {
	t.Run("PassesRefererThrough", func(t *testing.T) {
		mockOrders := new(MockOrderService)
		qr := &queryResolver{&Resolver{OrderSvc: mockOrders}}

		req := httptest.NewRequest("POST", "/query", nil)
		req.Header.Set("Referer", "https://shop.example.com/cart")
		ctx := transport.WithRequest(context.Background(), req)

		ids := []string{primitive.NewObjectID().Hex()}

		mockOrders.On("Checkout", ctx, ids, "https://shop.example.com/cart").
			Return("cs_test_123", nil)

		res, err := qr.Checkout(ctx, ids)
		assert.NoError(t, err)
		assert.Equal(t, "cs_test_123", res.Session)
	})

	t.Run("NoRequestInContext", func(t *testing.T) {
		mockOrders := new(MockOrderService)
		qr := &queryResolver{&Resolver{OrderSvc: mockOrders}}

		ctx := context.Background()
		ids := []string{primitive.NewObjectID().Hex()}

		mockOrders.On("Checkout", ctx, ids, "").Return("", assert.AnError)

		_, err := qr.Checkout(ctx, ids)
		assert.Error(t, err)
	})
}

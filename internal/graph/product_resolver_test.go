package graph

import (
	"context"
	"testing"

	"devmart-be/internal/product"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestQueryResolver_Products(t *testing.T) {
	mockProducts := new(MockProductService)
	qr := &queryResolver{&Resolver{ProductSvc: mockProducts}}

	ctx := context.Background()

	mockProducts.On("GetAll", ctx).Return([]product.Product{
		{ID: primitive.NewObjectID(), Name: "Widget", Price: 9.99, Quantity: 10},
	}, nil)

	res, err := qr.Products(ctx)
	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "Widget", res[0].Name)
	assert.Equal(t, int32(10), res[0].Quantity)
}

func TestMutationResolver_UpdateProduct(t *testing.T) {
	t.Run("DecrementsWithoutAuth", func(t *testing.T) {
		mockProducts := new(MockProductService)
		mr := &mutationResolver{&Resolver{ProductSvc: mockProducts}}

		ctx := context.Background()
		id := primitive.NewObjectID()

		mockProducts.On("RemoveStock", ctx, id.Hex(), 5).
			Return(&product.Product{ID: id, Quantity: 5}, nil)

		res, err := mr.UpdateProduct(ctx, id.Hex(), 5)
		assert.NoError(t, err)
		assert.Equal(t, int32(5), res.Quantity)
	})

	t.Run("ServiceError", func(t *testing.T) {
		mockProducts := new(MockProductService)
		mr := &mutationResolver{&Resolver{ProductSvc: mockProducts}}

		ctx := context.Background()
		mockProducts.On("RemoveStock", ctx, "bogus", 5).Return(nil, assert.AnError)

		_, err := mr.UpdateProduct(ctx, "bogus", 5)
		assert.Error(t, err)
	})
}

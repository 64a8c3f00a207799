package graph

import (
	"context"

	"devmart-be/internal/graph/model"
)

func (r *queryResolver) Products(ctx context.Context) ([]*model.Product, error) {
	products, err := r.ProductSvc.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*model.Product, 0, len(products))
	for i := range products {
		result = append(result, toGraphQLProduct(&products[i]))
	}
	return result, nil
}

// UpdateProduct removes the given number of units from stock. The sign of
// quantity is ignored and no floor is applied.
func (r *mutationResolver) UpdateProduct(ctx context.Context, id string, quantity int32) (*model.Product, error) {
	p, err := r.ProductSvc.RemoveStock(ctx, id, int(quantity))
	if err != nil {
		return nil, err
	}
	return toGraphQLProduct(p), nil
}

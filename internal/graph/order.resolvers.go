package graph

import (
	"context"

	"devmart-be/internal/graph/model"
	"devmart-be/internal/order"
	"devmart-be/internal/transport"
)

func (r *mutationResolver) AddOrder(ctx context.Context, products []string) (*model.Order, error) {
	uid, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	o, err := r.UserSvc.AddOrder(ctx, uid, products)
	if err != nil {
		return nil, err
	}

	// The new order is returned unexpanded.
	return toGraphQLOrder(o, nil), nil
}

func (r *queryResolver) Order(ctx context.Context, id string) (*model.Order, error) {
	uid, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	o, err := r.UserSvc.GetOrder(ctx, uid, id)
	if err != nil {
		return nil, err
	}

	expanded, err := r.expandOrders(ctx, []order.Order{*o})
	if err != nil {
		return nil, err
	}
	return expanded[0], nil
}

func (r *queryResolver) Checkout(ctx context.Context, products []string) (*model.Checkout, error) {
	var referer string
	if req := transport.GetRequest(ctx); req != nil {
		referer = req.Header.Get("Referer")
	}

	sessionID, err := r.OrderSvc.Checkout(ctx, products, referer)
	if err != nil {
		return nil, err
	}

	return &model.Checkout{Session: sessionID}, nil
}

package product

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Service interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Product, error)
	RemoveStock(ctx context.Context, id string, quantity int) (*Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context) ([]Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Product, error) {
	return s.repo.FindByIDs(ctx, ids)
}

// RemoveStock treats the given quantity as units removed: the sign is
// discarded and the stored quantity always decreases. There is no floor, so
// stock can go negative.
func (s *service) RemoveStock(ctx context.Context, id string, quantity int) (*Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid product id: %w", err)
	}

	if quantity < 0 {
		quantity = -quantity
	}

	return s.repo.IncrementQuantity(ctx, oid, -quantity)
}

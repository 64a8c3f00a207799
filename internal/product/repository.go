package product

import (
	"context"

	"devmart-be/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type Repository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*Product, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Product, error)
	FindAll(ctx context.Context) ([]Product, error)
	IncrementQuantity(ctx context.Context, id primitive.ObjectID, delta int) (*Product, error)
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{col: db.Collection("products")}
}

func (r *repository) FindByID(ctx context.Context, id primitive.ObjectID) (*Product, error) {
	var p Product
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var products []Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Product, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var products []Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repository) IncrementQuantity(ctx context.Context, id primitive.ObjectID, delta int) (*Product, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var p Product
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"quantity": delta}},
		opts,
	).Decode(&p)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to adjust product quantity",
			zap.String("product_id", id.Hex()),
			zap.Int("delta", delta),
			zap.Error(err),
		)
		return nil, err
	}
	return &p, nil
}

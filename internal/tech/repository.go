package tech

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
	GetOrCreate(ctx context.Context, name string) (*Tech, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Tech, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Tech, error)
	FindAll(ctx context.Context) ([]Tech, error)
	PushPost(ctx context.Context, techID, postID primitive.ObjectID) error
	DeleteAll(ctx context.Context) error
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{col: db.Collection("techs")}
}

// GetOrCreate resolves a tech by name with a single atomic upsert, so two
// concurrent calls with the same name converge on one document.
func (r *repository) GetOrCreate(ctx context.Context, name string) (*Tech, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var t Tech
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"name": name},
		bson.M{"$setOnInsert": bson.M{"name": name, "posts": []primitive.ObjectID{}}},
		opts,
	).Decode(&t)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to upsert tech",
			zap.String("name", name),
			zap.Error(err),
		)
		return nil, err
	}
	return &t, nil
}

func (r *repository) FindByID(ctx context.Context, id primitive.ObjectID) (*Tech, error) {
	var t Tech
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Tech, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var techs []Tech
	if err := cur.All(ctx, &techs); err != nil {
		return nil, err
	}
	return techs, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Tech, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var techs []Tech
	if err := cur.All(ctx, &techs); err != nil {
		return nil, err
	}
	return techs, nil
}

func (r *repository) PushPost(ctx context.Context, techID, postID primitive.ObjectID) error {
	_, err := r.col.UpdateByID(ctx, techID, bson.M{"$push": bson.M{"posts": postID}})
	return err
}

func (r *repository) DeleteAll(ctx context.Context) error {
	_, err := r.col.DeleteMany(ctx, bson.M{})
	return err
}

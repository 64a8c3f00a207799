package post

import (
	"context"
	"time"

	"devmart-be/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, p *Post) (*Post, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Post, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Post, error)
	FindAll(ctx context.Context) ([]Post, error)
	PushTech(ctx context.Context, postID, techID primitive.ObjectID) (*Post, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	DeleteAll(ctx context.Context) error
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{col: db.Collection("posts")}
}

func (r *repository) Create(ctx context.Context, p *Post) (*Post, error) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	if p.Tech == nil {
		p.Tech = []primitive.ObjectID{}
	}

	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert post",
			zap.String("title", p.Title),
			zap.Error(err),
		)
		return nil, err
	}

	p.ID = res.InsertedID.(primitive.ObjectID)
	return p, nil
}

func (r *repository) FindByID(ctx context.Context, id primitive.ObjectID) (*Post, error) {
	var p Post
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Post, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []Post
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Post, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []Post
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *repository) PushTech(ctx context.Context, postID, techID primitive.ObjectID) (*Post, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var p Post
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": postID},
		bson.M{"$push": bson.M{"tech": techID}},
		opts,
	).Decode(&p)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to link tech to post",
			zap.String("post_id", postID.Hex()),
			zap.String("tech_id", techID.Hex()),
			zap.Error(err),
		)
		return nil, err
	}
	return &p, nil
}

func (r *repository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *repository) DeleteAll(ctx context.Context) error {
	_, err := r.col.DeleteMany(ctx, bson.M{})
	return err
}

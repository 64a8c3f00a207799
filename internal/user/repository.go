package user

import (
	"context"

	"devmart-be/internal/logger"
	"devmart-be/internal/order"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, u *User) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, params UpdateParams) (*User, error)
	PushPost(ctx context.Context, userID, postID primitive.ObjectID) (*User, error)
	PullPost(ctx context.Context, userID, postID primitive.ObjectID) (*User, error)
	PushOrder(ctx context.Context, userID primitive.ObjectID, o order.Order) error
	DeleteAll(ctx context.Context) error
	EnsureIndexes(ctx context.Context) error
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{col: db.Collection("users")}
}

func (r *repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *repository) Create(ctx context.Context, u *User) (*User, error) {
	log := logger.FromCtx(ctx)

	if u.Posts == nil {
		u.Posts = []primitive.ObjectID{}
	}
	if u.Orders == nil {
		u.Orders = []order.Order{}
	}

	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		log.Error("db: failed to insert user",
			zap.String("email", u.Email),
			zap.Error(err),
		)
		return nil, err
	}

	u.ID = res.InsertedID.(primitive.ObjectID)
	return u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	var u User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindAll(ctx context.Context) ([]User, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *repository) UpdateByID(ctx context.Context, id primitive.ObjectID, params UpdateParams) (*User, error) {
	set := bson.M{}
	if params.Username != nil {
		set["username"] = *params.Username
	}
	if params.Email != nil {
		set["email"] = *params.Email
	}
	if params.Password != nil {
		set["password"] = *params.Password
	}

	return r.findOneAndUpdate(ctx, id, bson.M{"$set": set})
}

func (r *repository) PushPost(ctx context.Context, userID, postID primitive.ObjectID) (*User, error) {
	return r.findOneAndUpdate(ctx, userID, bson.M{"$push": bson.M{"posts": postID}})
}

func (r *repository) PullPost(ctx context.Context, userID, postID primitive.ObjectID) (*User, error) {
	return r.findOneAndUpdate(ctx, userID, bson.M{"$pull": bson.M{"posts": postID}})
}

func (r *repository) PushOrder(ctx context.Context, userID primitive.ObjectID, o order.Order) error {
	_, err := r.col.UpdateByID(ctx, userID, bson.M{"$push": bson.M{"orders": o}})
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to push order",
			zap.String("user_id", userID.Hex()),
			zap.Error(err),
		)
	}
	return err
}

func (r *repository) findOneAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var u User
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&u)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to update user",
			zap.String("user_id", id.Hex()),
			zap.Error(err),
		)
		return nil, err
	}
	return &u, nil
}

func (r *repository) DeleteAll(ctx context.Context) error {
	_, err := r.col.DeleteMany(ctx, bson.M{})
	return err
}

package post

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Post struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	Title     string               `bson:"title"`
	Body      string               `bson:"body"`
	CreatedAt time.Time            `bson:"createdAt"`
	Tech      []primitive.ObjectID `bson:"tech"`
}

type CreateParams struct {
	Title string
	Body  string
}

package tech

import "go.mongodb.org/mongo-driver/bson/primitive"

type Tech struct {
	ID    primitive.ObjectID   `bson:"_id,omitempty"`
	Name  string               `bson:"name"`
	Posts []primitive.ObjectID `bson:"posts"`
}

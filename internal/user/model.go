package user

import (
	"devmart-be/internal/order"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty"`
	Username string               `bson:"username"`
	Email    string               `bson:"email"`
	Password string               `bson:"password"`
	Posts    []primitive.ObjectID `bson:"posts"`
	Orders   []order.Order        `bson:"orders"`
}

type UpdateParams struct {
	Username *string
	Email    *string
	Password *string
}

package order

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is embedded in the owning user document, never stored top-level.
type Order struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	PurchaseDate time.Time            `bson:"purchaseDate"`
	Products     []primitive.ObjectID `bson:"products"`
}

func New(products []primitive.ObjectID) Order {
	return Order{
		ID:           primitive.NewObjectID(),
		PurchaseDate: time.Now(),
		Products:     products,
	}
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Favorite is a per-user set of product references. Insertion order is
// preserved for display but carries no meaning.
type Favorite struct {
	ID        bson.ObjectID   `json:"id" bson:"_id,omitempty"`
	User      bson.ObjectID   `json:"user" bson:"user"`
	Products  []bson.ObjectID `json:"products" bson:"products"`
	CreatedAt time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" bson:"updated_at"`
}

type AddFavoriteRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// ExpandedFavorite is the read shape with products joined to full documents.
type ExpandedFavorite struct {
	ID       bson.ObjectID `json:"id,omitempty"`
	User     bson.ObjectID `json:"user,omitempty"`
	Products []Product     `json:"products"`
}

func NewFavorite(userID bson.ObjectID) *Favorite {
	now := time.Now()
	return &Favorite{
		ID:        bson.NewObjectID(),
		User:      userID,
		Products:  []bson.ObjectID{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Add appends the product if absent. Idempotent: a second add of the same
// product is a no-op and reports false.
func (f *Favorite) Add(productID bson.ObjectID) bool {
	for _, id := range f.Products {
		if id == productID {
			return false
		}
	}
	f.Products = append(f.Products, productID)
	f.UpdatedAt = time.Now()
	return true
}

// Remove filters the product out. Removing an absent product is a no-op.
func (f *Favorite) Remove(productID bson.ObjectID) bool {
	for i, id := range f.Products {
		if id == productID {
			f.Products = append(f.Products[:i], f.Products[i+1:]...)
			f.UpdatedAt = time.Now()
			return true
		}
	}
	return false
}

func (f *Favorite) Contains(productID bson.ObjectID) bool {
	for _, id := range f.Products {
		if id == productID {
			return true
		}
	}
	return false
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// CartItem is a single line: a product reference with a quantity.
type CartItem struct {
	Product  bson.ObjectID `json:"product" bson:"product"`
	Quantity int           `json:"quantity" bson:"quantity" validate:"gte=1"`
}

// Cart is the per-user mutable aggregate. TotalPrice is derived: it is
// recomputed from current product prices on every mutating call and never
// on read, so a product price change alone does not touch an existing
// cart's stored total.
type Cart struct {
	ID         bson.ObjectID `json:"id" bson:"_id,omitempty"`
	User       bson.ObjectID `json:"user" bson:"user"`
	Items      []CartItem    `json:"items" bson:"items"`
	TotalPrice float64       `json:"totalPrice" bson:"total_price"`
	Status     string        `json:"status" bson:"status"`
	CreatedAt  time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at" bson:"updated_at"`
}

type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type UpdateQuantityRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Type      string `json:"type" binding:"required,oneof=inc dec"`
}

// ExpandedCart is the read shape with line items joined to full product
// documents.
type ExpandedCart struct {
	ID         bson.ObjectID      `json:"id,omitempty"`
	User       bson.ObjectID      `json:"user,omitempty"`
	Items      []ExpandedCartItem `json:"items"`
	TotalPrice float64            `json:"totalPrice"`
}

type ExpandedCartItem struct {
	Product  *Product `json:"product"`
	Quantity int      `json:"quantity"`
}

func NewCart(userID bson.ObjectID) *Cart {
	now := time.Now()
	return &Cart{
		ID:         bson.NewObjectID(),
		User:       userID,
		Items:      []CartItem{},
		TotalPrice: 0,
		Status:     "active",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Upsert merges a line into the cart: an existing line for the product has
// its quantity incremented, otherwise a new line is appended. Quantities
// below 1 count as 1.
func (c *Cart) Upsert(productID bson.ObjectID, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].Product == productID {
			c.Items[i].Quantity += quantity
			return
		}
	}
	c.Items = append(c.Items, CartItem{Product: productID, Quantity: quantity})
}

// AdjustQuantity increments or decrements a line. Decrement floors at 1.
// Returns false when the product has no line in the cart.
func (c *Cart) AdjustQuantity(productID bson.ObjectID, direction string) bool {
	for i := range c.Items {
		if c.Items[i].Product != productID {
			continue
		}
		switch direction {
		case "inc":
			c.Items[i].Quantity++
		case "dec":
			if c.Items[i].Quantity > 1 {
				c.Items[i].Quantity--
			}
		}
		return true
	}
	return false
}

// RemoveItem filters the line out. Removing an absent product leaves the
// cart unchanged and reports false.
func (c *Cart) RemoveItem(productID bson.ObjectID) bool {
	for i := range c.Items {
		if c.Items[i].Product == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// RecomputeTotal sums current price x quantity over the remaining lines.
// Lines whose product is missing from the price map (deleted products)
// contribute nothing.
func (c *Cart) RecomputeTotal(prices map[bson.ObjectID]float64) {
	var total float64
	for _, item := range c.Items {
		if price, ok := prices[item.Product]; ok {
			total += price * float64(item.Quantity)
		}
	}
	c.TotalPrice = total
	c.UpdatedAt = time.Now()
}

// Clear resets items and total after order placement. The cart document is
// kept, not deleted.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
	c.TotalPrice = 0
	c.UpdatedAt = time.Now()
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

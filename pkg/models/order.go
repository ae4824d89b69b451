package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
	OrderStatusFailed  = "failed"
)

// OrderItem is a snapshotted cart line: product reference plus quantity.
type OrderItem struct {
	Product  bson.ObjectID `json:"product" bson:"product" validate:"required"`
	Quantity int           `json:"quantity" bson:"quantity" validate:"required,gte=1"`
}

// Order is the persisted record of a placed order. Amount is the cart's
// stored total at placement time, not independently recomputed.
type Order struct {
	ID              bson.ObjectID `json:"id" bson:"_id,omitempty"`
	User            bson.ObjectID `json:"user" bson:"user" validate:"required"`
	Products        []OrderItem   `json:"products" bson:"products" validate:"required,min=1,dive"`
	Amount          float64       `json:"amount" bson:"amount" validate:"required"`
	PaymentID       string        `json:"paymentId,omitempty" bson:"payment_id,omitempty"`
	OrderID         string        `json:"orderId,omitempty" bson:"order_id,omitempty"`
	ShippingAddress string        `json:"shippingAddress,omitempty" bson:"shipping_address,omitempty"`
	Status          string        `json:"status" bson:"status" validate:"required,oneof=pending paid failed"`
	CreatedAt       time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" bson:"updated_at"`
}

type PlaceOrderRequest struct {
	ShippingAddress string `json:"shippingAddress"`
	PaymentIntentID string `json:"paymentIntentId"`
	OrderID         string `json:"orderId"`
}

// OrderFromCart snapshots the cart's lines and stored total into a new
// paid order for the user.
func OrderFromCart(cart *Cart, req *PlaceOrderRequest) *Order {
	now := time.Now()
	products := make([]OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		products = append(products, OrderItem{
			Product:  item.Product,
			Quantity: item.Quantity,
		})
	}
	return &Order{
		ID:              bson.NewObjectID(),
		User:            cart.User,
		Products:        products,
		Amount:          cart.TotalPrice,
		PaymentID:       req.PaymentIntentID,
		OrderID:         req.OrderID,
		ShippingAddress: req.ShippingAddress,
		Status:          OrderStatusPaid,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (o *Order) SetTimestamps() {
	now := time.Now()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.UpdatedAt = now
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ShippingDetails is a mailing-address snapshot captured at checkout.
// OrderID optionally links the snapshot to the order it was collected for;
// older records without it are informational only.
type ShippingDetails struct {
	ID        bson.ObjectID  `json:"id" bson:"_id,omitempty"`
	FullName  string         `json:"fullName" bson:"full_name" validate:"required"`
	Email     string         `json:"email" bson:"email" validate:"required,email"`
	Phone     string         `json:"phone" bson:"phone" validate:"required"`
	Address   string         `json:"address" bson:"address" validate:"required"`
	City      string         `json:"city" bson:"city" validate:"required"`
	State     string         `json:"state" bson:"state" validate:"required"`
	Country   string         `json:"country" bson:"country" validate:"required"`
	Pincode   string         `json:"pincode" bson:"pincode" validate:"required"`
	OrderID   *bson.ObjectID `json:"orderId,omitempty" bson:"order_id,omitempty"`
	CreatedAt time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" bson:"updated_at"`
}

type CreateShippingRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Address  string `json:"address" binding:"required"`
	City     string `json:"city" binding:"required"`
	State    string `json:"state" binding:"required"`
	Country  string `json:"country" binding:"required"`
	Pincode  string `json:"pincode" binding:"required"`
	OrderID  string `json:"orderId"`
}

func (req *CreateShippingRequest) ToShippingDetails() (*ShippingDetails, error) {
	now := time.Now()
	details := &ShippingDetails{
		ID:        bson.NewObjectID(),
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		Country:   req.Country,
		Pincode:   req.Pincode,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.OrderID != "" {
		orderID, err := bson.ObjectIDFromHex(req.OrderID)
		if err != nil {
			return nil, err
		}
		details.OrderID = &orderID
	}
	return details, nil
}

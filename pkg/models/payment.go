package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

// PaymentCartItem is a copied-at-verification snapshot of one cart line,
// decoupled from later catalog changes.
type PaymentCartItem struct {
	ProductID string  `json:"productId" bson:"product_id"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price" validate:"gte=0"`
	Quantity  int     `json:"quantity" bson:"quantity" validate:"gte=1"`
	Image     string  `json:"image,omitempty" bson:"image,omitempty"`
}

// PaymentUserDetails embeds the buyer's profile fields at verification
// time. UserID may be empty for guest checkouts.
type PaymentUserDetails struct {
	UserID   *bson.ObjectID `json:"userId,omitempty" bson:"user_id,omitempty"`
	Username string         `json:"username,omitempty" bson:"username,omitempty"`
	Email    string         `json:"email,omitempty" bson:"email,omitempty"`
	Phone    string         `json:"phone,omitempty" bson:"phone,omitempty"`
}

// PaymentShippingDetails is the shipping snapshot embedded in the record.
type PaymentShippingDetails struct {
	FullName string `json:"fullName" bson:"full_name"`
	Address  string `json:"address" bson:"address"`
	City     string `json:"city" bson:"city"`
	State    string `json:"state" bson:"state"`
	Pincode  string `json:"pincode" bson:"pincode"`
	Phone    string `json:"phone" bson:"phone"`
	Country  string `json:"country" bson:"country"`
}

// Payment is the persisted confirmation of a verified gateway payment.
// Amount is in paise (minor currency units). RazorpayPaymentID carries a
// unique index so a replayed verification surfaces as a conflict instead
// of silently succeeding twice.
type Payment struct {
	ID                bson.ObjectID          `json:"id" bson:"_id,omitempty"`
	RazorpayOrderID   string                 `json:"razorpay_order_id" bson:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string                 `json:"razorpay_payment_id" bson:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string                 `json:"razorpay_signature" bson:"razorpay_signature" validate:"required"`
	Amount            int64                  `json:"amount" bson:"amount" validate:"gte=0"`
	CartItems         []PaymentCartItem      `json:"cartItems" bson:"cart_items"`
	UserDetails       PaymentUserDetails     `json:"userDetails" bson:"user_details"`
	User              *bson.ObjectID         `json:"user,omitempty" bson:"user,omitempty"`
	ShippingDetails   PaymentShippingDetails `json:"shippingDetails" bson:"shipping_details"`
	PaymentStatus     string                 `json:"paymentStatus" bson:"payment_status" validate:"oneof=pending completed failed refunded"`
	PaymentMethod     string                 `json:"paymentMethod" bson:"payment_method"`
	Currency          string                 `json:"currency" bson:"currency"`
	CreatedAt         time.Time              `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at" bson:"updated_at"`
}

type CheckoutRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// VerifyPaymentRequest is the client-returned gateway confirmation plus
// the snapshots to embed. The three gateway identifiers are mandatory;
// everything else falls back to empty values.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string                 `json:"razorpay_order_id"`
	RazorpayPaymentID string                 `json:"razorpay_payment_id"`
	RazorpaySignature string                 `json:"razorpay_signature"`
	CartItems         []VerifyCartItem       `json:"cartItems"`
	Amount            int64                  `json:"amount"`
	UserDetails       VerifyUserDetails      `json:"userDetails"`
	ShippingDetails   PaymentShippingDetails `json:"shippingDetails"`
}

type VerifyCartItem struct {
	ProductID string  `json:"productId"`
	ID        string  `json:"_id"`
	Name      string  `json:"name"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

type VerifyUserDetails struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// MissingFields enumerates which of the three gateway identifiers are
// absent, in the response shape the storefront expects.
func (req *VerifyPaymentRequest) MissingFields() map[string]bool {
	missing := map[string]bool{
		"order_id":   req.RazorpayOrderID == "",
		"payment_id": req.RazorpayPaymentID == "",
		"signature":  req.RazorpaySignature == "",
	}
	for _, absent := range missing {
		if absent {
			return missing
		}
	}
	return nil
}

// NormalizeCartItems converts the loosely-typed client snapshot into the
// persisted shape: productId falls back to _id, name to title, and
// quantities below 1 become 1.
func (req *VerifyPaymentRequest) NormalizeCartItems() []PaymentCartItem {
	items := make([]PaymentCartItem, 0, len(req.CartItems))
	for _, item := range req.CartItems {
		productID := item.ProductID
		if productID == "" {
			productID = item.ID
		}
		name := item.Name
		if name == "" {
			name = item.Title
		}
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		items = append(items, PaymentCartItem{
			ProductID: productID,
			Name:      name,
			Price:     item.Price,
			Quantity:  quantity,
			Image:     item.Image,
		})
	}
	return items
}

func (p *Payment) SetTimestamps() {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}

// TotalItems returns the summed quantity across the embedded snapshot.
func (p *Payment) TotalItems() int {
	var count int
	for _, item := range p.CartItems {
		count += item.Quantity
	}
	return count
}

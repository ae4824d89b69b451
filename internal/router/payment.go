package router

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/canvascart/go-api/pkg/global"
	"github.com/canvascart/go-api/pkg/models"
	"github.com/canvascart/go-api/pkg/mongo"
	"github.com/canvascart/go-api/pkg/razorpay"
)

// CheckoutPayment creates a gateway order for the requested amount in
// paise and returns the gateway's response unchanged.
func CheckoutPayment(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Amount is required", []global.ValidationError{
			{Field: "amount", Message: "Amount in paise is required and must be positive", Code: "required"},
		}))
		return
	}

	client, err := razorpay.NewFromEnv()
	if err != nil {
		log.Printf("Razorpay configuration error: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Payment gateway not configured", nil))
		return
	}

	order, err := client.CreateOrder(c.Request.Context(), req.Amount, "INR", razorpay.NewReceipt())
	if err != nil {
		log.Printf("Razorpay order creation error: %v", err)
		message := "Failed to create payment order"
		if !global.IsProduction() {
			message = err.Error()
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse(message, nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{"order": order}))
}

// VerifyPayment checks the gateway confirmation and persists one payment
// record. The linear sequence: reject missing identifiers, reject an
// unconfigured secret, recompute and compare the HMAC, then persist.
func VerifyPayment(c *gin.Context) {
	var req models.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	if missing := req.MissingFields(); missing != nil {
		errs := []global.ValidationError{}
		for field, absent := range missing {
			if absent {
				errs = append(errs, global.ValidationError{Field: field, Message: "required payment detail missing", Code: "required"})
			}
		}
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Missing required payment details", errs))
		return
	}

	secret := global.GetEnvOrDefault("RAZORPAY_SECRET", "")
	if secret == "" {
		log.Println("Razorpay secret not configured")
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Payment verification configuration error", nil))
		return
	}

	if !razorpay.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, secret) {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Payment verification failed - invalid signature", nil))
		return
	}

	ctx := c.Request.Context()

	// The signature only binds the order and payment ids. Cross-check
	// the client-supplied amount against the gateway's own record when
	// the adapter is configured; on fetch failure the client amount is
	// kept and the gap is logged.
	amount := req.Amount
	if client, err := razorpay.NewFromEnv(); err == nil {
		if order, err := client.FetchOrder(ctx, req.RazorpayOrderID); err == nil {
			if order.Amount != amount {
				log.Printf("Warning: client amount %d differs from gateway amount %d for order %s, using gateway amount",
					amount, order.Amount, req.RazorpayOrderID)
			}
			amount = order.Amount
		} else {
			log.Printf("Warning: could not fetch gateway order %s for amount cross-check: %v", req.RazorpayOrderID, err)
		}
	}

	userDetails := models.PaymentUserDetails{
		Username: req.UserDetails.Username,
		Email:    req.UserDetails.Email,
		Phone:    req.UserDetails.Phone,
	}
	if req.UserDetails.UserID != "" {
		if id, err := bson.ObjectIDFromHex(req.UserDetails.UserID); err == nil {
			userDetails.UserID = &id
		}
	}

	// A valid session enriches the record with the caller's profile;
	// client-supplied values are the fallback for guests.
	if callerHex := c.GetString(ctxUserID); callerHex != "" {
		if id, err := bson.ObjectIDFromHex(callerHex); err == nil {
			if user, err := mongo.GetUserByID(ctx, id); err == nil {
				userDetails.UserID = &user.ID
				userDetails.Username = user.Username
				userDetails.Email = user.Email
				if user.Phone != "" {
					userDetails.Phone = user.Phone
				}
			} else {
				log.Printf("Warning: could not fetch authenticated user: %v", err)
			}
		}
	}

	payment := &models.Payment{
		ID:                bson.NewObjectID(),
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpayPaymentID: req.RazorpayPaymentID,
		RazorpaySignature: req.RazorpaySignature,
		Amount:            amount,
		CartItems:         req.NormalizeCartItems(),
		UserDetails:       userDetails,
		User:              userDetails.UserID,
		ShippingDetails:   req.ShippingDetails,
		PaymentStatus:     models.PaymentStatusCompleted,
		PaymentMethod:     "razorpay",
		Currency:          "INR",
	}
	payment.SetTimestamps()

	if err := mongo.CreatePayment(ctx, payment); err != nil {
		if errors.Is(err, mongo.ErrDuplicateKey) {
			c.JSON(http.StatusConflict, global.ErrorResponse("Payment already recorded", []global.ValidationError{
				{Field: "razorpay_payment_id", Message: "A payment with this id was already verified", Code: "duplicate"},
			}))
			return
		}
		log.Printf("Payment persistence error: %v", err)
		message := "Payment verification failed due to server error"
		if !global.IsProduction() {
			message = err.Error()
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse(message, nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"message": "Payment verified and saved successfully",
		"payment": payment,
	}))
}

func GetPaymentByID(c *gin.Context) {
	id, err := bson.ObjectIDFromHex(c.Param("paymentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid payment ID format", []global.ValidationError{
			{Field: "paymentId", Message: "Must be a valid ObjectID", Code: "invalid_format"},
		}))
		return
	}

	payment, err := mongo.GetPaymentByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Payment not found", nil))
			return
		}
		log.Printf("Error fetching payment: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch payment", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(payment))
}

func GetUserPayments(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid session", nil))
		return
	}

	payments, err := mongo.GetPaymentsByUser(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error fetching user payments: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch payments", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(payments))
}

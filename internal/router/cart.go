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
)

func AddToCart(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid session", nil))
		return
	}

	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	productID, err := bson.ObjectIDFromHex(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid or missing product ID", []global.ValidationError{
			{Field: "productId", Message: "Must be a valid ObjectID", Code: "invalid_format"},
		}))
		return
	}

	cart, err := mongo.AddCartItem(c.Request.Context(), userID, productID, req.Quantity)
	if err != nil {
		if errors.Is(err, mongo.ErrNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", nil))
			return
		}
		log.Printf("Error adding to cart: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Add to cart failed", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"message": "Item added to cart",
		"cart":    cart,
	}))
}

// GetCart returns the cart with items expanded to full product documents.
// A user without a cart gets an empty shape, not an error.
func GetCart(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid session", nil))
		return
	}

	cart, err := mongo.GetExpandedCart(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNotFound) {
			c.JSON(http.StatusOK, global.SuccessResponse(models.ExpandedCart{
				Items:      []models.ExpandedCartItem{},
				TotalPrice: 0,
			}))
			return
		}
		log.Printf("Error fetching cart: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Get cart failed", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(cart))
}

func UpdateQuantityInCart(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid session", nil))
		return
	}

	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	productID, err := bson.ObjectIDFromHex(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid or missing product ID", []global.ValidationError{
			{Field: "productId", Message: "Must be a valid ObjectID", Code: "invalid_format"},
		}))
		return
	}

	cart, err := mongo.AdjustCartQuantity(c.Request.Context(), userID, productID, req.Type)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNotFound):
			c.JSON(http.StatusNotFound, global.ErrorResponse("Cart not found", nil))
		case errors.Is(err, mongo.ErrItemNotFound):
			c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found in cart", nil))
		default:
			log.Printf("Error updating cart: %v", err)
			c.JSON(http.StatusInternalServerError, global.ErrorResponse("Update cart failed", nil))
		}
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"message": "Cart updated",
		"cart":    cart,
	}))
}

// RemoveFromCart filters the line out. Removing a product that was never
// in the cart still succeeds.
func RemoveFromCart(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid session", nil))
		return
	}

	productID, err := bson.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid product ID format", []global.ValidationError{
			{Field: "productId", Message: "Must be a valid ObjectID", Code: "invalid_format"},
		}))
		return
	}

	cart, err := mongo.RemoveCartItem(c.Request.Context(), userID, productID)
	if err != nil {
		if errors.Is(err, mongo.ErrNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Cart not found", nil))
			return
		}
		log.Printf("Error removing from cart: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Remove from cart failed", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"message": "Item removed from cart",
		"cart":    cart,
	}))
}

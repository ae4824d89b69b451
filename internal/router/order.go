package router

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/canvascart/go-api/pkg/global"
	"github.com/canvascart/go-api/pkg/models"
	"github.com/canvascart/go-api/pkg/mongo"
)

// PlaceOrder converts the caller's cart into an order and clears the
// cart in the same transaction.
func PlaceOrder(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid session", nil))
		return
	}

	var req models.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	order, err := mongo.PlaceOrder(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, mongo.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("Cart is empty", nil))
			return
		}
		log.Printf("Error placing order: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to place order", nil))
		return
	}

	c.JSON(http.StatusCreated, global.SuccessResponse(map[string]interface{}{
		"message": "Order placed successfully",
		"order":   order,
	}))
}

// GetUserOrders lists the caller's orders, newest first.
func GetUserOrders(c *gin.Context) {
	userID, err := callerID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid session", nil))
		return
	}

	orders, err := mongo.GetOrdersByUser(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error fetching orders: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch orders", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(orders))
}

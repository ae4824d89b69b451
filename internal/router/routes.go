package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/canvascart/go-api/pkg/global"
	"github.com/canvascart/go-api/pkg/mongo"
)

func InitializeRoutes() {
	api := Router.Group("/api")
	{
		api.GET("/health", HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/signup", Signup)
			auth.POST("/login", Login)
		}

		products := api.Group("/products")
		{
			products.GET("/", GetAllProducts)
			products.GET("/:id", GetProductByID)
			products.POST("/", Protect(), RequireAdmin(), AddProduct)
			products.PUT("/:id", Protect(), RequireAdmin(), UpdateProduct)
			products.DELETE("/:id", Protect(), RequireAdmin(), DeleteProduct)
		}

		cart := api.Group("/cart")
		cart.Use(Protect())
		{
			cart.POST("/add", AddToCart)
			cart.GET("/", GetCart)
			cart.PATCH("/update", UpdateQuantityInCart)
			cart.DELETE("/remove/:productId", RemoveFromCart)
		}

		user := api.Group("/user")
		{
			user.GET("/fetch", Protect(), GetUserProfile)
			user.PUT("/update", Protect(), UpdateUserProfile)
			user.GET("/all", Protect(), RequireAdmin(), GetAllUsers)
			user.PUT("/update-role", Protect(), UpdateUserRole)
		}

		orders := api.Group("/orders")
		{
			orders.POST("/place", Protect(), PlaceOrder)
			orders.GET("/", Protect(), GetUserOrders)
		}

		favorites := api.Group("/favorites")
		favorites.Use(Protect())
		{
			favorites.POST("/add", AddToFavorites)
			favorites.GET("/", GetFavorites)
			favorites.DELETE("/remove/:productId", RemoveFromFavorites)
		}

		reviews := api.Group("/reviews")
		{
			reviews.POST("/:productId", Protect(), AddReview)
			reviews.GET("/product/:productId", GetReviewsByProduct)
			reviews.PUT("/:reviewId", Protect(), UpdateReview)
			reviews.DELETE("/:reviewId", Protect(), DeleteReview)
		}

		checkout := api.Group("/checkout")
		{
			checkout.POST("/", AddShippingDetails)
			checkout.GET("/", GetAllShippingDetails)
			checkout.DELETE("/:id", DeleteShippingDetails)
		}

		payment := api.Group("/payment")
		{
			payment.POST("/checkout", CheckoutPayment)
			payment.POST("/verify", OptionalAuth(), VerifyPayment)
			payment.GET("/history", Protect(), GetUserPayments)
			payment.GET("/:paymentId", Protect(), GetPaymentByID)
		}
	}
}

func HealthCheck(c *gin.Context) {
	if err := mongo.GetClient().Ping(c, nil); err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Database connection failed", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"status": "OK", "database": "Connected"}))
}

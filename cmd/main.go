package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/canvascart/go-api/internal/router"
	"github.com/canvascart/go-api/pkg/global"
	"github.com/canvascart/go-api/pkg/mongo"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Missing JWT_SECRET aborts here rather than on the first login.
	global.GetJWTSecret()

	mongo.InitMongoDB()
	mongo.EnsureIndexesOnStartup()
	router.InitEngine()
	router.InitializeRoutes()

	port := global.GetEnvOrDefault("PORT", "8000")
	log.Printf("Server is running on port %s", port)

	if err := router.Router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

package main

import (
	"fmt"
	"os"
	"time"

	"parcel-delivery/cache"
	"parcel-delivery/database"
	"parcel-delivery/logger"
	"parcel-delivery/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	app := fiber.New(fiber.Config{
		ReadBufferSize:  32768,
		WriteBufferSize: 32768,
		ReadTimeout:     time.Second * 30,
		WriteTimeout:    time.Second * 30,
	})

	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
		fmt.Println("Error loading .env file", err)
	}

	if os.Getenv("PAYMENT_SECRET_KEY") == "" {
		logger.Error("PAYMENT_SECRET_KEY is not set", nil)
		return
	}
	if os.Getenv("PUBLIC_KEY_URL") == "" {
		logger.Error("PUBLIC_KEY_URL is not set", nil)
		return
	}

	db, err := database.InitDB()
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return
	}

	// Optional cache; nil disables it.
	rdb := cache.NewRedisClient()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     os.Getenv("FRONTEND_URL"),
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	routes.SetupRoutes(app, db, rdb)

	appHost := os.Getenv("APP_HOST")
	appPort := os.Getenv("APP_PORT")
	logger.Success("Server is running on ip: " + appHost + " port: " + appPort)

	if err := app.Listen(appHost + ":" + appPort); err != nil {
		logger.Error("Server stopped", err)
	}
}

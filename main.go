package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/bharathdoli/UpsideDown-sub000/src/core/config"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/database"
	"github.com/bharathdoli/UpsideDown-sub000/src/core/router"
	"github.com/bharathdoli/UpsideDown-sub000/src/modules/notifications"
)

func main() {
	// Initialize the Fiber app
	app := fiber.New()

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(requestid.New())

	// Setup environment variables
	config.SetupEnv()

	// Connect to the database
	database.ConnectDB()

	// Fan out notification pushes to connected clients
	go notifications.BroadcastNotifications()

	// Set up routes
	router.InitialiseAndSetupRoutes(app)

	// Get port from config and start the server
	port := config.Config("APP_PORT")
	if port == "" {
		port = "8080"
	}
	log.Fatal(app.Listen(fmt.Sprintf(":%s", port)))
}

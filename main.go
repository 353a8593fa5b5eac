package main

import (
	"log"

	"edulearn/config"
	"edulearn/database"
	"edulearn/repository"
	adminRoutes "edulearn/routers/adminRoutes"
	authRoutes "edulearn/routers/authRoutes"
	courseRoutes "edulearn/routers/courseRoutes"
	ratingRoutes "edulearn/routers/ratingRoutes"
	sessionRoutes "edulearn/routers/sessionRoutes"
	subscriptionRoutes "edulearn/routers/subscriptionRoutes"
	"edulearn/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Database startup failed: %v", err)
	}

	repos := repository.New(db)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173",
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders:     "Content-Type",
		AllowCredentials: true,
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app, repos)
	courseRoutes.SetupCourseRoutes(app, repos)
	subscriptionRoutes.SetupSubscriptionRoutes(app, repos)
	ratingRoutes.SetupRatingRoutes(app, repos)
	sessionRoutes.SetupSessionRoutes(app, repos)
	adminRoutes.SetupAdminRoutes(app, repos)

	utils.InitializeSessionScheduler(repos.Sessions)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}

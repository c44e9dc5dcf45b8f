package main

import (
	"log"

	"learnhub/config"
	authControllers "learnhub/controllers/auth"
	checkoutControllers "learnhub/controllers/checkout"
	courseControllers "learnhub/controllers/course"
	"learnhub/database"
	"learnhub/payments"
	authRoutes "learnhub/routers/authRoutes"
	checkoutRoutes "learnhub/routers/checkoutRoutes"
	courseRoutes "learnhub/routers/courseRoutes"
	"learnhub/store"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	db := database.Connect()

	// Stores
	ledger := store.NewPurchaseLedger(db)
	progress := store.NewProgressTracker(db)
	sessions := store.NewCheckoutSessions(db)
	access := store.NewAccessPolicy(ledger, config.AppConfig.AccessFailOpen)

	// External service clients
	stripe := payments.NewStripeClient(config.AppConfig.StripeApiURL, config.AppConfig.StripeApiKey, config.AppConfig.SiteURL)
	mailer := utils.NewMailer(utils.NewSendGridSender(config.AppConfig.SendGridApiKey, config.AppConfig.EmailFromName, config.AppConfig.EmailSender))

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app, authControllers.New(db, mailer))
	courseRoutes.SetupCourseRoutes(app, courseControllers.New(db, ledger, access, progress))
	checkoutRoutes.SetupCheckoutRoutes(app, checkoutControllers.New(db, ledger, sessions, stripe, mailer))

	utils.InitializeSessionSweeper(sessions)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}

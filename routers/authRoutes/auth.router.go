package authRoutes

import (
	authControllers "learnhub/controllers/auth"
	authValidators "learnhub/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, ctl *authControllers.Controller) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), ctl.Signup)
	authGroup.Post("/login", authValidators.Login(), ctl.Login)
}

package checkoutRoutes

import (
	checkoutControllers "learnhub/controllers/checkout"
	"learnhub/middleware"
	checkoutValidators "learnhub/validators/checkout"

	"github.com/gofiber/fiber/v2"
)

func SetupCheckoutRoutes(app *fiber.App, ctl *checkoutControllers.Controller) {
	checkoutGroup := app.Group("/checkout")

	checkoutGroup.Post("/", checkoutValidators.CreateSession(), ctl.CreateSession)
	checkoutGroup.Post("/confirm", middleware.JWTMiddleware, checkoutValidators.Confirm(), ctl.Confirm)
}

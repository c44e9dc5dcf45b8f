package courseRoutes

import (
	courseControllers "learnhub/controllers/course"
	"learnhub/middleware"
	courseValidators "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App, ctl *courseControllers.Controller) {
	courseGroup := app.Group("/course")

	// Catalog listing is the public storefront page
	courseGroup.Get("/list", courseValidators.CourseList(), ctl.GetAllCourses)

	// Detail carries the requesting user's access decision and progress
	courseGroup.Get("/:id", middleware.JWTMiddleware, courseValidators.CourseID(), ctl.GetCourseDetails)

	// Playback progress
	courseGroup.Get("/:id/progress", middleware.JWTMiddleware, courseValidators.CourseID(), ctl.GetProgress)
	courseGroup.Post("/:id/progress", middleware.JWTMiddleware, courseValidators.CourseID(), courseValidators.SaveProgress(), ctl.SaveProgress)

	// Purchased courses dashboard
	userGroup := app.Group("/user")
	userGroup.Get("/courses", middleware.JWTMiddleware, ctl.GetMyCourses)
}

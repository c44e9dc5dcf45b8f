package checkoutValidator

import (
	"strconv"
	"strings"

	"learnhub/middleware"
	"learnhub/payments"

	"github.com/gofiber/fiber/v2"
)

// CreateSession validates the checkout request body:
// {course: {id, title, description, price}} with price in minor currency
// units and strictly positive.
func CreateSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Course *struct {
				ID          uint   `json:"id"`
				Title       string `json:"title"`
				Description string `json:"description"`
				Price       int64  `json:"price"`
			} `json:"course"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Course == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course is required!", nil)
		}

		course := reqData.Course
		if course.ID == 0 || strings.TrimSpace(course.Title) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID, title, and price are required!", nil)
		}

		if course.Price <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course price!", nil)
		}

		c.Locals("validatedCheckout", &payments.CheckoutItem{
			CourseID:    course.ID,
			Title:       course.Title,
			Description: course.Description,
			Price:       course.Price,
		})
		return c.Next()
	}
}

// Confirm validates the payment provider's return-callback parameters.
// They arrive as query parameters on the success redirect.
func Confirm() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := strings.TrimSpace(c.Query("session_id"))
		if sessionID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid payment session! Please contact support.", nil)
		}

		courseIDStr := strings.TrimSpace(c.Query("course_id"))
		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("sessionID", sessionID)
		c.Locals("courseID", courseID)
		return c.Next()
	}
}

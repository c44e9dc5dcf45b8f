package checkoutController

import (
	"log"

	"learnhub/middleware"
	"learnhub/models"
	"learnhub/payments"
	"learnhub/store"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Controller glues the hosted payment provider to the purchase ledger.
type Controller struct {
	DB       *gorm.DB
	Ledger   *store.PurchaseLedger
	Sessions *store.CheckoutSessions
	Payments payments.SessionCreator
	Mailer   *utils.Mailer
}

func New(db *gorm.DB, ledger *store.PurchaseLedger, sessions *store.CheckoutSessions, creator payments.SessionCreator, mailer *utils.Mailer) *Controller {
	return &Controller{DB: db, Ledger: ledger, Sessions: sessions, Payments: creator, Mailer: mailer}
}

// CreateSession opens a hosted checkout session for the course and returns
// its redirect URL.
func (ctl *Controller) CreateSession(c *fiber.Ctx) error {
	item, ok := c.Locals("validatedCheckout").(*payments.CheckoutItem)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	session, err := ctl.Payments.CreateSession(*item)
	if err != nil {
		log.Printf("[CHECKOUT] Session creation failed for course %d: %v", item.CourseID, err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to create checkout session!", nil)
	}

	// Bookkeeping only; the ledger write at callback time is what grants access
	if err := ctl.Sessions.Track(session.ID, item.CourseID, item.Price); err != nil {
		log.Printf("[CHECKOUT] Failed to track session %s: %v", session.ID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Checkout session created!", fiber.Map{
		"sessionId": session.ID,
		"url":       session.URL,
	})
}

// Confirm reconciles the payment provider's return callback: the user has
// paid on the hosted page and came back with a session id and course id.
// The ledger write is the durability boundary; the receipt email downstream
// of it is fire-and-forget.
func (ctl *Controller) Confirm(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Please log in to complete your purchase!", nil)
	}

	sessionID := c.Locals("sessionID").(string)
	courseID := c.Locals("courseID").(int)

	var user models.User
	if err := ctl.DB.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var course models.Course
	if err := ctl.DB.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found! Contact support with session "+sessionID, nil)
	}

	alreadyRecorded, err := ctl.Ledger.Record(userID, course.ID, sessionID)
	if err != nil {
		// The payment succeeded upstream; surface a reference id the user
		// can quote so support can reconcile manually.
		referenceID := uuid.NewString()
		log.Printf("[CHECKOUT] Ledger write failed (ref %s, session %s, user %d, course %d): %v", referenceID, sessionID, userID, course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false,
			"Failed to complete enrollment! Contact support with reference "+referenceID+" and session "+sessionID, nil)
	}

	if err := ctl.Sessions.MarkCompleted(sessionID); err != nil {
		log.Printf("[CHECKOUT] Failed to mark session %s complete: %v", sessionID, err)
	}

	if !alreadyRecorded {
		userName := user.Name
		if userName == "" {
			userName = "Learner"
		}
		ctl.Mailer.SendPurchaseEmail(user.Email, userName, course.Title, course.Price)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment confirmed!", fiber.Map{
		"course_id":        course.ID,
		"session_id":       sessionID,
		"already_recorded": alreadyRecorded,
	})
}

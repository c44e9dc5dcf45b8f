package courseController

import (
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/store"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Controller holds the catalog and playback handlers' dependencies.
type Controller struct {
	DB       *gorm.DB
	Ledger   *store.PurchaseLedger
	Access   *store.AccessPolicy
	Progress *store.ProgressTracker
}

func New(db *gorm.DB, ledger *store.PurchaseLedger, access *store.AccessPolicy, progress *store.ProgressTracker) *Controller {
	return &Controller{DB: db, Ledger: ledger, Access: access, Progress: progress}
}

// GetAllCourses lists published courses. Public: this is the storefront page.
func (ctl *Controller) GetAllCourses(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourseList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	db := ctl.DB.Model(&models.Course{}).Where("is_deleted = ? AND is_published = ?", false, true)

	if !ok {
		var courses []models.Course
		if err := db.Order("created_at desc").Find(&courses).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
			"courses": courses,
		})
	}

	page := *reqData.Page
	limit := *reqData.Limit
	offset := (page - 1) * limit

	var total int64
	db.Count(&total)

	var courses []models.Course
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	response := map[string]interface{}{
		"courses": courses,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", response)
}

// GetCourseDetails returns a course together with the requesting user's
// access decision and stored progress. The access check runs against the
// ledger on every load, never from a cache.
func (ctl *Controller) GetCourseDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := ctl.DB.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	hasAccess := ctl.Access.CanAccess(userID, course.ID)

	progress := 0
	if hasAccess {
		progress = ctl.Progress.Get(userID, course.ID)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":     course,
		"has_access": hasAccess,
		"progress":   progress,
	})
}

// GetMyCourses lists the user's purchased courses joined with progress.
func (ctl *Controller) GetMyCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	purchases, err := ctl.Ledger.ListByUser(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch purchases!", nil)
	}

	type ownedCourse struct {
		models.Course
		Progress  int    `json:"progress"`
		Completed bool   `json:"completed"`
		SessionID string `json:"session_id"`
	}

	owned := make([]ownedCourse, 0, len(purchases))
	for _, purchase := range purchases {
		var course models.Course
		if err := ctl.DB.Where("id = ? AND is_deleted = ?", purchase.CourseID, false).First(&course).Error; err != nil {
			// Course removed from catalog after purchase; skip the row
			continue
		}
		progress := ctl.Progress.Get(userID, course.ID)
		owned = append(owned, ownedCourse{
			Course:    course,
			Progress:  progress,
			Completed: progress == 100,
			SessionID: purchase.SessionID,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchased courses fetched successfully!", fiber.Map{
		"courses": owned,
	})
}

// GetProgress returns the stored percentage for the course.
func (ctl *Controller) GetProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"progress": ctl.Progress.Get(userID, uint(courseID)),
	})
}

// SaveProgress stores a playback milestone reported by the video player.
// Writes are accepted only from purchasers. just_completed is true only on
// the first transition to 100, so the player congratulates once.
func (ctl *Controller) SaveProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	percent := c.Locals("validatedProgress").(int)

	if !ctl.Access.CanAccess(userID, uint(courseID)) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please purchase this course first!", nil)
	}

	wasCompleted := ctl.Progress.Get(userID, uint(courseID)) == 100

	record, err := ctl.Progress.Save(userID, uint(courseID), percent)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress saved successfully!", fiber.Map{
		"progress":       record.Progress,
		"completed":      record.Completed,
		"just_completed": record.Completed && !wasCompleted,
	})
}

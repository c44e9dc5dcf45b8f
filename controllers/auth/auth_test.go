package authController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"learnhub/config"
	authController "learnhub/controllers/auth"
	"learnhub/models"
	authRoutes "learnhub/routers/authRoutes"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeEmailSender struct {
	mu   sync.Mutex
	sent []string
}

func (f *fakeEmailSender) Send(to, subject, htmlBody string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, to)
	return nil
}

func (f *fakeEmailSender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type apiResponse struct {
	Status  bool                   `json:"status"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

func setupAuthApp(t *testing.T) (*fiber.App, *gorm.DB, *fakeEmailSender) {
	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.User{}))

	emails := &fakeEmailSender{}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app, authController.New(db, utils.NewMailer(emails)))

	return app, db, emails
}

func postJSON(app *fiber.App, path string, body interface{}) (*http.Response, apiResponse, error) {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 5000)
	if err != nil {
		return nil, apiResponse{}, err
	}

	var parsed apiResponse
	err = json.NewDecoder(resp.Body).Decode(&parsed)
	return resp, parsed, err
}

func TestSignupCreatesUserAndSendsWelcome(t *testing.T) {
	app, db, emails := setupAuthApp(t)

	resp, parsed, err := postJSON(app, "/auth/signup", fiber.Map{
		"name":     "Ada Lovelace",
		"email":    "ada@example.com",
		"password": "supersecret",
	})
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, parsed.Data["token"])

	var user models.User
	assert.NoError(t, db.Where("email = ?", "ada@example.com").First(&user).Error)
	assert.NotEqual(t, "supersecret", user.Password) // stored hashed

	assert.Eventually(t, func() bool { return emails.count() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	app, _, _ := setupAuthApp(t)

	body := fiber.Map{"name": "Ada", "email": "ada@example.com", "password": "supersecret"}

	resp, _, err := postJSON(app, "/auth/signup", body)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, parsed, err := postJSON(app, "/auth/signup", body)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Contains(t, parsed.Message, "already registered")
}

func TestLoginVerifiesPassword(t *testing.T) {
	app, _, _ := setupAuthApp(t)

	_, _, err := postJSON(app, "/auth/signup", fiber.Map{
		"name": "Ada", "email": "ada@example.com", "password": "supersecret",
	})
	assert.NoError(t, err)

	resp, parsed, err := postJSON(app, "/auth/login", fiber.Map{
		"email": "ada@example.com", "password": "supersecret",
	})
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, parsed.Data["token"])

	resp, _, err = postJSON(app, "/auth/login", fiber.Map{
		"email": "ada@example.com", "password": "wrongpassword",
	})
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSignupValidation(t *testing.T) {
	app, _, _ := setupAuthApp(t)

	resp, _, err := postJSON(app, "/auth/signup", fiber.Map{
		"name": "Ada", "email": "not-an-email", "password": "short",
	})
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

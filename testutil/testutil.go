// Package testutil wires a full application instance over an in-memory
// sqlite database so handler tests can exercise real routes, middleware and
// storage constraints through app.Test.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"edulearn/config"
	"edulearn/database"
	"edulearn/middleware"
	"edulearn/models"
	"edulearn/repository"
	adminRoutes "edulearn/routers/adminRoutes"
	authRoutes "edulearn/routers/authRoutes"
	courseRoutes "edulearn/routers/courseRoutes"
	ratingRoutes "edulearn/routers/ratingRoutes"
	sessionRoutes "edulearn/routers/sessionRoutes"
	subscriptionRoutes "edulearn/routers/subscriptionRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// TestPassword is the plaintext password of every user created by CreateUser.
const TestPassword = "SecurePass123!"

// Setup opens a fresh in-memory database, runs the production migrations and
// returns constructed repositories.
func Setup(t *testing.T) (*repository.Repositories, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:      "3000",
		Env:       "test",
		JWTKey:    "test-signing-secret",
		SaltRound: bcrypt.MinCost,
	}

	// A named shared-cache DSN keeps every pooled connection on the same
	// in-memory database.
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return repository.New(db), db
}

// NewApp builds a fiber app with the full route surface over the given
// repositories.
func NewApp(repos *repository.Repositories) *fiber.App {
	app := fiber.New()

	authRoutes.SetupAuthRoutes(app, repos)
	courseRoutes.SetupCourseRoutes(app, repos)
	subscriptionRoutes.SetupSubscriptionRoutes(app, repos)
	ratingRoutes.SetupRatingRoutes(app, repos)
	sessionRoutes.SetupSessionRoutes(app, repos)
	adminRoutes.SetupAdminRoutes(app, repos)

	return app
}

// CreateUser persists a user with the given role and returns it.
func CreateUser(t *testing.T, repos *repository.Repositories, role, email string) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  string(hashed),
		Role:      role,
	}
	if err := repos.Users.Create(user); err != nil {
		t.Fatalf("failed to create user %s: %v", email, err)
	}
	return user
}

// CreateCourse persists a course owned by the given user.
func CreateCourse(t *testing.T, repos *repository.Repositories, owner *models.User, title string) *models.Course {
	t.Helper()

	course := &models.Course{
		Title:       title,
		Description: "A course used in tests",
		Subject:     "Testing",
		CreatedByID: owner.ID,
	}
	if err := repos.Courses.Create(course); err != nil {
		t.Fatalf("failed to create course %q: %v", title, err)
	}
	return course
}

// AuthCookie returns a signed edutoken cookie for the user.
func AuthCookie(t *testing.T, user *models.User) *http.Cookie {
	t.Helper()

	token, err := middleware.GenerateJWT(user.ID, user.Role)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return &http.Cookie{Name: middleware.AuthCookieName, Value: token}
}

// Itoa renders an entity id for use in a request path.
func Itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// Do performs an app.Test round trip. body may be nil; cookie may be nil for
// unauthenticated requests. The decoded JSON envelope is returned alongside
// the response.
func Do(t *testing.T, app *fiber.App, method, target string, body interface{}, cookie *http.Cookie) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, target, err)
	}

	payload := map[string]interface{}{}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			t.Fatalf("response %s %s is not JSON: %v", method, target, err)
		}
	}

	return resp, payload
}

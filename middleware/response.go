package middleware

import (
	"time"

	"edulearn/config"

	"github.com/gofiber/fiber/v2"
)

// JsonResponse writes the standard response envelope.
func JsonResponse(c *fiber.Ctx, statusCode int, success bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": success,
		"message": message,
		"data":    data,
	})
}

// ValidationErrorResponse reports field-level validation failures.
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}

// SetAuthCookie attaches the session token as an HTTP-only cookie.
func SetAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		Secure:   config.AppConfig.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ClearAuthCookie expires the session cookie by resending it empty with a
// zero max age.
func ClearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   config.AppConfig.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

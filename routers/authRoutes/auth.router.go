package authRoutes

import (
	authController "edulearn/controllers/auth"
	"edulearn/middleware"
	"edulearn/repository"
	authValidator "edulearn/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, repos *repository.Repositories) {
	ctl := authController.New(repos)

	auth := app.Group("/api/auth")

	auth.Post("/signup", authValidator.Signup(), ctl.Signup)
	auth.Post("/login", authValidator.Login(), ctl.Login)
	// Logout needs no valid credential; it only clears the cookie.
	auth.Post("/logout", ctl.Logout)

	auth.Get("/me", middleware.Authenticate, ctl.Me)
}

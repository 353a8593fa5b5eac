package sessionRoutes

import (
	sessionController "edulearn/controllers/session"
	"edulearn/middleware"
	"edulearn/models"
	"edulearn/repository"
	sessionValidator "edulearn/validators/session"

	"github.com/gofiber/fiber/v2"
)

func SetupSessionRoutes(app *fiber.App, repos *repository.Repositories) {
	ctl := sessionController.New(repos)

	sessions := app.Group("/api/live-sessions", middleware.Authenticate)

	sessions.Post("/",
		middleware.RequireRoles(models.RoleTeacher, models.RoleAdmin),
		sessionValidator.CreateSession(),
		ctl.CreateSession)

	sessions.Patch("/:sessionId/start",
		middleware.RequireRoles(models.RoleTeacher, models.RoleAdmin),
		sessionValidator.SessionIDParam(),
		ctl.StartSession)

	sessions.Patch("/:sessionId/end",
		middleware.RequireRoles(models.RoleTeacher, models.RoleAdmin),
		sessionValidator.SessionIDParam(),
		ctl.EndSession)

	sessions.Post("/:sessionId/join",
		sessionValidator.SessionIDParam(),
		ctl.JoinSession)

	app.Get("/api/my/live-sessions",
		middleware.Authenticate,
		ctl.GetMySessions)
}

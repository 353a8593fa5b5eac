package adminRoutes

import (
	adminController "edulearn/controllers/admin"
	"edulearn/middleware"
	"edulearn/models"
	"edulearn/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App, repos *repository.Repositories) {
	ctl := adminController.New(repos)

	admin := app.Group("/api/admin",
		middleware.Authenticate,
		middleware.RequireRoles(models.RoleAdmin))

	admin.Get("/live-sessions", ctl.GetAllLiveSessions)
	admin.Get("/dashboard", ctl.GetDashboard)
}

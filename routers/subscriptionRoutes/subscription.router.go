package subscriptionRoutes

import (
	subscriptionController "edulearn/controllers/subscription"
	"edulearn/middleware"
	"edulearn/repository"
	courseValidator "edulearn/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupSubscriptionRoutes(app *fiber.App, repos *repository.Repositories) {
	ctl := subscriptionController.New(repos)

	app.Post("/api/courses/:courseId/subscribe",
		middleware.Authenticate,
		courseValidator.CourseIDParam(),
		ctl.Subscribe)

	app.Get("/api/my/course-subscriptions",
		middleware.Authenticate,
		ctl.GetMySubscriptions)
}

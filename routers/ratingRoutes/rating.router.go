package ratingRoutes

import (
	ratingController "edulearn/controllers/rating"
	"edulearn/middleware"
	"edulearn/repository"
	courseValidator "edulearn/validators/course"
	ratingValidator "edulearn/validators/rating"

	"github.com/gofiber/fiber/v2"
)

func SetupRatingRoutes(app *fiber.App, repos *repository.Repositories) {
	ctl := ratingController.New(repos)

	app.Get("/api/my/ratings",
		middleware.Authenticate,
		ctl.GetMyRatings)

	app.Get("/api/ratings/:courseId",
		middleware.Authenticate,
		courseValidator.CourseIDParam(),
		ctl.GetCourseRating)

	app.Post("/api/ratings/:courseId",
		middleware.Authenticate,
		courseValidator.CourseIDParam(),
		ratingValidator.SubmitRating(),
		ctl.SubmitRating)
}

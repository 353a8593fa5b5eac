package courseRoutes

import (
	courseController "edulearn/controllers/course"
	"edulearn/middleware"
	"edulearn/models"
	"edulearn/repository"
	courseValidator "edulearn/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App, repos *repository.Repositories) {
	ctl := courseController.New(repos)

	courses := app.Group("/api/courses", middleware.Authenticate)
	courses.Get("/", ctl.GetAllCourses)
	courses.Get("/:courseId", courseValidator.CourseIDParam(), ctl.GetCourse)
	courses.Post("/",
		middleware.RequireRoles(models.RoleTeacher, models.RoleAdmin),
		courseValidator.CreateCourse(),
		ctl.CreateCourse)

	app.Get("/api/teacher/courses",
		middleware.Authenticate,
		middleware.RequireRoles(models.RoleTeacher, models.RoleAdmin),
		ctl.GetMyCourses)
}

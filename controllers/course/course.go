package courseController

import (
	"errors"

	"edulearn/middleware"
	"edulearn/models"
	"edulearn/repository"
	"edulearn/utils"
	courseValidator "edulearn/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

type Controller struct {
	Courses *repository.CourseRepository
}

func New(repos *repository.Repositories) *Controller {
	return &Controller{Courses: repos.Courses}
}

func (ctl *Controller) GetAllCourses(c *fiber.Ctx) error {
	courses, err := ctl.Courses.FindAll()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

func (ctl *Controller) GetCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	course, err := ctl.Courses.FindByID(courseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// GetMyCourses lists the courses the caller created, newest first. The
// caller id shapes the query filter itself.
func (ctl *Controller) GetMyCourses(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	courses, err := ctl.Courses.FindByOwner(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

func (ctl *Controller) CreateCourse(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := models.Course{
		Title:       utils.NormalizeText(reqData.Title),
		Description: utils.NormalizeText(reqData.Description),
		Subject:     utils.NormalizeText(reqData.Subject),
		Tags:        datatypes.NewJSONSlice(utils.NormalizeTags(reqData.Tags)),
		Thumbnail:   utils.NormalizeText(reqData.Thumbnail),
		CreatedByID: userID,
	}

	if err := ctl.Courses.Create(&course); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

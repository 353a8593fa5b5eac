package courseValidator

import (
	"strconv"
	"strings"

	"edulearn/middleware"

	"github.com/gofiber/fiber/v2"
)

type CreateCourseRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Subject     string   `json:"subject"`
	Tags        []string `json:"tags"`
	Thumbnail   string   `json:"thumbnail"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		} else if len(strings.TrimSpace(reqData.Description)) < 5 {
			errors["description"] = "Description must be at least 5 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CourseIDParam validates the :courseId path parameter. A non-numeric id is
// a malformed request, rejected before any storage work.
func CourseIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := strconv.Atoi(c.Params("courseId"))
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Valid courseId is required", nil)
		}

		c.Locals("courseID", uint(courseID))
		return c.Next()
	}
}

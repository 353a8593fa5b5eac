package sessionValidator

import (
	"strconv"
	"strings"
	"time"

	"edulearn/middleware"

	"github.com/gofiber/fiber/v2"
)

type CreateSessionRequest struct {
	CourseID    uint   `json:"courseId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"` // RFC 3339

	ParsedStartDate time.Time `json:"-"`
}

func CreateSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateSessionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["courseId"] = "Valid courseId is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.StartDate == "" {
			reqData.ParsedStartDate = time.Now()
		} else {
			startDate, err := time.Parse(time.RFC3339, reqData.StartDate)
			if err != nil {
				errors["startDate"] = "startDate must be an RFC 3339 timestamp!"
			} else {
				reqData.ParsedStartDate = startDate
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSession", reqData)
		return c.Next()
	}
}

// SessionIDParam validates the :sessionId path parameter.
func SessionIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID, err := strconv.Atoi(c.Params("sessionId"))
		if err != nil || sessionID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Valid sessionId is required", nil)
		}

		c.Locals("sessionID", uint(sessionID))
		return c.Next()
	}
}

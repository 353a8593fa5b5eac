package ratingValidator

import (
	"edulearn/middleware"

	"github.com/gofiber/fiber/v2"
)

type SubmitRatingRequest struct {
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

func SubmitRating() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitRatingRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Rating < 1 || reqData.Rating > 5 {
			errors["rating"] = "Rating must be between 1 and 5!"
		}
		if len(reqData.Review) > 1000 {
			errors["review"] = "Review must be at most 1000 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRating", reqData)
		return c.Next()
	}
}

package ratingController

import (
	"errors"

	"edulearn/middleware"
	"edulearn/models"
	"edulearn/repository"
	"edulearn/utils"
	ratingValidator "edulearn/validators/rating"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	Courses *repository.CourseRepository
	Ratings *repository.RatingRepository
}

func New(repos *repository.Repositories) *Controller {
	return &Controller{
		Courses: repos.Courses,
		Ratings: repos.Ratings,
	}
}

// SubmitRating records the caller's rating for a course. The compound
// unique index allows exactly one rating per (user, course) pair.
func (ctl *Controller) SubmitRating(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	courseID := c.Locals("courseID").(uint)

	reqData, ok := c.Locals("validatedRating").(*ratingValidator.SubmitRatingRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if _, err := ctl.Courses.FindByID(courseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	rating := models.CourseRating{
		UserID:   userID,
		CourseID: courseID,
		Rating:   reqData.Rating,
		Review:   utils.NormalizeText(reqData.Review),
	}

	if err := ctl.Ratings.Create(&rating); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already rated this course!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Rating submitted successfully!", rating)
}

func (ctl *Controller) GetMyRatings(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	ratings, err := ctl.Ratings.FindByUser(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ratings fetched successfully!", ratings)
}

// GetCourseRating reports whether the caller has rated the course, with the
// rating itself when present.
func (ctl *Controller) GetCourseRating(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	courseID := c.Locals("courseID").(uint)

	rating, err := ctl.Ratings.FindOne(userID, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"success":  true,
				"hasRated": false,
				"data":     nil,
			})
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"hasRated": true,
		"data":     rating,
	})
}

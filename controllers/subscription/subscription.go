package subscriptionController

import (
	"errors"

	"edulearn/middleware"
	"edulearn/models"
	"edulearn/repository"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	Courses       *repository.CourseRepository
	Subscriptions *repository.SubscriptionRepository
}

func New(repos *repository.Repositories) *Controller {
	return &Controller{
		Courses:       repos.Courses,
		Subscriptions: repos.Subscriptions,
	}
}

func (ctl *Controller) Subscribe(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	courseID := c.Locals("courseID").(uint)

	if _, err := ctl.Courses.FindByID(courseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	subscription := models.CourseSubscription{
		UserID:   userID,
		CourseID: courseID,
	}

	if err := ctl.Subscriptions.Create(&subscription); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already subscribed to this course!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Subscribed to course successfully!", subscription)
}

func (ctl *Controller) GetMySubscriptions(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	subscriptions, err := ctl.Subscriptions.FindByUser(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscriptions fetched successfully!", subscriptions)
}

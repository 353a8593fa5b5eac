package adminController

import (
	"time"

	"edulearn/middleware"
	"edulearn/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

type Controller struct {
	Users    *repository.UserRepository
	Courses  *repository.CourseRepository
	Sessions *repository.LiveSessionRepository
}

func New(repos *repository.Repositories) *Controller {
	return &Controller{
		Users:    repos.Users,
		Courses:  repos.Courses,
		Sessions: repos.Sessions,
	}
}

// GetAllLiveSessions returns the full roster view: every session with its
// course title, creator and participants, newest start first. Unscoped;
// this endpoint is admin-only.
func (ctl *Controller) GetAllLiveSessions(c *fiber.Ctx) error {
	sessions, err := ctl.Sessions.FindAll()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Live sessions fetched successfully!", sessions)
}

// GetDashboard returns platform counters, including sessions started today
// and this week.
func (ctl *Controller) GetDashboard(c *fiber.Ctx) error {
	userTotal, err := ctl.Users.Count()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}
	courseTotal, err := ctl.Courses.Count()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}
	sessionTotal, err := ctl.Sessions.Count()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	current := time.Now()
	sessionsToday, err := ctl.Sessions.CountStartedBetween(now.With(current).BeginningOfDay(), current)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}
	sessionsThisWeek, err := ctl.Sessions.CountStartedBetween(now.With(current).BeginningOfWeek(), current)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"users":            userTotal,
		"courses":          courseTotal,
		"liveSessions":     sessionTotal,
		"sessionsToday":    sessionsToday,
		"sessionsThisWeek": sessionsThisWeek,
	})
}

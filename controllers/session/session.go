package sessionController

import (
	"errors"
	"time"

	"edulearn/middleware"
	"edulearn/models"
	"edulearn/repository"
	"edulearn/utils"
	sessionValidator "edulearn/validators/session"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Controller struct {
	Courses  *repository.CourseRepository
	Sessions *repository.LiveSessionRepository
}

func New(repos *repository.Repositories) *Controller {
	return &Controller{
		Courses:  repos.Courses,
		Sessions: repos.Sessions,
	}
}

// CreateSession schedules a live session for a course. Teachers may only
// schedule sessions for courses they created; admins are exempt.
func (ctl *Controller) CreateSession(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	role := c.Locals("role").(string)

	reqData, ok := c.Locals("validatedSession").(*sessionValidator.CreateSessionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := ctl.Courses.FindByID(reqData.CourseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	if role != models.RoleAdmin && course.CreatedByID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only schedule sessions for your own courses!", nil)
	}

	session := models.LiveSession{
		RoomID:      uuid.NewString(),
		CourseID:    course.ID,
		CreatedByID: userID,
		Title:       utils.NormalizeText(reqData.Title),
		Description: utils.NormalizeText(reqData.Description),
		IsActive:    false,
		StartDate:   reqData.ParsedStartDate,
	}

	if err := ctl.Sessions.Create(&session); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Room ID already in use!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Live session created successfully!", session)
}

func (ctl *Controller) StartSession(c *fiber.Ctx) error {
	session, resp := ctl.ownedSession(c)
	if session == nil {
		return resp // rejection already written
	}

	if err := ctl.Sessions.Start(session.ID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	session.IsActive = true
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Live session started!", session)
}

func (ctl *Controller) EndSession(c *fiber.Ctx) error {
	session, resp := ctl.ownedSession(c)
	if session == nil {
		return resp // rejection already written
	}

	endedAt := time.Now()
	if err := ctl.Sessions.End(session.ID, endedAt); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	session.IsActive = false
	session.EndDate = &endedAt
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Live session ended!", session)
}

// JoinSession adds the caller to the session roster. Re-joining is a no-op,
// not an error.
func (ctl *Controller) JoinSession(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	sessionID := c.Locals("sessionID").(uint)

	session, err := ctl.Sessions.FindByID(sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Live session not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	if err := ctl.Sessions.Join(session.ID, userID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Joined live session!", fiber.Map{
		"roomId": session.RoomID,
	})
}

func (ctl *Controller) GetMySessions(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	sessions, err := ctl.Sessions.FindByParticipant(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Live sessions fetched successfully!", sessions)
}

// ownedSession loads the :sessionId session and enforces that the caller
// created it (admins exempt). On failure the session is nil and the second
// return value is the already-written rejection.
func (ctl *Controller) ownedSession(c *fiber.Ctx) (*models.LiveSession, error) {
	userID := c.Locals("userId").(uint)
	role := c.Locals("role").(string)
	sessionID := c.Locals("sessionID").(uint)

	session, err := ctl.Sessions.FindByID(sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Live session not found!", nil)
		}
		return nil, middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	if role != models.RoleAdmin && session.CreatedByID != userID {
		return nil, middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only manage your own live sessions!", nil)
	}

	return session, nil
}

package sessionController_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"edulearn/models"
	"edulearn/repository"
	"edulearn/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	repos, _ := testutil.Setup(t)
	app := testutil.NewApp(repos)
	teacher := testutil.CreateUser(t, repos, models.RoleTeacher, "teacher@example.com")
	course := testutil.CreateCourse(t, repos, teacher, "Live Course")
	cookie := testutil.AuthCookie(t, teacher)

	resp, payload := testutil.Do(t, app, http.MethodPost, "/api/live-sessions", map[string]interface{}{
		"courseId":    course.ID,
		"title":       "Week 1 Q&A",
		"description": "Bring questions",
		"startDate":   time.Now().Add(time.Hour).Format(time.RFC3339),
	}, cookie)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	created := payload["data"].(map[string]interface{})
	sessionID := testutil.Itoa(uint(created["ID"].(float64)))
	assert.NotEmpty(t, created["roomId"])
	assert.Equal(t, false, created["isActive"])
	assert.Nil(t, created["endDate"])

	resp, payload = testutil.Do(t, app, http.MethodPatch, "/api/live-sessions/"+sessionID+"/start", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	started := payload["data"].(map[string]interface{})
	assert.Equal(t, true, started["isActive"])

	resp, payload = testutil.Do(t, app, http.MethodPatch, "/api/live-sessions/"+sessionID+"/end", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ended := payload["data"].(map[string]interface{})
	assert.Equal(t, false, ended["isActive"])
	assert.NotNil(t, ended["endDate"])
}

func TestCreateSessionOwnershipAndRoles(t *testing.T) {
	repos, _ := testutil.Setup(t)
	app := testutil.NewApp(repos)
	owner := testutil.CreateUser(t, repos, models.RoleTeacher, "owner@example.com")
	course := testutil.CreateCourse(t, repos, owner, "Owned Course")

	body := map[string]interface{}{
		"courseId": course.ID,
		"title":    "Intruder Session",
	}

	t.Run("student is forbidden by role", func(t *testing.T) {
		student := testutil.CreateUser(t, repos, models.RoleStudent, "student@example.com")
		resp, _ := testutil.Do(t, app, http.MethodPost, "/api/live-sessions", body, testutil.AuthCookie(t, student))
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("other teacher is forbidden by ownership", func(t *testing.T) {
		other := testutil.CreateUser(t, repos, models.RoleTeacher, "other@example.com")
		resp, _ := testutil.Do(t, app, http.MethodPost, "/api/live-sessions", body, testutil.AuthCookie(t, other))
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin is exempt from ownership", func(t *testing.T) {
		admin := testutil.CreateUser(t, repos, models.RoleAdmin, "admin@example.com")
		resp, _ := testutil.Do(t, app, http.MethodPost, "/api/live-sessions", map[string]interface{}{
			"courseId": course.ID,
			"title":    "Admin Session",
		}, testutil.AuthCookie(t, admin))
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("unknown course", func(t *testing.T) {
		resp, _ := testutil.Do(t, app, http.MethodPost, "/api/live-sessions", map[string]interface{}{
			"courseId": 9999,
			"title":    "Ghost Session",
		}, testutil.AuthCookie(t, owner))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

// Joining twice leaves the roster unchanged in size and first-insertion
// order.
func TestJoinSessionIdempotent(t *testing.T) {
	repos, _ := testutil.Setup(t)
	app := testutil.NewApp(repos)
	teacher := testutil.CreateUser(t, repos, models.RoleTeacher, "teacher@example.com")
	course := testutil.CreateCourse(t, repos, teacher, "Live Course")

	session := &models.LiveSession{
		RoomID:      "room-join-test",
		CourseID:    course.ID,
		CreatedByID: teacher.ID,
		Title:       "Joinable",
		StartDate:   time.Now(),
	}
	require.NoError(t, repos.Sessions.Create(session))

	first := testutil.CreateUser(t, repos, models.RoleStudent, "first@example.com")
	second := testutil.CreateUser(t, repos, models.RoleStudent, "second@example.com")
	target := "/api/live-sessions/" + testutil.Itoa(session.ID) + "/join"

	for _, cookie := range []interface{}{
		testutil.AuthCookie(t, first),
		testutil.AuthCookie(t, second),
		testutil.AuthCookie(t, first), // re-join is a no-op
	} {
		resp, _ := testutil.Do(t, app, http.MethodPost, target, nil, cookie.(*http.Cookie))
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	roster, err := repos.Sessions.Roster(session.ID)
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, first.ID, roster[0].UserID)
	assert.Equal(t, second.ID, roster[1].UserID)
}

func TestJoinUnknownSession(t *testing.T) {
	repos, _ := testutil.Setup(t)
	app := testutil.NewApp(repos)
	student := testutil.CreateUser(t, repos, models.RoleStudent, "student@example.com")

	resp, _ := testutil.Do(t, app, http.MethodPost, "/api/live-sessions/9999/join", nil, testutil.AuthCookie(t, student))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// RoomID is globally unique; a second session reusing one is a conflict.
func TestDuplicateRoomIDConflicts(t *testing.T) {
	repos, _ := testutil.Setup(t)
	teacher := testutil.CreateUser(t, repos, models.RoleTeacher, "teacher@example.com")
	course := testutil.CreateCourse(t, repos, teacher, "Live Course")

	session := func() *models.LiveSession {
		return &models.LiveSession{
			RoomID:      "the-one-room",
			CourseID:    course.ID,
			CreatedByID: teacher.ID,
			Title:       "Session",
			StartDate:   time.Now(),
		}
	}

	require.NoError(t, repos.Sessions.Create(session()))

	err := repos.Sessions.Create(session())
	assert.True(t, errors.Is(err, repository.ErrDuplicate))
}

func TestMySessionsSortedByStartDate(t *testing.T) {
	repos, _ := testutil.Setup(t)
	app := testutil.NewApp(repos)
	teacher := testutil.CreateUser(t, repos, models.RoleTeacher, "teacher@example.com")
	course := testutil.CreateCourse(t, repos, teacher, "Live Course")
	student := testutil.CreateUser(t, repos, models.RoleStudent, "student@example.com")

	base := time.Now()
	var ids []uint
	for i, offset := range []time.Duration{time.Hour, 3 * time.Hour, 2 * time.Hour} {
		session := &models.LiveSession{
			RoomID:      "room-" + testutil.Itoa(uint(i)),
			CourseID:    course.ID,
			CreatedByID: teacher.ID,
			Title:       "Session",
			StartDate:   base.Add(offset),
		}
		require.NoError(t, repos.Sessions.Create(session))
		ids = append(ids, session.ID)
	}

	// The student joins only the first two sessions.
	require.NoError(t, repos.Sessions.Join(ids[0], student.ID))
	require.NoError(t, repos.Sessions.Join(ids[1], student.ID))

	resp, payload := testutil.Do(t, app, http.MethodGet, "/api/my/live-sessions", nil, testutil.AuthCookie(t, student))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	sessions := payload["data"].([]interface{})
	require.Len(t, sessions, 2)

	// Newest start first: the +3h session before the +1h session, and the
	// never-joined +2h session absent.
	newest := sessions[0].(map[string]interface{})
	oldest := sessions[1].(map[string]interface{})
	assert.Equal(t, float64(ids[1]), newest["ID"])
	assert.Equal(t, float64(ids[0]), oldest["ID"])
	assert.Equal(t, "Live Course", newest["course"].(map[string]interface{})["title"])
}

func TestStartSessionOwnership(t *testing.T) {
	repos, _ := testutil.Setup(t)
	app := testutil.NewApp(repos)
	owner := testutil.CreateUser(t, repos, models.RoleTeacher, "owner@example.com")
	other := testutil.CreateUser(t, repos, models.RoleTeacher, "other@example.com")
	course := testutil.CreateCourse(t, repos, owner, "Owned Course")

	session := &models.LiveSession{
		RoomID:      "room-owned",
		CourseID:    course.ID,
		CreatedByID: owner.ID,
		Title:       "Owned Session",
		StartDate:   time.Now(),
	}
	require.NoError(t, repos.Sessions.Create(session))

	resp, _ := testutil.Do(t, app, http.MethodPatch,
		"/api/live-sessions/"+testutil.Itoa(session.ID)+"/start", nil, testutil.AuthCookie(t, other))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

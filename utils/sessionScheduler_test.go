package utils_test

import (
	"testing"
	"time"

	"edulearn/models"
	"edulearn/testutil"
	"edulearn/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndStaleSessions(t *testing.T) {
	repos, _ := testutil.Setup(t)
	teacher := testutil.CreateUser(t, repos, models.RoleTeacher, "teacher@example.com")
	course := testutil.CreateCourse(t, repos, teacher, "Scheduled Course")

	stale := &models.LiveSession{
		RoomID: "room-stale", CourseID: course.ID, CreatedByID: teacher.ID,
		Title: "Stale", IsActive: true,
		StartDate: time.Now().Add(-utils.StaleSessionAge - time.Hour),
	}
	fresh := &models.LiveSession{
		RoomID: "room-fresh", CourseID: course.ID, CreatedByID: teacher.ID,
		Title: "Fresh", IsActive: true,
		StartDate: time.Now().Add(-time.Hour),
	}
	require.NoError(t, repos.Sessions.Create(stale))
	require.NoError(t, repos.Sessions.Create(fresh))

	utils.EndStaleSessions(repos.Sessions)

	endedSession, err := repos.Sessions.FindByID(stale.ID)
	require.NoError(t, err)
	assert.False(t, endedSession.IsActive)
	assert.NotNil(t, endedSession.EndDate)

	activeSession, err := repos.Sessions.FindByID(fresh.ID)
	require.NoError(t, err)
	assert.True(t, activeSession.IsActive)
	assert.Nil(t, activeSession.EndDate)
}

package authController_test

import (
	"net/http"
	"testing"

	"edulearn/middleware"
	"edulearn/models"
	"edulearn/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupAndLogin(t *testing.T) {
	repos, _ := testutil.Setup(t)
	app := testutil.NewApp(repos)

	resp, payload := testutil.Do(t, app, http.MethodPost, "/api/auth/signup", map[string]interface{}{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "ada@example.com",
		"password":  testutil.TestPassword,
		"role":      models.RoleTeacher,
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, payload["success"])

	// The stored password hash must never be serialized.
	created := payload["data"].(map[string]interface{})
	_, leaked := created["Password"]
	assert.False(t, leaked)

	resp, payload = testutil.Do(t, app, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "ada@example.com",
		"password": testutil.TestPassword,
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Login Successful", payload["message"])

	var authCookie *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.AuthCookieName {
			authCookie = cookie
		}
	}
	require.NotNil(t, authCookie, "login must set the auth cookie")
	assert.NotEmpty(t, authCookie.Value)
	assert.True(t, authCookie.HttpOnly)
	assert.Equal(t, "/", authCookie.Path)
}

func TestSignupDuplicateEmail(t *testing.T) {
	repos, _ := testutil.Setup(t)
	app := testutil.NewApp(repos)
	testutil.CreateUser(t, repos, models.RoleStudent, "taken@example.com")

	resp, payload := testutil.Do(t, app, http.MethodPost, "/api/auth/signup", map[string]interface{}{
		"firstName": "Second",
		"lastName":  "User",
		"email":     "taken@example.com",
		"password":  testutil.TestPassword,
	}, nil)

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Email is already registered!", payload["message"])
}

func TestLoginWrongPassword(t *testing.T) {
	repos, _ := testutil.Setup(t)
	app := testutil.NewApp(repos)
	testutil.CreateUser(t, repos, models.RoleStudent, "student@example.com")

	resp, _ := testutil.Do(t, app, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "student@example.com",
		"password": "wrong-password",
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Logout succeeds with any cookie or none, and always expires edutoken.
func TestLogoutAlwaysSucceeds(t *testing.T) {
	repos, _ := testutil.Setup(t)
	app := testutil.NewApp(repos)
	user := testutil.CreateUser(t, repos, models.RoleStudent, "out@example.com")

	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{name: "no cookie", cookie: nil},
		{name: "valid cookie", cookie: testutil.AuthCookie(t, user)},
		{name: "garbage cookie", cookie: &http.Cookie{Name: middleware.AuthCookieName, Value: "junk"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, payload := testutil.Do(t, app, http.MethodPost, "/api/auth/logout", nil, tt.cookie)

			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "Logout Successful", payload["message"])

			var cleared *http.Cookie
			for _, cookie := range resp.Cookies() {
				if cookie.Name == middleware.AuthCookieName {
					cleared = cookie
				}
			}
			require.NotNil(t, cleared, "logout must resend the auth cookie")
			assert.Empty(t, cleared.Value)
			assert.LessOrEqual(t, cleared.MaxAge, 0)
		})
	}
}

package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"langart/internal/auth"
	"langart/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postJSON builds a test context with a JSON request body.
func postJSON(t *testing.T, method, target string, body any) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, bytes.NewReader(data))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

// sessionCookie returns the admin session cookie from a response, if set.
func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == auth.CookieName {
			return cookie
		}
	}
	return nil
}

func TestLogin_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	server := setupTestServer(t)
	username, password := seedTestAdmin(t, server)

	w, c := postJSON(t, "POST", "/api/auth/login", LoginRequest{
		Username: username,
		Password: password,
	})
	server.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(w)
	require.NotNil(t, cookie, "login must set the session cookie")
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Positive(t, cookie.MaxAge)

	claims, err := server.TokenIssuer.Verify(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, username, claims.Username)
}

func TestLogin_BadCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	server := setupTestServer(t)
	username, _ := seedTestAdmin(t, server)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong_password", username, "not-the-password"},
		{"unknown_user", "nobody", "whatever"},
	}

	var bodies []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, c := postJSON(t, "POST", "/api/auth/login", LoginRequest{
				Username: tt.username,
				Password: tt.password,
			})
			server.Login(c)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Nil(t, sessionCookie(w))
			bodies = append(bodies, w.Body.String())
		})
	}

	// Unknown user and wrong password must be indistinguishable
	require.Len(t, bodies, 2)
	assert.Equal(t, bodies[0], bodies[1])
}

func TestLogout_ClearsCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	server := setupTestServer(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/auth/logout", nil)
	server.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestChangePassword(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		req            ChangePasswordRequest
		expectedStatus int
		hashChanged    bool
	}{
		{
			name: "success",
			req: ChangePasswordRequest{
				CurrentPassword: "admin-password",
				NewPassword:     "brand-new-pass",
				ConfirmPassword: "brand-new-pass",
			},
			expectedStatus: http.StatusOK,
			hashChanged:    true,
		},
		{
			name: "confirmation_mismatch",
			req: ChangePasswordRequest{
				CurrentPassword: "admin-password",
				NewPassword:     "brand-new-pass",
				ConfirmPassword: "other-pass",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "wrong_current_password",
			req: ChangePasswordRequest{
				CurrentPassword: "not-current",
				NewPassword:     "brand-new-pass",
				ConfirmPassword: "brand-new-pass",
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "too_short",
			req: ChangePasswordRequest{
				CurrentPassword: "admin-password",
				NewPassword:     "abc",
				ConfirmPassword: "abc",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := setupTestServer(t)
			username, _ := seedTestAdmin(t, server)

			var user models.User
			require.NoError(t, server.DB.Where("username = ?", username).First(&user).Error)
			originalHash := user.PasswordHash

			w, c := postJSON(t, "POST", "/api/auth/change-password", tt.req)
			c.Set("admin_claims", &auth.SessionClaims{UserID: user.ID, Username: username})
			server.ChangePassword(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			require.NoError(t, server.DB.First(&user, user.ID).Error)
			if tt.hashChanged {
				assert.NotEqual(t, originalHash, user.PasswordHash)
				assert.True(t, auth.CheckPassword(user.PasswordHash, tt.req.NewPassword))
			} else {
				assert.Equal(t, originalHash, user.PasswordHash, "failed change must not touch the stored hash")
			}
		})
	}
}

func TestChangePassword_NoSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	server := setupTestServer(t)

	w, c := postJSON(t, "POST", "/api/auth/change-password", ChangePasswordRequest{
		CurrentPassword: "a",
		NewPassword:     "new-password",
		ConfirmPassword: "new-password",
	})
	server.ChangePassword(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

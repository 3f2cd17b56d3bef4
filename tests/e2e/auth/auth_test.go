//go:build e2e

package auth_test

import (
	"context"
	"net/http"
	"testing"

	"fieldbook/internal/domain/user"
	"fieldbook/tests/common/dbtest"
	"fieldbook/tests/common/httptest"
	"fieldbook/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	refreshURL  = "/api/auth/refresh"
	logoutURL   = "/api/auth/logout"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "test@example.com", string(user.RoleCustomer))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleCustomer))

	ctx := context.Background()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			email:          "test@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown user",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password",
			email:          "test@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "inactive account",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "empty email",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty password",
			email:          "test@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			body := map[string]any{"email": tt.email, "password": tt.password}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, body, "")
			require.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var response map[string]any
				httptest.AssertSuccessResponse(t, w, http.StatusOK, &response)
				require.NotEmpty(t, response["access_token"])
				require.NotNil(t, httptest.ExtractCookie(w, "access_token"))
				require.NotNil(t, httptest.ExtractCookie(w, "refresh_token"))
			}
		})
	}
}

func (s *authSuite) TestRegister() {
	s.Run("register then login", func() {
		t := s.T()

		body := map[string]any{
			"email":    "new@example.com",
			"password": "password123",
			"name":     "New User",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, body, "")

		var created map[string]any
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, "new@example.com", created["email"])
		require.Equal(t, string(user.RoleCustomer), created["role"])

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			map[string]any{"email": "new@example.com", "password": "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code)
	})

	s.Run("duplicate email conflicts", func() {
		t := s.T()

		body := map[string]any{
			"email":    "test@example.com",
			"password": "password123",
			"name":     "Duplicate",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, body, "")
		require.Equal(t, http.StatusConflict, w.Code)
	})
}

func (s *authSuite) TestTokenLifecycle() {
	s.Run("refresh rotates the token pair", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			map[string]any{"email": "test@example.com", "password": "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code)
		refreshCookie := httptest.ExtractCookie(w, "refresh_token")
		require.NotNil(t, refreshCookie)

		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL,
			nil, []*http.Cookie{refreshCookie}, "")

		var response map[string]any
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &response)
		require.NotEmpty(t, response["access_token"])
	})

	s.Run("me returns the authenticated user", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			map[string]any{"email": "test@example.com", "password": "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code)

		var login map[string]any
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &login)
		token := login["access_token"].(string)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		var me map[string]any
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &me)
		require.Equal(t, "test@example.com", me["email"])
	})

	s.Run("logout clears the auth cookies", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			map[string]any{"email": "test@example.com", "password": "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code)

		var login map[string]any
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &login)
		token := login["access_token"].(string)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		access := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, access)
		require.Empty(t, access.Value)
	})
}

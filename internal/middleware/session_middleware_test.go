package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"steez-storefront/internal/session"
	sessionerrors "steez-storefront/internal/session/errors"
)

type fakeSessionService struct {
	sessions map[string]session.Session
}

func (f *fakeSessionService) Login(context.Context, session.LoginRequest) (session.SessionResponse, error) {
	panic("not used")
}

func (f *fakeSessionService) Register(context.Context, session.RegisterRequest) (session.SessionResponse, error) {
	panic("not used")
}

func (f *fakeSessionService) GuestLogin() (session.SessionResponse, error) {
	panic("not used")
}

func (f *fakeSessionService) FromToken(token string) (session.Session, error) {
	sess, ok := f.sessions[token]
	if !ok {
		return session.Session{}, sessionerrors.ErrInvalidToken
	}
	return sess, nil
}

func testSessionService() session.Service {
	return &fakeSessionService{sessions: map[string]session.Session{
		"user-token":  {UserID: "12", Role: "customer"},
		"admin-token": {UserID: "1", Role: session.RoleAdmin},
	}}
}

func serve(router *gin.Engine, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)
	return w
}

func probe(mw ...gin.HandlerFunc) (*gin.Engine, *session.Session) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	var seen session.Session
	handlers := append(mw, func(c *gin.Context) {
		seen = session.FromContext(c)
		c.Status(http.StatusOK)
	})
	router.GET("/probe", handlers...)
	return router, &seen
}

func TestRequireSession(t *testing.T) {
	t.Run("valid token passes and injects the session", func(t *testing.T) {
		router, seen := probe(RequireSession(testSessionService()))
		w := serve(router, "user-token")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "12", seen.UserID)
	})

	t.Run("missing token is unauthorized", func(t *testing.T) {
		router, _ := probe(RequireSession(testSessionService()))
		w := serve(router, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token is unauthorized", func(t *testing.T) {
		router, _ := probe(RequireSession(testSessionService()))
		w := serve(router, "bogus")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestOptionalSession(t *testing.T) {
	t.Run("no token continues as anonymous", func(t *testing.T) {
		router, seen := probe(OptionalSession(testSessionService()))
		w := serve(router, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, seen.UserID)
	})

	t.Run("an invalid token degrades to anonymous instead of failing", func(t *testing.T) {
		router, seen := probe(OptionalSession(testSessionService()))
		w := serve(router, "expired-or-garbage")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, seen.UserID)
	})

	t.Run("a valid token is resolved", func(t *testing.T) {
		router, seen := probe(OptionalSession(testSessionService()))
		w := serve(router, "user-token")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "12", seen.UserID)
	})
}

func TestRequireRole(t *testing.T) {
	svc := testSessionService()

	t.Run("matching role passes", func(t *testing.T) {
		router, _ := probe(RequireSession(svc), RequireRole(session.RoleAdmin))
		w := serve(router, "admin-token")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("other roles are forbidden", func(t *testing.T) {
		router, _ := probe(RequireSession(svc), RequireRole(session.RoleAdmin))
		w := serve(router, "user-token")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"well formed", "Bearer abc123", "abc123"},
		{"case-insensitive scheme", "bearer abc123", "abc123"},
		{"wrong scheme", "Basic abc123", ""},
		{"scheme only", "Bearer", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				c.Request.Header.Set("Authorization", tc.header)
			}
			assert.Equal(t, tc.want, bearerToken(c))
		})
	}
}

package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"steez-storefront/internal/pkg/response"
	"steez-storefront/internal/session"
	sessionerrors "steez-storefront/internal/session/errors"
)

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireSession rejects requests without a valid session token.
func RequireSession(svc session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			err := sessionerrors.ErrUnauthorized
			response.Error(c, err.HTTPStatus, err.Code, err.Message, nil)
			c.Abort()
			return
		}

		sess, err := svc.FromToken(token)
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		session.Inject(c, sess)
		c.Next()
	}
}

// OptionalSession resolves a session when a valid token is present and lets
// everyone else through as anonymous. Invalid or expired tokens degrade to
// anonymous rather than failing the request; the storefront stays browsable.
func OptionalSession(svc session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		sess, err := svc.FromToken(token)
		if err != nil {
			c.Next()
			return
		}

		session.Inject(c, sess)
		c.Next()
	}
}

// RequireRole gates a route group to the given roles. Must run after
// RequireSession.
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := session.FromContext(c)

		allowed := false
		for _, role := range allowedRoles {
			if sess.Role == role {
				allowed = true
				break
			}
		}

		if !allowed {
			err := sessionerrors.ErrForbidden
			response.Error(c, err.HTTPStatus, err.Code, err.Message, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

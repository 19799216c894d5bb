package session

import "github.com/gin-gonic/gin"

const contextKey = "session"

// Inject stores the session on the gin context. Called by the middleware only.
func Inject(c *gin.Context, sess Session) {
	c.Set(contextKey, sess)
}

// FromContext returns the request's session, or the zero (anonymous) session
// when no token was presented.
func FromContext(c *gin.Context) Session {
	v, ok := c.Get(contextKey)
	if !ok {
		return Session{}
	}
	sess, ok := v.(Session)
	if !ok {
		return Session{}
	}
	return sess
}

package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	cartCookieName = "cart_session"
	// The cart survives until the cookie (or the stored key) is dropped.
	cartCookieMaxAge = 180 * 24 * 60 * 60
)

// CartSession pins a cart identifier to the device. The cart belongs to the
// device, not the user account, so logging in or out does not swap carts.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(cartCookieName)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(cartCookieName, sid, cartCookieMaxAge, "/", "", false, true)
		}
		c.Set(cartCookieName, sid)
		c.Next()
	}
}

// CartSessionID returns the cart identifier set by CartSession.
func CartSessionID(c *gin.Context) string {
	return c.GetString(cartCookieName)
}

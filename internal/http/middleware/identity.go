// README: Requester identity middleware. Real authentication lives in the
// gateway in front of this service; we only read the forwarded user id.
package middleware

import "github.com/gin-gonic/gin"

const userIDKey = "fieldops.user_id"

func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if uid := c.GetHeader("X-User-ID"); uid != "" {
			c.Set(userIDKey, uid)
		}
		c.Next()
	}
}

// UserID returns the forwarded requester id, or "" when absent.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// README: Recovery middleware.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldops/internal/logging"
)

func Recovery(log *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic recovered", "path", c.Request.URL.Path, "panic", r)
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}

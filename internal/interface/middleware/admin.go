package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin refuses the request with a bare 403 page unless the
// resolved actor is the administrator. The services re-check the same
// predicate, so a route wiring mistake cannot widen access; this gate
// exists to stop non-admins before any handler work happens.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentActor(c).IsAdministrator() {
			c.HTML(http.StatusForbidden, "error.html", gin.H{
				"Status":  http.StatusForbidden,
				"Message": "Forbidden",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

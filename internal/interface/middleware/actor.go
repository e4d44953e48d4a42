package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-blog-clean-architecture/internal/application"
	"github.com/oksasatya/go-blog-clean-architecture/pkg/helpers"
)

const ctxActorKey = "actor"

// ActorResolver turns a session cookie token into an Actor. Satisfied
// by *application.IdentityService; small on purpose so middleware tests
// can stub it.
type ActorResolver interface {
	CurrentActor(ctx context.Context, token string) application.Actor
}

// ResolveActor resolves the current actor from the session cookie and
// stores it in the Gin context for handlers and gates downstream. A
// missing or dead session resolves to Anonymous, never an error.
func ResolveActor(ids ActorResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookieName)
		if err != nil {
			token = ""
		}
		c.Set(ctxActorKey, ids.CurrentActor(c.Request.Context(), token))
		c.Next()
	}
}

// CurrentActor returns the actor resolved for this request.
func CurrentActor(c *gin.Context) application.Actor {
	if v, ok := c.Get(ctxActorKey); ok {
		if a, ok := v.(application.Actor); ok {
			return a
		}
	}
	return application.Anonymous
}

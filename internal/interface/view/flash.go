package view

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-blog-clean-architecture/pkg/helpers"
)

// Flash stores one-shot messages in Redis keyed by a browser cookie.
// A message survives exactly one redirect: Take returns it and deletes
// it in the same call.
type Flash struct {
	Redis   *redis.Client
	Cookies *helpers.CookieManager
}

func NewFlash(rdb *redis.Client, cookies *helpers.CookieManager) *Flash {
	return &Flash{Redis: rdb, Cookies: cookies}
}

func flashKey(id string) string {
	return "blog:flash:" + id
}

// Set stores a message for the requesting browser.
func (f *Flash) Set(c *gin.Context, msg string) {
	id, err := c.Cookie(helpers.FlashCookieName)
	if err != nil || id == "" {
		id = uuid.NewString()
		f.Cookies.SetFlashID(c, id)
	}
	if err := f.Redis.Set(c.Request.Context(), flashKey(id), msg, 10*time.Minute).Err(); err != nil {
		// Losing a flash message is not worth failing the request.
		return
	}
}

// Take returns the pending message, if any, and clears it.
func (f *Flash) Take(c *gin.Context) string {
	id, err := c.Cookie(helpers.FlashCookieName)
	if err != nil || id == "" {
		return ""
	}
	key := flashKey(id)
	msg, err := f.Redis.Get(c.Request.Context(), key).Result()
	if err != nil {
		return ""
	}
	_ = f.Redis.Del(c.Request.Context(), key).Err()
	return msg
}

package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-blog-clean-architecture/internal/interface/http"
)

// AuthModule wires the register/login/logout pages.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/register", m.Handler.RegisterForm)
	rg.POST("/register", m.Handler.Register)
	rg.GET("/login", m.Handler.LoginForm)
	rg.POST("/login", m.Handler.Login)
	rg.GET("/logout", m.Handler.Logout)
}

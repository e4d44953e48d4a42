package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-clean-architecture/internal/application"
	"github.com/oksasatya/go-blog-clean-architecture/internal/interface/middleware"
	"github.com/oksasatya/go-blog-clean-architecture/internal/interface/view"
	"github.com/oksasatya/go-blog-clean-architecture/pkg/forms"
	"github.com/oksasatya/go-blog-clean-architecture/pkg/helpers"
)

// AuthHandler serves the register/login/logout pages and owns the
// session cookie transport.
type AuthHandler struct {
	Svc     *application.IdentityService
	Cookies *helpers.CookieManager
	Flash   *view.Flash
	Logger  *logrus.Logger
}

func NewAuthHandler(svc *application.IdentityService, cookies *helpers.CookieManager, flash *view.Flash, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Cookies: cookies, Flash: flash, Logger: logger}
}

// RegisterForm renders the registration page.
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"Viewer": view.NewViewer(middleware.CurrentActor(c)),
		"Flash":  h.Flash.Take(c),
	})
}

// Register creates the account and logs the new user straight in. An
// email collision sends the visitor to login instead.
func (h *AuthHandler) Register(c *gin.Context) {
	var form forms.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		h.Flash.Set(c, forms.ToMessage(err))
		c.Redirect(http.StatusFound, "/register")
		return
	}
	_, tok, err := h.Svc.Register(c.Request.Context(), form.Email, form.Password, form.Name)
	switch {
	case errors.Is(err, application.ErrDuplicateEmail):
		h.Flash.Set(c, "This email already exists, login instead!")
		c.Redirect(http.StatusFound, "/login")
		return
	case err != nil:
		h.Logger.WithError(err).Error("registration failed")
		h.Flash.Set(c, "Registration failed, please try again.")
		c.Redirect(http.StatusFound, "/register")
		return
	}
	h.Cookies.SetSession(c, tok.Value, tok.ExpiresAt)
	c.Redirect(http.StatusFound, "/")
}

// LoginForm renders the login page.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Viewer": view.NewViewer(middleware.CurrentActor(c)),
		"Flash":  h.Flash.Take(c),
	})
}

// Login authenticates and opens a session. The unknown-email and
// wrong-password cases keep their distinct messages.
func (h *AuthHandler) Login(c *gin.Context) {
	var form forms.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.Flash.Set(c, forms.ToMessage(err))
		c.Redirect(http.StatusFound, "/login")
		return
	}
	_, tok, err := h.Svc.Authenticate(c.Request.Context(), form.Email, form.Password)
	switch {
	case errors.Is(err, application.ErrUserNotFound):
		h.Flash.Set(c, "Email does not exist, please try again.")
		c.Redirect(http.StatusFound, "/login")
		return
	case errors.Is(err, application.ErrBadCredential):
		h.Flash.Set(c, "Password is incorrect.")
		c.Redirect(http.StatusFound, "/login")
		return
	case err != nil:
		h.Logger.WithError(err).Error("login failed")
		h.Flash.Set(c, "Login failed, please try again.")
		c.Redirect(http.StatusFound, "/login")
		return
	}
	h.Cookies.SetSession(c, tok.Value, tok.ExpiresAt)
	c.Redirect(http.StatusFound, "/")
}

// Logout ends the session and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(helpers.SessionCookieName); err == nil && token != "" {
		if err := h.Svc.EndSession(c.Request.Context(), token); err != nil {
			h.Logger.WithError(err).Warn("session delete failed")
		}
	}
	h.Cookies.ClearSession(c)
	c.Redirect(http.StatusFound, "/")
}

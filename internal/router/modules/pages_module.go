package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-blog-clean-architecture/internal/interface/http"
)

// PagesModule wires the about and contact pages.
type PagesModule struct {
	Handler *handlers.PagesHandler
}

func NewPagesModule(h *handlers.PagesHandler) *PagesModule {
	return &PagesModule{Handler: h}
}

func (m *PagesModule) Register(rg *gin.RouterGroup) {
	rg.GET("/about", m.Handler.About)
	rg.GET("/contact", m.Handler.ContactForm)
	rg.POST("/contact", m.Handler.SubmitContact)
}

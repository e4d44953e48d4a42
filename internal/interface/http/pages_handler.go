package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-clean-architecture/internal/application"
	"github.com/oksasatya/go-blog-clean-architecture/internal/interface/middleware"
	"github.com/oksasatya/go-blog-clean-architecture/internal/interface/view"
	"github.com/oksasatya/go-blog-clean-architecture/pkg/forms"
)

// PagesHandler serves the static about page and the contact form.
type PagesHandler struct {
	Contact *application.ContactService
	Flash   *view.Flash
	Logger  *logrus.Logger
}

func NewPagesHandler(contact *application.ContactService, flash *view.Flash, logger *logrus.Logger) *PagesHandler {
	return &PagesHandler{Contact: contact, Flash: flash, Logger: logger}
}

// About renders the about page.
func (h *PagesHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{
		"Viewer": view.NewViewer(middleware.CurrentActor(c)),
		"Flash":  h.Flash.Take(c),
	})
}

// ContactForm renders the contact page.
func (h *PagesHandler) ContactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"Viewer": view.NewViewer(middleware.CurrentActor(c)),
		"Flash":  h.Flash.Take(c),
	})
}

// SubmitContact queues the message for the email worker and
// acknowledges the visitor.
func (h *PagesHandler) SubmitContact(c *gin.Context) {
	var form forms.ContactForm
	if err := c.ShouldBind(&form); err != nil {
		h.Flash.Set(c, forms.ToMessage(err))
		c.Redirect(http.StatusFound, "/contact")
		return
	}
	if err := h.Contact.Submit(c.Request.Context(), form.Name, form.Email, form.Message); err != nil {
		h.Flash.Set(c, "Could not send your message, please try again later.")
		c.Redirect(http.StatusFound, "/contact")
		return
	}
	h.Flash.Set(c, "Thanks, your message has been sent.")
	c.Redirect(http.StatusFound, "/contact")
}

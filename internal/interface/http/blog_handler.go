package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-clean-architecture/internal/application"
	"github.com/oksasatya/go-blog-clean-architecture/internal/domain/entity"
	"github.com/oksasatya/go-blog-clean-architecture/internal/interface/middleware"
	"github.com/oksasatya/go-blog-clean-architecture/internal/interface/view"
	"github.com/oksasatya/go-blog-clean-architecture/pkg/forms"
)

// BlogHandler serves the public pages and the admin post editor.
type BlogHandler struct {
	Svc    *application.ContentService
	Flash  *view.Flash
	Logger *logrus.Logger
}

func NewBlogHandler(svc *application.ContentService, flash *view.Flash, logger *logrus.Logger) *BlogHandler {
	return &BlogHandler{Svc: svc, Flash: flash, Logger: logger}
}

// Index renders the post list.
func (h *BlogHandler) Index(c *gin.Context) {
	posts, err := h.Svc.ListPosts(c.Request.Context())
	if err != nil {
		h.renderError(c, http.StatusInternalServerError, err)
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Viewer": view.NewViewer(middleware.CurrentActor(c)),
		"Posts":  view.NewPosts(posts),
		"Flash":  h.Flash.Take(c),
	})
}

// ShowPost renders a single post with its comments and the comment box.
func (h *BlogHandler) ShowPost(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}
	post, comments, err := h.Svc.GetPost(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrPostNotFound) {
			h.renderError(c, http.StatusNotFound, err)
			return
		}
		h.renderError(c, http.StatusInternalServerError, err)
		return
	}
	c.HTML(http.StatusOK, "post.html", gin.H{
		"Viewer":   view.NewViewer(middleware.CurrentActor(c)),
		"Post":     view.NewPost(post),
		"Comments": view.NewComments(comments),
		"Flash":    h.Flash.Take(c),
	})
}

// AddComment handles the comment form on a post page. Anonymous
// submissions are sent to login; the drafted text is not preserved
// across that redirect.
func (h *BlogHandler) AddComment(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}
	var form forms.CommentForm
	if err := c.ShouldBind(&form); err != nil {
		h.Flash.Set(c, forms.ToMessage(err))
		c.Redirect(http.StatusFound, "/post/"+strconv.FormatInt(id, 10))
		return
	}
	_, err := h.Svc.AddComment(c.Request.Context(), middleware.CurrentActor(c), id, form.Text)
	switch {
	case errors.Is(err, application.ErrUnauthenticated):
		h.Flash.Set(c, "You need to login to comment!")
		c.Redirect(http.StatusFound, "/login")
		return
	case errors.Is(err, application.ErrPostNotFound):
		h.renderError(c, http.StatusNotFound, err)
		return
	case err != nil:
		h.renderError(c, http.StatusInternalServerError, err)
		return
	}
	c.Redirect(http.StatusFound, "/post/"+strconv.FormatInt(id, 10))
}

// NewPostForm renders the empty post editor.
func (h *BlogHandler) NewPostForm(c *gin.Context) {
	c.HTML(http.StatusOK, "make-post.html", gin.H{
		"Viewer": view.NewViewer(middleware.CurrentActor(c)),
		"IsEdit": false,
		"Flash":  h.Flash.Take(c),
	})
}

// CreatePost handles the new-post submission.
func (h *BlogHandler) CreatePost(c *gin.Context) {
	var form forms.PostForm
	if err := c.ShouldBind(&form); err != nil {
		h.Flash.Set(c, forms.ToMessage(err))
		c.Redirect(http.StatusFound, "/new-post")
		return
	}
	post, err := h.Svc.CreatePost(c.Request.Context(), middleware.CurrentActor(c), entity.PostFields{
		Title:    form.Title,
		Subtitle: form.Subtitle,
		Body:     form.Body,
		ImgURL:   form.ImgURL,
	})
	switch {
	case errors.Is(err, application.ErrDuplicateTitle):
		h.Flash.Set(c, err.Error())
		c.Redirect(http.StatusFound, "/new-post")
		return
	case errors.Is(err, application.ErrForbidden):
		h.renderError(c, http.StatusForbidden, err)
		return
	case err != nil:
		h.renderError(c, http.StatusInternalServerError, err)
		return
	}
	c.Redirect(http.StatusFound, "/post/"+strconv.FormatInt(post.ID, 10))
}

// EditPostForm renders the editor prefilled with the post's current
// fields.
func (h *BlogHandler) EditPostForm(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}
	post, _, err := h.Svc.GetPost(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrPostNotFound) {
			h.renderError(c, http.StatusNotFound, err)
			return
		}
		h.renderError(c, http.StatusInternalServerError, err)
		return
	}
	c.HTML(http.StatusOK, "make-post.html", gin.H{
		"Viewer": view.NewViewer(middleware.CurrentActor(c)),
		"IsEdit": true,
		"Post":   view.NewPost(post),
		"Flash":  h.Flash.Take(c),
	})
}

// UpdatePost handles the edit-post submission.
func (h *BlogHandler) UpdatePost(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}
	var form forms.PostForm
	if err := c.ShouldBind(&form); err != nil {
		h.Flash.Set(c, forms.ToMessage(err))
		c.Redirect(http.StatusFound, "/edit-post/"+strconv.FormatInt(id, 10))
		return
	}
	post, err := h.Svc.UpdatePost(c.Request.Context(), middleware.CurrentActor(c), id, entity.PostFields{
		Title:    form.Title,
		Subtitle: form.Subtitle,
		Body:     form.Body,
		ImgURL:   form.ImgURL,
	})
	switch {
	case errors.Is(err, application.ErrPostNotFound):
		h.renderError(c, http.StatusNotFound, err)
		return
	case errors.Is(err, application.ErrDuplicateTitle):
		h.Flash.Set(c, err.Error())
		c.Redirect(http.StatusFound, "/edit-post/"+strconv.FormatInt(id, 10))
		return
	case errors.Is(err, application.ErrForbidden):
		h.renderError(c, http.StatusForbidden, err)
		return
	case err != nil:
		h.renderError(c, http.StatusInternalServerError, err)
		return
	}
	c.Redirect(http.StatusFound, "/post/"+strconv.FormatInt(post.ID, 10))
}

// DeletePost removes a post and its comments, then returns to the
// index.
func (h *BlogHandler) DeletePost(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}
	err := h.Svc.DeletePost(c.Request.Context(), middleware.CurrentActor(c), id)
	switch {
	case errors.Is(err, application.ErrPostNotFound):
		h.renderError(c, http.StatusNotFound, err)
		return
	case errors.Is(err, application.ErrForbidden):
		h.renderError(c, http.StatusForbidden, err)
		return
	case err != nil:
		h.renderError(c, http.StatusInternalServerError, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Search renders full-text results from the post index.
func (h *BlogHandler) Search(c *gin.Context) {
	q := c.Query("q")
	var results []map[string]any
	if q != "" {
		var err error
		results, err = h.Svc.SearchPosts(c.Request.Context(), q, 20)
		if err != nil {
			h.Logger.WithError(err).Warn("post search failed")
			results = nil
		}
	}
	c.HTML(http.StatusOK, "search.html", gin.H{
		"Viewer":  view.NewViewer(middleware.CurrentActor(c)),
		"Query":   q,
		"Results": results,
		"Flash":   h.Flash.Take(c),
	})
}

// UploadCover receives a multipart cover image from the post editor and
// returns the stored public URL.
func (h *BlogHandler) UploadCover(c *gin.Context) {
	fh, err := c.FormFile("cover")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing cover file"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable cover file"})
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadCover(c.Request.Context(), middleware.CurrentActor(c), fh.Filename, fh.Header.Get("Content-Type"), f)
	switch {
	case errors.Is(err, application.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	case err != nil:
		h.Logger.WithError(err).Error("cover upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *BlogHandler) postID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.renderError(c, http.StatusNotFound, application.ErrPostNotFound)
		return 0, false
	}
	return id, true
}

func (h *BlogHandler) renderError(c *gin.Context, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("request failed")
	}
	c.HTML(status, "error.html", gin.H{
		"Status":  status,
		"Message": http.StatusText(status),
	})
}

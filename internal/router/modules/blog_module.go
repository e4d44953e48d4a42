package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-blog-clean-architecture/internal/interface/http"
	"github.com/oksasatya/go-blog-clean-architecture/internal/interface/middleware"
)

// BlogModule wires the public reading routes and the admin-only post
// editor.
// Public: GET /, GET /post/:id, POST /post/:id (comment), GET /search
// Admin:  GET+POST /new-post, GET+POST /edit-post/:id,
//         GET /delete-post/:id, POST /upload-cover
type BlogModule struct {
	Handler *handlers.BlogHandler
}

func NewBlogModule(h *handlers.BlogHandler) *BlogModule {
	return &BlogModule{Handler: h}
}

func (m *BlogModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Handler.Index)
	rg.GET("/post/:id", m.Handler.ShowPost)
	rg.POST("/post/:id", m.Handler.AddComment)
	rg.GET("/search", m.Handler.Search)

	admin := rg.Group("/")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/new-post", m.Handler.NewPostForm)
		admin.POST("/new-post", m.Handler.CreatePost)
		admin.GET("/edit-post/:id", m.Handler.EditPostForm)
		admin.POST("/edit-post/:id", m.Handler.UpdatePost)
		admin.GET("/delete-post/:id", m.Handler.DeletePost)
		admin.POST("/upload-cover", m.Handler.UploadCover)
	}
}

// Package view holds the plain data structures handed to the HTML
// templates. No framework types cross this boundary: handlers build
// these from entities and the templates render them.
package view

import (
	"html/template"

	"github.com/oksasatya/go-blog-clean-architecture/internal/application"
	"github.com/oksasatya/go-blog-clean-architecture/internal/domain/entity"
	"github.com/oksasatya/go-blog-clean-architecture/pkg/helpers"
)

// Viewer describes the requesting actor to the templates (nav state,
// admin controls, comment box visibility).
type Viewer struct {
	Name          string
	Authenticated bool
	Admin         bool
}

// Post is the rendering projection of a blog post. Body is trusted
// markup: only administrators author posts, through the rich editor.
type Post struct {
	ID         int64
	Title      string
	Subtitle   string
	Date       string
	Body       template.HTML
	ImgURL     string
	AuthorName string
}

// Comment is the rendering projection of a comment, with the author's
// gravatar resolved.
type Comment struct {
	Text        string
	AuthorName  string
	GravatarURL string
}

// NewViewer projects an actor for the templates.
func NewViewer(a application.Actor) Viewer {
	return Viewer{Name: a.Name, Authenticated: a.Authenticated, Admin: a.IsAdministrator()}
}

// NewPost projects a post entity.
func NewPost(p *entity.Post) Post {
	return Post{
		ID:         p.ID,
		Title:      p.Title,
		Subtitle:   p.Subtitle,
		Date:       p.Date,
		Body:       template.HTML(p.Body),
		ImgURL:     p.ImgURL,
		AuthorName: p.AuthorName,
	}
}

// NewPosts projects a slice of post entities in order.
func NewPosts(posts []entity.Post) []Post {
	out := make([]Post, 0, len(posts))
	for i := range posts {
		out = append(out, NewPost(&posts[i]))
	}
	return out
}

// NewComments projects comments with gravatar icons sized for the post
// page sidebar.
func NewComments(comments []entity.Comment) []Comment {
	out := make([]Comment, 0, len(comments))
	for _, c := range comments {
		out = append(out, Comment{
			Text:        c.Text,
			AuthorName:  c.AuthorName,
			GravatarURL: helpers.GravatarURL(c.AuthorEmail, 100),
		})
	}
	return out
}

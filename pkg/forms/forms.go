// Package forms is the validation boundary for submitted field values.
// Handlers bind a form struct, and on failure turn the error into a
// single flash-style message; the services behind them only ever see
// validated data.
package forms

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterForm carries the /register fields.
type RegisterForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,pwd"`
	Name     string `form:"name" binding:"required,min=2,max=100"`
}

// LoginForm carries the /login fields.
type LoginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// PostForm carries the new-post / edit-post fields.
type PostForm struct {
	Title    string `form:"title" binding:"required,max=250"`
	Subtitle string `form:"subtitle" binding:"required,max=250"`
	Body     string `form:"body" binding:"required"`
	ImgURL   string `form:"img_url" binding:"required,url,max=250"`
}

// CommentForm carries the comment box on a post page.
type CommentForm struct {
	Text string `form:"comment" binding:"required,max=1000"`
}

// ContactForm carries the /contact fields.
type ContactForm struct {
	Name    string `form:"name" binding:"required,max=100"`
	Email   string `form:"email" binding:"required,email"`
	Message string `form:"message" binding:"required,max=5000"`
}

// Init configures the global validator used by Gin's binding.
// - Uses form tag names in errors.
// - Registers alias tags for common validations.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		v.RegisterAlias("pwd", "min=8") // password minimum length
	}
}

// ToMessage converts a binding/validation error into one user-facing
// flash message. Only the first field error is reported; the form is
// re-rendered and the user fixes fields one at a time anyway.
func ToMessage(err error) string {
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fe.Field() + " " + formatFieldError(fe)
	}
	return "invalid form submission"
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "url":
		return "must be a valid URL"
	case "pwd", "min":
		return "is too short"
	case "max":
		return "is too long"
	default:
		return "is invalid"
	}
}

package forms

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	Init()
}

func bindForm(t *testing.T, values url.Values, obj any) error {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request = req
	return c.ShouldBind(obj)
}

func TestRegisterFormValid(t *testing.T) {
	var f RegisterForm
	err := bindForm(t, url.Values{
		"email":    {"alice@example.com"},
		"password": {"s3cretpass"},
		"name":     {"Alice"},
	}, &f)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", f.Email)
	assert.Equal(t, "Alice", f.Name)
}

func TestRegisterFormShortPassword(t *testing.T) {
	var f RegisterForm
	err := bindForm(t, url.Values{
		"email":    {"alice@example.com"},
		"password": {"short"},
		"name":     {"Alice"},
	}, &f)
	require.Error(t, err)

	msg := ToMessage(err)
	assert.Contains(t, msg, "password")
	assert.Contains(t, msg, "too short")
}

func TestRegisterFormBadEmail(t *testing.T) {
	var f RegisterForm
	err := bindForm(t, url.Values{
		"email":    {"not-an-email"},
		"password": {"s3cretpass"},
		"name":     {"Alice"},
	}, &f)
	require.Error(t, err)
	assert.Contains(t, ToMessage(err), "valid email")
}

func TestLoginFormMissingFields(t *testing.T) {
	var f LoginForm
	err := bindForm(t, url.Values{"email": {"alice@example.com"}}, &f)
	require.Error(t, err)

	msg := ToMessage(err)
	assert.Contains(t, msg, "password")
	assert.Contains(t, msg, "required")
}

func TestPostFormBadImageURL(t *testing.T) {
	var f PostForm
	err := bindForm(t, url.Values{
		"title":    {"A Day in the Garden"},
		"subtitle": {"Roses and thorns"},
		"body":     {"<p>It rained.</p>"},
		"img_url":  {"not a url"},
	}, &f)
	require.Error(t, err)
	assert.Contains(t, ToMessage(err), "img_url")
}

func TestCommentFormValid(t *testing.T) {
	var f CommentForm
	err := bindForm(t, url.Values{"comment": {"Lovely roses"}}, &f)
	require.NoError(t, err)
	assert.Equal(t, "Lovely roses", f.Text)
}

func TestToMessageNonValidationError(t *testing.T) {
	assert.Equal(t, "invalid form submission", ToMessage(assert.AnError))
	assert.Empty(t, ToMessage(nil))
}

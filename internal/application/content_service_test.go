package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-blog-clean-architecture/internal/domain/entity"
)

var (
	adminActor  = Actor{ID: 1, Email: "admin@example.com", Name: "Admin", Admin: true, Authenticated: true}
	readerActor = Actor{ID: 2, Email: "alice@example.com", Name: "Alice", Authenticated: true}
)

func newTestContentService() (*ContentService, *memPostRepo, *memCommentRepo) {
	posts, comments := newMemContentRepos()
	svc := NewContentService(posts, comments, testLogger(), nil, "", nil, "")
	return svc, posts, comments
}

func samplePostFields() entity.PostFields {
	return entity.PostFields{
		Title:    "A Day in the Garden",
		Subtitle: "Roses and thorns",
		Body:     "<p>It rained.</p>",
		ImgURL:   "https://example.com/rose.jpg",
	}
}

func TestCreatePostStampsDateAndAuthor(t *testing.T) {
	svc, _, _ := newTestContentService()

	p, err := svc.CreatePost(context.Background(), adminActor, samplePostFields())
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, adminActor.ID, p.AuthorID)
	assert.Equal(t, adminActor.Name, p.AuthorName)

	parsed, err := time.Parse(postDateLayout, p.Date)
	require.NoError(t, err, "date %q should match the display layout", p.Date)
	assert.Equal(t, time.Now().Year(), parsed.Year())
}

func TestCreatePostForbiddenForNonAdmins(t *testing.T) {
	svc, posts, _ := newTestContentService()
	ctx := context.Background()

	for _, actor := range []Actor{Anonymous, readerActor} {
		_, err := svc.CreatePost(ctx, actor, samplePostFields())
		assert.ErrorIs(t, err, ErrForbidden)
	}

	all, err := posts.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "a refused create must leave no trace")
}

func TestCreatePostDuplicateTitle(t *testing.T) {
	svc, posts, _ := newTestContentService()
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, adminActor, samplePostFields())
	require.NoError(t, err)

	fields := samplePostFields()
	fields.Body = "different body, same title"
	_, err = svc.CreatePost(ctx, adminActor, fields)
	assert.ErrorIs(t, err, ErrDuplicateTitle)

	all, err := posts.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpdatePostKeepsAuthorAndDate(t *testing.T) {
	svc, _, _ := newTestContentService()
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, adminActor, samplePostFields())
	require.NoError(t, err)

	fields := entity.PostFields{Title: "A Night in the Garden", Subtitle: "After dark", Body: "<p>Fireflies.</p>", ImgURL: "https://example.com/night.jpg"}
	updated, err := svc.UpdatePost(ctx, adminActor, created.ID, fields)
	require.NoError(t, err)
	assert.Equal(t, "A Night in the Garden", updated.Title)
	assert.Equal(t, created.AuthorID, updated.AuthorID)
	assert.Equal(t, created.Date, updated.Date)
}

func TestUpdatePostErrors(t *testing.T) {
	svc, _, _ := newTestContentService()
	ctx := context.Background()

	_, err := svc.UpdatePost(ctx, adminActor, 404, samplePostFields())
	assert.ErrorIs(t, err, ErrPostNotFound)

	_, err = svc.UpdatePost(ctx, readerActor, 1, samplePostFields())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeletePostCascadesComments(t *testing.T) {
	svc, _, comments := newTestContentService()
	ctx := context.Background()

	p, err := svc.CreatePost(ctx, adminActor, samplePostFields())
	require.NoError(t, err)

	_, err = svc.AddComment(ctx, readerActor, p.ID, "Lovely roses")
	require.NoError(t, err)
	_, err = svc.AddComment(ctx, adminActor, p.ID, "Thanks!")
	require.NoError(t, err)
	require.Equal(t, 2, comments.count())

	require.NoError(t, svc.DeletePost(ctx, adminActor, p.ID))

	_, _, err = svc.GetPost(ctx, p.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.Zero(t, comments.count(), "deleting a post must not orphan its comments")
}

func TestDeletePostErrors(t *testing.T) {
	svc, _, _ := newTestContentService()
	ctx := context.Background()

	assert.ErrorIs(t, svc.DeletePost(ctx, adminActor, 404), ErrPostNotFound)
	assert.ErrorIs(t, svc.DeletePost(ctx, readerActor, 1), ErrForbidden)
}

func TestAddComment(t *testing.T) {
	svc, posts, _ := newTestContentService()
	ctx := context.Background()

	posts.seed(entity.Post{ID: 7, AuthorID: adminActor.ID, Title: "Seeded", Date: "May 01,2026"})

	c, err := svc.AddComment(ctx, readerActor, 7, "First!")
	require.NoError(t, err)
	assert.Equal(t, int64(7), c.PostID)
	assert.Equal(t, readerActor.ID, c.AuthorID)
	assert.Equal(t, readerActor.Name, c.AuthorName)
	assert.Equal(t, readerActor.Email, c.AuthorEmail)

	_, list, err := svc.GetPost(ctx, 7)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "First!", list[0].Text)
}

func TestAddCommentRequiresLogin(t *testing.T) {
	svc, posts, comments := newTestContentService()
	ctx := context.Background()

	posts.seed(entity.Post{ID: 7, Title: "Seeded", Date: "May 01,2026"})

	_, err := svc.AddComment(ctx, Anonymous, 7, "Drive-by")
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Zero(t, comments.count())
}

func TestAddCommentToMissingPost(t *testing.T) {
	svc, _, _ := newTestContentService()

	_, err := svc.AddComment(context.Background(), readerActor, 404, "Hello?")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestUploadCoverForbiddenForNonAdmins(t *testing.T) {
	svc, _, _ := newTestContentService()

	_, err := svc.UploadCover(context.Background(), readerActor, "rose.jpg", "image/jpeg", nil)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSearchPostsWithoutBackend(t *testing.T) {
	svc, _, _ := newTestContentService()

	hits, err := svc.SearchPosts(context.Background(), "garden", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestGetPostMissing(t *testing.T) {
	svc, _, _ := newTestContentService()

	_, _, err := svc.GetPost(context.Background(), 404)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

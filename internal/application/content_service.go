package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-clean-architecture/internal/domain/entity"
	"github.com/oksasatya/go-blog-clean-architecture/internal/domain/repository"
	"github.com/oksasatya/go-blog-clean-architecture/pkg/helpers"
)

// postDateLayout reproduces the blog's human-readable publication date,
// e.g. "March 05,2024".
const postDateLayout = "January 02,2006"

// ContentService is the CRUD surface over posts and comments. Every
// mutating operation takes the resolved actor and refuses non-admins
// before touching the store.
type ContentService struct {
	Posts        repository.PostRepository
	Comments     repository.CommentRepository
	Logger       *logrus.Logger
	ES           *elasticsearch.Client
	ESPostsIndex string
	GCS          *storage.Client
	GCSBucket    string
}

func NewContentService(posts repository.PostRepository, comments repository.CommentRepository, logger *logrus.Logger, es *elasticsearch.Client, esPostsIndex string, gcs *storage.Client, gcsBucket string) *ContentService {
	return &ContentService{
		Posts:        posts,
		Comments:     comments,
		Logger:       logger,
		ES:           es,
		ESPostsIndex: esPostsIndex,
		GCS:          gcs,
		GCSBucket:    gcsBucket,
	}
}

// ListPosts returns every post in storage order, fresh from the store.
func (s *ContentService) ListPosts(ctx context.Context) ([]entity.Post, error) {
	return s.Posts.List(ctx)
}

// GetPost returns the post and its comments, oldest comment first.
func (s *ContentService) GetPost(ctx context.Context, id int64) (*entity.Post, []entity.Comment, error) {
	p, err := s.Posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrPostNotFound
		}
		return nil, nil, err
	}
	comments, err := s.Comments.ListByPost(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return p, comments, nil
}

// CreatePost stamps the publication date at call time and inserts the
// post; the title-unique check happens atomically with the insert.
func (s *ContentService) CreatePost(ctx context.Context, actor Actor, fields entity.PostFields) (*entity.Post, error) {
	if !actor.IsAdministrator() {
		return nil, ErrForbidden
	}
	p := &entity.Post{
		AuthorID: actor.ID,
		Title:    fields.Title,
		Subtitle: fields.Subtitle,
		Date:     time.Now().Format(postDateLayout),
		Body:     fields.Body,
		ImgURL:   fields.ImgURL,
	}
	if err := s.Posts.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicateTitle) {
			return nil, ErrDuplicateTitle
		}
		return nil, err
	}
	p.AuthorName = actor.Name
	s.indexPost(ctx, p)
	s.Logger.WithFields(logrus.Fields{"post_id": p.ID, "title": p.Title}).Info("post created")
	return p, nil
}

// UpdatePost overwrites title, subtitle, body, and image URL. Author
// and date stay as created.
func (s *ContentService) UpdatePost(ctx context.Context, actor Actor, id int64, fields entity.PostFields) (*entity.Post, error) {
	if !actor.IsAdministrator() {
		return nil, ErrForbidden
	}
	p, err := s.Posts.Update(ctx, id, fields)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrPostNotFound
		case errors.Is(err, repository.ErrDuplicateTitle):
			return nil, ErrDuplicateTitle
		}
		return nil, err
	}
	s.indexPost(ctx, p)
	return p, nil
}

// DeletePost removes the post and, through the store's cascade, all of
// its comments.
func (s *ContentService) DeletePost(ctx context.Context, actor Actor, id int64) error {
	if !actor.IsAdministrator() {
		return ErrForbidden
	}
	if err := s.Posts.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	s.deindexPost(ctx, id)
	s.Logger.WithField("post_id", id).Info("post deleted")
	return nil
}

// AddComment records a comment by any authenticated actor on an
// existing post. Anonymous actors are told to log in instead.
func (s *ContentService) AddComment(ctx context.Context, actor Actor, postID int64, text string) (*entity.Comment, error) {
	if !actor.Authenticated {
		return nil, ErrUnauthenticated
	}
	c := &entity.Comment{
		PostID:      postID,
		AuthorID:    actor.ID,
		Text:        text,
		AuthorName:  actor.Name,
		AuthorEmail: actor.Email,
	}
	if err := s.Comments.Create(ctx, c); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return c, nil
}

// UploadCover streams a cover image to GCS and returns its public URL
// for use as the post's img_url.
func (s *ContentService) UploadCover(ctx context.Context, actor Actor, filename, contentType string, r io.Reader) (string, error) {
	if !actor.IsAdministrator() {
		return "", ErrForbidden
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := "covers/" + uuid.NewString() + ext
	return helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
}

// SearchPosts performs a simple multi_match search on title, subtitle,
// and body.
func (s *ContentService) SearchPosts(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESPostsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "subtitle", "body"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESPostsIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

// indexPost mirrors the post into Elasticsearch. Best effort: search is
// a convenience over the store of record, so failures are logged, not
// returned.
func (s *ContentService) indexPost(ctx context.Context, p *entity.Post) {
	if s.ES == nil || s.ESPostsIndex == "" {
		return
	}
	doc := map[string]any{
		"id":       p.ID,
		"title":    p.Title,
		"subtitle": p.Subtitle,
		"body":     p.Body,
		"date":     p.Date,
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESPostsIndex, DocumentID: strconv.FormatInt(p.ID, 10), Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		s.Logger.WithError(err).WithField("post_id", p.ID).Warn("es index failed")
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		s.Logger.WithField("status", res.Status()).WithField("post_id", p.ID).Warn("es index response error")
	}
}

func (s *ContentService) deindexPost(ctx context.Context, id int64) {
	if s.ES == nil || s.ESPostsIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESPostsIndex, DocumentID: strconv.FormatInt(id, 10)}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		s.Logger.WithError(err).WithField("post_id", id).Warn("es delete failed")
		return
	}
	_ = res.Body.Close()
}

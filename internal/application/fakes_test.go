package application

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-clean-architecture/internal/domain/entity"
	"github.com/oksasatya/go-blog-clean-architecture/internal/domain/repository"
	"github.com/oksasatya/go-blog-clean-architecture/internal/infrastructure/session"
)

// In-memory fakes mirroring the Postgres repositories, including the
// uniqueness and cascade behavior the real schema enforces.

type memUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{nextID: 1, users: map[int64]entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	u.ID = r.nextID
	u.CreatedAt = time.Now()
	r.nextID++
	r.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

type memCommentRepo struct {
	mu       sync.Mutex
	nextID   int64
	comments []entity.Comment
	posts    *memPostRepo
}

type memPostRepo struct {
	mu       sync.Mutex
	nextID   int64
	posts    map[int64]entity.Post
	comments *memCommentRepo
}

// newMemContentRepos wires post and comment fakes together so deleting
// a post cascades like the real foreign key does.
func newMemContentRepos() (*memPostRepo, *memCommentRepo) {
	posts := &memPostRepo{nextID: 1, posts: map[int64]entity.Post{}}
	comments := &memCommentRepo{nextID: 1, posts: posts}
	posts.comments = comments
	return posts, comments
}

func (r *memPostRepo) List(context.Context) ([]entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Post, 0, len(r.posts))
	for id := int64(1); id < r.nextID; id++ {
		if p, ok := r.posts[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPostRepo) GetByID(_ context.Context, id int64) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *memPostRepo) Create(_ context.Context, p *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.posts {
		if existing.Title == p.Title {
			return repository.ErrDuplicateTitle
		}
	}
	p.ID = r.nextID
	p.CreatedAt = time.Now()
	r.nextID++
	r.posts[p.ID] = *p
	return nil
}

func (r *memPostRepo) Update(_ context.Context, id int64, fields entity.PostFields) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for otherID, existing := range r.posts {
		if otherID != id && existing.Title == fields.Title {
			return nil, repository.ErrDuplicateTitle
		}
	}
	p.Title = fields.Title
	p.Subtitle = fields.Subtitle
	p.Body = fields.Body
	p.ImgURL = fields.ImgURL
	r.posts[id] = p
	return &p, nil
}

func (r *memPostRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	if _, ok := r.posts[id]; !ok {
		r.mu.Unlock()
		return repository.ErrNotFound
	}
	delete(r.posts, id)
	r.mu.Unlock()
	r.comments.deleteByPost(id)
	return nil
}

// seed inserts a post under a fixed id, bypassing the id sequence.
func (r *memPostRepo) seed(p entity.Post) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts[p.ID] = p
	if p.ID >= r.nextID {
		r.nextID = p.ID + 1
	}
}

func (r *memCommentRepo) Create(_ context.Context, c *entity.Comment) error {
	r.posts.mu.Lock()
	_, ok := r.posts.posts[c.PostID]
	r.posts.mu.Unlock()
	if !ok {
		return repository.ErrNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.nextID
	c.CreatedAt = time.Now()
	r.nextID++
	r.comments = append(r.comments, *c)
	return nil
}

func (r *memCommentRepo) ListByPost(_ context.Context, postID int64) ([]entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Comment
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memCommentRepo) deleteByPost(postID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.comments[:0]
	for _, c := range r.comments {
		if c.PostID != postID {
			kept = append(kept, c)
		}
	}
	r.comments = kept
}

func (r *memCommentRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.comments)
}

type memSessionStore struct {
	mu       sync.Mutex
	sessions map[string]session.Session
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: map[string]session.Session{}}
}

func (s *memSessionStore) Create(_ context.Context, sess session.Session) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sid := uuid.NewString()
	s.sessions[sid] = sess
	return sid, nil
}

func (s *memSessionStore) Get(_ context.Context, sid string) (session.Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sid]
	return sess, ok, nil
}

func (s *memSessionStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sid)
	return nil
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

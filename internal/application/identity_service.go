package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-clean-architecture/internal/domain/entity"
	"github.com/oksasatya/go-blog-clean-architecture/internal/domain/repository"
	"github.com/oksasatya/go-blog-clean-architecture/internal/infrastructure/session"
	"github.com/oksasatya/go-blog-clean-architecture/pkg/helpers"
)

// IdentityService owns the login lifecycle: registration,
// authentication, actor resolution, and session termination. It decides
// when a session starts and stops; the cookie transport belongs to the
// handlers.
type IdentityService struct {
	Users    repository.UserRepository
	Sessions session.Store
	Tokens   *helpers.TokenManager
	Logger   *logrus.Logger
}

func NewIdentityService(users repository.UserRepository, sessions session.Store, tokens *helpers.TokenManager, logger *logrus.Logger) *IdentityService {
	return &IdentityService{Users: users, Sessions: sessions, Tokens: tokens, Logger: logger}
}

// SessionToken is the signed cookie value handed back after a
// successful register or login, with its expiry for the cookie max-age.
type SessionToken struct {
	Value     string
	ExpiresAt time.Time
}

// Register creates the account with a bcrypt-hashed password and logs
// the new user in. A colliding email is rejected by the store before
// any record is written.
func (s *IdentityService) Register(ctx context.Context, email, password, name string) (*entity.User, SessionToken, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, SessionToken{}, err
	}
	u := &entity.User{Email: email, Password: hash, Name: name}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, SessionToken{}, ErrDuplicateEmail
		}
		return nil, SessionToken{}, err
	}
	tok, err := s.openSession(ctx, u)
	if err != nil {
		return nil, SessionToken{}, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("user registered")
	return u, tok, nil
}

// Authenticate verifies the credential and opens a session. The two
// failure modes stay distinct: unknown email vs wrong password.
func (s *IdentityService) Authenticate(ctx context.Context, email, password string) (*entity.User, SessionToken, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, SessionToken{}, ErrUserNotFound
		}
		return nil, SessionToken{}, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, SessionToken{}, ErrBadCredential
	}
	tok, err := s.openSession(ctx, u)
	if err != nil {
		return nil, SessionToken{}, err
	}
	return u, tok, nil
}

// CurrentActor resolves the actor for a request from its session token.
// Any failure along the way (bad token, expired or deleted session,
// claims drift) resolves to Anonymous rather than an error.
func (s *IdentityService) CurrentActor(ctx context.Context, token string) Actor {
	if token == "" {
		return Anonymous
	}
	claims, err := s.Tokens.Parse(token)
	if err != nil {
		return Anonymous
	}
	sess, ok, err := s.Sessions.Get(ctx, claims.SessionID)
	if err != nil || !ok {
		return Anonymous
	}
	uid, err := claims.UserID()
	if err != nil || uid != sess.UserID {
		return Anonymous
	}
	return Actor{
		ID:            sess.UserID,
		Email:         sess.Email,
		Name:          sess.Name,
		Admin:         sess.Admin,
		Authenticated: true,
	}
}

// EndSession invalidates the session behind the token. An unparseable
// token means there is nothing to end.
func (s *IdentityService) EndSession(ctx context.Context, token string) error {
	claims, err := s.Tokens.Parse(token)
	if err != nil {
		return nil
	}
	return s.Sessions.Delete(ctx, claims.SessionID)
}

func (s *IdentityService) openSession(ctx context.Context, u *entity.User) (SessionToken, error) {
	sid, err := s.Sessions.Create(ctx, session.Session{
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Admin:  u.Admin,
	})
	if err != nil {
		return SessionToken{}, err
	}
	value, exp, err := s.Tokens.Generate(u.ID, sid)
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Value: value, ExpiresAt: exp}, nil
}

// Package session holds the server-side half of a login: a record in
// Redis keyed by session id, expiring with the cookie. The signed
// cookie token only points at it.
package session

import "context"

// Session is the state associated with one logged-in browser.
type Session struct {
	UserID int64  `redis:"user_id"`
	Email  string `redis:"email"`
	Name   string `redis:"name"`
	Admin  bool   `redis:"admin"`
}

// Store persists sessions. Create returns the new session id; Get
// reports ok=false for an unknown or expired id.
type Store interface {
	Create(ctx context.Context, s Session) (string, error)
	Get(ctx context.Context, sid string) (Session, bool, error)
	Delete(ctx context.Context, sid string) error
}

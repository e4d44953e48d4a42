package application

import "errors"

// Business errors returned by the services. All of them are recoverable
// at the route boundary: handlers map each to a flash message and a
// redirect, never a crash.
var (
	ErrUserNotFound    = errors.New("no account with that email")
	ErrBadCredential   = errors.New("password is incorrect")
	ErrDuplicateEmail  = errors.New("email already registered")
	ErrPostNotFound    = errors.New("post not found")
	ErrDuplicateTitle  = errors.New("a post with that title already exists")
	ErrUnauthenticated = errors.New("login required")
	ErrForbidden       = errors.New("forbidden")
)

package entity

import "time"

// User is a registered reader or the administrator.
// Password holds a bcrypt hash, never the plaintext credential.
// Admin is set during provisioning only (cmd/seed); content mutations
// are refused for everyone else.
type User struct {
	ID        int64
	Email     string
	Password  string
	Name      string
	Admin     bool
	CreatedAt time.Time
}

package entity

import "time"

// Comment belongs to exactly one post and one author. References are
// plain foreign-key ids; AuthorName and AuthorEmail are denormalized
// read-side fields filled by the repository join for rendering.
type Comment struct {
	ID          int64
	PostID      int64
	AuthorID    int64
	Text        string
	AuthorName  string
	AuthorEmail string
	CreatedAt   time.Time
}

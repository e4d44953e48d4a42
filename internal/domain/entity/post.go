package entity

import "time"

// Post is a published blog entry. Title is unique across all posts.
// Date is the human-readable publication date stamped at creation
// ("January 02,2006") and never touched by edits; AuthorID references
// the owning user, immutable after creation.
type Post struct {
	ID         int64
	AuthorID   int64
	Title      string
	Subtitle   string
	Date       string
	Body       string
	ImgURL     string
	AuthorName string // read-side, filled by the repository join
	CreatedAt  time.Time
}

// PostFields carries the editable fields of a post as validated by the
// forms layer. Author and date are deliberately absent.
type PostFields struct {
	Title    string
	Subtitle string
	Body     string
	ImgURL   string
}

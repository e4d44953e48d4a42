package repository

import (
	"context"

	"github.com/oksasatya/go-blog-clean-architecture/internal/domain/entity"
)

// CommentRepository defines the interface for comment persistence.
// Create must fail with ErrNotFound when the parent post is gone; a
// comment never exists without a valid author and parent post.
// ListByPost returns comments joined with author name/email for
// rendering, ordered oldest first.
type CommentRepository interface {
	Create(ctx context.Context, c *entity.Comment) error
	ListByPost(ctx context.Context, postID int64) ([]entity.Comment, error)
}

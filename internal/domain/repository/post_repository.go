package repository

import (
	"context"

	"github.com/oksasatya/go-blog-clean-architecture/internal/domain/entity"
)

// PostRepository defines the interface for blog post persistence.
// Create and Update enforce title uniqueness atomically with the write
// and report a collision as ErrDuplicateTitle. Delete removes the post
// together with its comments in one transaction.
type PostRepository interface {
	List(ctx context.Context) ([]entity.Post, error)
	GetByID(ctx context.Context, id int64) (*entity.Post, error)
	Create(ctx context.Context, p *entity.Post) error
	Update(ctx context.Context, id int64, fields entity.PostFields) (*entity.Post, error)
	Delete(ctx context.Context, id int64) error
}

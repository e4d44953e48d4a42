package repository

import (
	"context"

	"github.com/oksasatya/go-blog-clean-architecture/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
// Create must reject a colliding email with ErrDuplicateEmail before any
// record is written; users are never deleted.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

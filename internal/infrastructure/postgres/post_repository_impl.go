package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-blog-clean-architecture/internal/domain/entity"
	"github.com/oksasatya/go-blog-clean-architecture/internal/domain/repository"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

// List returns all posts in storage order (id ascending), re-queried
// fresh on every call.
func (r *PostRepository) List(ctx context.Context) ([]entity.Post, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.author_id, p.title, p.subtitle, p.date, p.body, p.img_url, u.name, p.created_at
		FROM blog_posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []entity.Post
	for rows.Next() {
		var p entity.Post
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.Title, &p.Subtitle, &p.Date, &p.Body, &p.ImgURL, &p.AuthorName, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	p := &entity.Post{}
	row := r.pool.QueryRow(ctx, `
		SELECT p.id, p.author_id, p.title, p.subtitle, p.date, p.body, p.img_url, u.name, p.created_at
		FROM blog_posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`, id)

	if err := row.Scan(&p.ID, &p.AuthorID, &p.Title, &p.Subtitle, &p.Date, &p.Body, &p.ImgURL, &p.AuthorName, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Create inserts the post. Title uniqueness is enforced by the table
// constraint inside the same statement as the insert, so concurrent
// administrators cannot both claim a title.
func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO blog_posts (author_id, title, subtitle, date, body, img_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, p.AuthorID, p.Title, p.Subtitle, p.Date, p.Body, p.ImgURL)

	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		if isUniqueViolation(err, "blog_posts_title_key") {
			return repository.ErrDuplicateTitle
		}
		return err
	}
	return nil
}

// Update overwrites the editable fields only; author_id and date are
// never part of the statement.
func (r *PostRepository) Update(ctx context.Context, id int64, fields entity.PostFields) (*entity.Post, error) {
	p := &entity.Post{}
	row := r.pool.QueryRow(ctx, `
		UPDATE blog_posts
		SET title = $1, subtitle = $2, body = $3, img_url = $4
		WHERE id = $5
		RETURNING id, author_id, title, subtitle, date, body, img_url, created_at
	`, fields.Title, fields.Subtitle, fields.Body, fields.ImgURL, id)

	if err := row.Scan(&p.ID, &p.AuthorID, &p.Title, &p.Subtitle, &p.Date, &p.Body, &p.ImgURL, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		if isUniqueViolation(err, "blog_posts_title_key") {
			return nil, repository.ErrDuplicateTitle
		}
		return nil, err
	}
	return p, nil
}

// Delete removes the post inside a transaction; the ON DELETE CASCADE
// on comments.post_id guarantees no orphan comments survive it.
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return tx.Commit(ctx)
}

var _ repository.PostRepository = (*PostRepository)(nil)

package blog

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/vasiliy-maslov/portfolio-api/internal/db"
)

type Repository interface {
	Create(ctx context.Context, post *Blog) (*db.InsertResult, error)
	List(ctx context.Context) ([]Blog, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Blog, error)
	Upsert(ctx context.Context, post *Blog) (*db.UpdateResult, error)
	Delete(ctx context.Context, id uuid.UUID) (*db.DeleteResult, error)
}

type postgresRepository struct {
	db db.Querier
}

func NewRepository(q db.Querier) Repository {
	return &postgresRepository{db: q}
}

const selectBlog = `SELECT id, title, details, image, up_time, up_date FROM blogs`

func scanBlog(row pgx.Row, b *Blog) error {
	return row.Scan(&b.ID, &b.Title, &b.Details, &b.Image, &b.UpTime, &b.UpDate)
}

func (r *postgresRepository) Create(ctx context.Context, post *Blog) (*db.InsertResult, error) {
	if post.ID == uuid.Nil {
		id, err := uuid.NewV4()
		if err != nil {
			return nil, fmt.Errorf("repository: failed to generate blog ID: %w", err)
		}
		post.ID = id
	}

	query := `
		INSERT INTO blogs (id, title, details, image, up_time, up_date)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, post.ID, post.Title, post.Details, post.Image, post.UpTime, post.UpDate)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to insert blog: %w", err)
	}

	return db.Inserted(post.ID), nil
}

func (r *postgresRepository) List(ctx context.Context) ([]Blog, error) {
	rows, err := r.db.Query(ctx, selectBlog+` ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query blogs: %w", err)
	}
	defer rows.Close()

	posts := make([]Blog, 0)
	for rows.Next() {
		var b Blog
		if err := scanBlog(rows, &b); err != nil {
			return nil, fmt.Errorf("repository: failed to scan blog: %w", err)
		}
		posts = append(posts, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating blogs: %w", err)
	}

	return posts, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*Blog, error) {
	var b Blog
	if err := scanBlog(r.db.QueryRow(ctx, selectBlog+` WHERE id = $1`, id), &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to select blog by id %s: %w", id, err)
	}
	return &b, nil
}

func (r *postgresRepository) Upsert(ctx context.Context, post *Blog) (*db.UpdateResult, error) {
	query := `
		INSERT INTO blogs (id, title, details, image, up_time, up_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			details = EXCLUDED.details,
			image = EXCLUDED.image,
			up_time = EXCLUDED.up_time,
			up_date = EXCLUDED.up_date,
			updated_at = now()
		RETURNING (xmax = 0)
	`
	var inserted bool
	err := r.db.QueryRow(ctx, query, post.ID, post.Title, post.Details, post.Image, post.UpTime, post.UpDate).Scan(&inserted)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to upsert blog %s: %w", post.ID, err)
	}
	return db.Upserted(post.ID, inserted), nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (*db.DeleteResult, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to delete blog %s: %w", id, err)
	}
	return db.Deleted(tag.RowsAffected()), nil
}

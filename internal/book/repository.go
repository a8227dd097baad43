package book

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/vasiliy-maslov/portfolio-api/internal/db"
)

type Repository interface {
	Create(ctx context.Context, book *Book) (*db.InsertResult, error)
	List(ctx context.Context) ([]Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)
	Upsert(ctx context.Context, book *Book) (*db.UpdateResult, error)
	Delete(ctx context.Context, id uuid.UUID) (*db.DeleteResult, error)
}

type postgresRepository struct {
	db db.Querier
}

func NewRepository(q db.Querier) Repository {
	return &postgresRepository{db: q}
}

const selectBook = `SELECT id, name, author, price, image, review, details FROM books`

func scanBook(row pgx.Row, b *Book) error {
	return row.Scan(&b.ID, &b.Name, &b.Author, &b.Price, &b.Image, &b.Review, &b.Details)
}

func (r *postgresRepository) Create(ctx context.Context, book *Book) (*db.InsertResult, error) {
	if book.ID == uuid.Nil {
		id, err := uuid.NewV4()
		if err != nil {
			return nil, fmt.Errorf("repository: failed to generate book ID: %w", err)
		}
		book.ID = id
	}

	query := `
		INSERT INTO books (id, name, author, price, image, review, details)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, book.ID, book.Name, book.Author, book.Price, book.Image, book.Review, book.Details)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to insert book: %w", err)
	}

	return db.Inserted(book.ID), nil
}

func (r *postgresRepository) List(ctx context.Context) ([]Book, error) {
	rows, err := r.db.Query(ctx, selectBook+` ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query books: %w", err)
	}
	defer rows.Close()

	books := make([]Book, 0)
	for rows.Next() {
		var b Book
		if err := scanBook(rows, &b); err != nil {
			return nil, fmt.Errorf("repository: failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*Book, error) {
	var b Book
	err := scanBook(r.db.QueryRow(ctx, selectBook+` WHERE id = $1`, id), &b)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to select book by id %s: %w", id, err)
	}
	return &b, nil
}

// Upsert replaces the editable fields of the book with book.ID, inserting a new row
// under that id when none exists.
func (r *postgresRepository) Upsert(ctx context.Context, book *Book) (*db.UpdateResult, error) {
	query := `
		INSERT INTO books (id, name, author, price, image, review, details)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			author = EXCLUDED.author,
			price = EXCLUDED.price,
			image = EXCLUDED.image,
			review = EXCLUDED.review,
			details = EXCLUDED.details,
			updated_at = now()
		RETURNING (xmax = 0)
	`
	var inserted bool
	err := r.db.QueryRow(ctx, query, book.ID, book.Name, book.Author, book.Price, book.Image, book.Review, book.Details).Scan(&inserted)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to upsert book %s: %w", book.ID, err)
	}
	return db.Upserted(book.ID, inserted), nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (*db.DeleteResult, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to delete book %s: %w", id, err)
	}
	return db.Deleted(tag.RowsAffected()), nil
}

package book

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/portfolio-api/internal/db"
)

type Service interface {
	CreateBook(ctx context.Context, book *Book) (*db.InsertResult, error)
	ListBooks(ctx context.Context) ([]Book, error)
	GetBookByID(ctx context.Context, id uuid.UUID) (*Book, error)
	UpsertBook(ctx context.Context, book *Book) (*db.UpdateResult, error)
	DeleteBook(ctx context.Context, id uuid.UUID) (*db.DeleteResult, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateBook(ctx context.Context, book *Book) (*db.InsertResult, error) {
	book.ID = uuid.Nil

	res, err := s.repo.Create(ctx, book)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to create book in repository")
		return nil, fmt.Errorf("service: failed to create book: %w", err)
	}

	log.Info().Stringer("book_id", res.InsertedID).Str("name", book.Name).Msg("service: book created")
	return res, nil
}

func (s *service) ListBooks(ctx context.Context) ([]Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to list books in repository")
		return nil, fmt.Errorf("service: failed to list books: %w", err)
	}
	return books, nil
}

func (s *service) GetBookByID(ctx context.Context, id uuid.UUID) (*Book, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn().Stringer("book_id", id).Msg("service: book not found by id")
			return nil, ErrNotFound
		}

		log.Error().Err(err).Stringer("book_id", id).Msg("service: failed to fetch book by id in repository")
		return nil, fmt.Errorf("service: failed to fetch book by id: %w", err)
	}
	return b, nil
}

func (s *service) UpsertBook(ctx context.Context, book *Book) (*db.UpdateResult, error) {
	res, err := s.repo.Upsert(ctx, book)
	if err != nil {
		log.Error().Err(err).Stringer("book_id", book.ID).Msg("service: failed to upsert book in repository")
		return nil, fmt.Errorf("service: failed to update book: %w", err)
	}

	if res.UpsertedCount > 0 {
		log.Info().Stringer("book_id", book.ID).Msg("service: book did not exist, created by update")
	}
	return res, nil
}

func (s *service) DeleteBook(ctx context.Context, id uuid.UUID) (*db.DeleteResult, error) {
	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error().Err(err).Stringer("book_id", id).Msg("service: failed to delete book in repository")
		return nil, fmt.Errorf("service: failed to delete book: %w", err)
	}
	return res, nil
}

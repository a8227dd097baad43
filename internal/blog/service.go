package blog

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/portfolio-api/internal/db"
	"github.com/vasiliy-maslov/portfolio-api/internal/stamp"
)

type Service interface {
	CreatePost(ctx context.Context, post *Blog) (*db.InsertResult, error)
	ListPosts(ctx context.Context) ([]Blog, error)
	GetPostByID(ctx context.Context, id uuid.UUID) (*Blog, error)
	UpsertPost(ctx context.Context, post *Blog) (*db.UpdateResult, error)
	DeletePost(ctx context.Context, id uuid.UUID) (*db.DeleteResult, error)
}

type service struct {
	repo    Repository
	stamper *stamp.Stamper
}

func NewService(repo Repository, stamper *stamp.Stamper) Service {
	return &service{repo: repo, stamper: stamper}
}

func (s *service) touch(post *Blog) {
	now := s.stamper.Now()
	post.UpTime = now.Time
	post.UpDate = now.Date
}

func (s *service) CreatePost(ctx context.Context, post *Blog) (*db.InsertResult, error) {
	post.ID = uuid.Nil
	s.touch(post)

	res, err := s.repo.Create(ctx, post)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to create blog post in repository")
		return nil, fmt.Errorf("service: failed to create blog post: %w", err)
	}

	log.Info().Stringer("blog_id", res.InsertedID).Str("title", post.Title).Msg("service: blog post created")
	return res, nil
}

func (s *service) ListPosts(ctx context.Context) ([]Blog, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to list blog posts in repository")
		return nil, fmt.Errorf("service: failed to list blog posts: %w", err)
	}
	return posts, nil
}

func (s *service) GetPostByID(ctx context.Context, id uuid.UUID) (*Blog, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn().Stringer("blog_id", id).Msg("service: blog post not found by id")
			return nil, ErrNotFound
		}
		log.Error().Err(err).Stringer("blog_id", id).Msg("service: failed to fetch blog post by id in repository")
		return nil, fmt.Errorf("service: failed to fetch blog post by id: %w", err)
	}
	return post, nil
}

func (s *service) UpsertPost(ctx context.Context, post *Blog) (*db.UpdateResult, error) {
	s.touch(post)

	res, err := s.repo.Upsert(ctx, post)
	if err != nil {
		log.Error().Err(err).Stringer("blog_id", post.ID).Msg("service: failed to upsert blog post in repository")
		return nil, fmt.Errorf("service: failed to update blog post: %w", err)
	}
	return res, nil
}

func (s *service) DeletePost(ctx context.Context, id uuid.UUID) (*db.DeleteResult, error) {
	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error().Err(err).Stringer("blog_id", id).Msg("service: failed to delete blog post in repository")
		return nil, fmt.Errorf("service: failed to delete blog post: %w", err)
	}
	return res, nil
}

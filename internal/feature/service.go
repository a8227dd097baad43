package feature

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
	CreateFeature(ctx context.Context, f *Feature) (*db.InsertResult, error)
	ListFeatures(ctx context.Context) ([]Feature, error)
	GetFeatureByID(ctx context.Context, id uuid.UUID) (*Feature, error)
	UpsertFeature(ctx context.Context, f *Feature) (*db.UpdateResult, error)
	DeleteFeature(ctx context.Context, id uuid.UUID) (*db.DeleteResult, error)
}

type service struct {
	repo    Repository
	stamper *stamp.Stamper
}

func NewService(repo Repository, stamper *stamp.Stamper) Service {
	return &service{repo: repo, stamper: stamper}
}

func (s *service) touch(f *Feature) {
	now := s.stamper.Now()
	f.UpTime = now.Time
	f.UpDate = now.Date
}

func (s *service) CreateFeature(ctx context.Context, f *Feature) (*db.InsertResult, error) {
	f.ID = uuid.Nil
	s.touch(f)

	res, err := s.repo.Create(ctx, f)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to create feature in repository")
		return nil, fmt.Errorf("service: failed to create feature: %w", err)
	}

	log.Info().Stringer("feature_id", res.InsertedID).Str("name", f.Name).Msg("service: feature created")
	return res, nil
}

func (s *service) ListFeatures(ctx context.Context) ([]Feature, error) {
	features, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to list features in repository")
		return nil, fmt.Errorf("service: failed to list features: %w", err)
	}
	return features, nil
}

func (s *service) GetFeatureByID(ctx context.Context, id uuid.UUID) (*Feature, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn().Stringer("feature_id", id).Msg("service: feature not found by id")
			return nil, ErrNotFound
		}
		log.Error().Err(err).Stringer("feature_id", id).Msg("service: failed to fetch feature by id in repository")
		return nil, fmt.Errorf("service: failed to fetch feature by id: %w", err)
	}
	return f, nil
}

func (s *service) UpsertFeature(ctx context.Context, f *Feature) (*db.UpdateResult, error) {
	s.touch(f)

	res, err := s.repo.Upsert(ctx, f)
	if err != nil {
		log.Error().Err(err).Stringer("feature_id", f.ID).Msg("service: failed to upsert feature in repository")
		return nil, fmt.Errorf("service: failed to update feature: %w", err)
	}
	return res, nil
}

func (s *service) DeleteFeature(ctx context.Context, id uuid.UUID) (*db.DeleteResult, error) {
	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error().Err(err).Stringer("feature_id", id).Msg("service: failed to delete feature in repository")
		return nil, fmt.Errorf("service: failed to delete feature: %w", err)
	}
	return res, nil
}

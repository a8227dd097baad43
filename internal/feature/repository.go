package feature

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/vasiliy-maslov/portfolio-api/internal/db"
)

type Repository interface {
	Create(ctx context.Context, f *Feature) (*db.InsertResult, error)
	List(ctx context.Context) ([]Feature, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Feature, error)
	Upsert(ctx context.Context, f *Feature) (*db.UpdateResult, error)
	Delete(ctx context.Context, id uuid.UUID) (*db.DeleteResult, error)
}

type postgresRepository struct {
	db db.Querier
}

func NewRepository(q db.Querier) Repository {
	return &postgresRepository{db: q}
}

const selectFeature = `SELECT id, name, details, image, up_time, up_date FROM features`

func scanFeature(row pgx.Row, f *Feature) error {
	return row.Scan(&f.ID, &f.Name, &f.Details, &f.Image, &f.UpTime, &f.UpDate)
}

func (r *postgresRepository) Create(ctx context.Context, f *Feature) (*db.InsertResult, error) {
	if f.ID == uuid.Nil {
		id, err := uuid.NewV4()
		if err != nil {
			return nil, fmt.Errorf("repository: failed to generate feature ID: %w", err)
		}
		f.ID = id
	}

	query := `
		INSERT INTO features (id, name, details, image, up_time, up_date)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, f.ID, f.Name, f.Details, f.Image, f.UpTime, f.UpDate)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to insert feature: %w", err)
	}

	return db.Inserted(f.ID), nil
}

func (r *postgresRepository) List(ctx context.Context) ([]Feature, error) {
	rows, err := r.db.Query(ctx, selectFeature+` ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query features: %w", err)
	}
	defer rows.Close()

	features := make([]Feature, 0)
	for rows.Next() {
		var f Feature
		if err := scanFeature(rows, &f); err != nil {
			return nil, fmt.Errorf("repository: failed to scan feature: %w", err)
		}
		features = append(features, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating features: %w", err)
	}

	return features, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*Feature, error) {
	var f Feature
	if err := scanFeature(r.db.QueryRow(ctx, selectFeature+` WHERE id = $1`, id), &f); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to select feature by id %s: %w", id, err)
	}
	return &f, nil
}

func (r *postgresRepository) Upsert(ctx context.Context, f *Feature) (*db.UpdateResult, error) {
	query := `
		INSERT INTO features (id, name, details, image, up_time, up_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			details = EXCLUDED.details,
			image = EXCLUDED.image,
			up_time = EXCLUDED.up_time,
			up_date = EXCLUDED.up_date,
			updated_at = now()
		RETURNING (xmax = 0)
	`
	var inserted bool
	err := r.db.QueryRow(ctx, query, f.ID, f.Name, f.Details, f.Image, f.UpTime, f.UpDate).Scan(&inserted)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to upsert feature %s: %w", f.ID, err)
	}
	return db.Upserted(f.ID, inserted), nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (*db.DeleteResult, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM features WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to delete feature %s: %w", id, err)
	}
	return db.Deleted(tag.RowsAffected()), nil
}

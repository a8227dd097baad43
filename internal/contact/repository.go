package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/vasiliy-maslov/portfolio-api/internal/db"
)

type Repository interface {
	Create(ctx context.Context, c *Contact) (*db.InsertResult, error)
	List(ctx context.Context) ([]Contact, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Contact, error)
	Upsert(ctx context.Context, c *Contact) (*db.UpdateResult, error)
	Delete(ctx context.Context, id uuid.UUID) (*db.DeleteResult, error)
}

type postgresRepository struct {
	db db.Querier
}

func NewRepository(q db.Querier) Repository {
	return &postgresRepository{db: q}
}

const selectContact = `SELECT id, name, email, subject, message, up_time, up_date FROM contacts`

func scanContact(row pgx.Row, c *Contact) error {
	return row.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.UpTime, &c.UpDate)
}

func (r *postgresRepository) Create(ctx context.Context, c *Contact) (*db.InsertResult, error) {
	if c.ID == uuid.Nil {
		id, err := uuid.NewV4()
		if err != nil {
			return nil, fmt.Errorf("repository: failed to generate contact ID: %w", err)
		}
		c.ID = id
	}

	query := `
		INSERT INTO contacts (id, name, email, subject, message, up_time, up_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, c.ID, c.Name, c.Email, c.Subject, c.Message, c.UpTime, c.UpDate)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to insert contact: %w", err)
	}

	return db.Inserted(c.ID), nil
}

func (r *postgresRepository) List(ctx context.Context) ([]Contact, error) {
	rows, err := r.db.Query(ctx, selectContact+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]Contact, 0)
	for rows.Next() {
		var c Contact
		if err := scanContact(rows, &c); err != nil {
			return nil, fmt.Errorf("repository: failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating contacts: %w", err)
	}

	return contacts, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*Contact, error) {
	var c Contact
	if err := scanContact(r.db.QueryRow(ctx, selectContact+` WHERE id = $1`, id), &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to select contact by id %s: %w", id, err)
	}
	return &c, nil
}

func (r *postgresRepository) Upsert(ctx context.Context, c *Contact) (*db.UpdateResult, error) {
	query := `
		INSERT INTO contacts (id, name, email, subject, message, up_time, up_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			subject = EXCLUDED.subject,
			message = EXCLUDED.message,
			up_time = EXCLUDED.up_time,
			up_date = EXCLUDED.up_date,
			updated_at = now()
		RETURNING (xmax = 0)
	`
	var inserted bool
	err := r.db.QueryRow(ctx, query, c.ID, c.Name, c.Email, c.Subject, c.Message, c.UpTime, c.UpDate).Scan(&inserted)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to upsert contact %s: %w", c.ID, err)
	}
	return db.Upserted(c.ID, inserted), nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (*db.DeleteResult, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to delete contact %s: %w", id, err)
	}
	return db.Deleted(tag.RowsAffected()), nil
}

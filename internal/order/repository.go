package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/portfolio-api/internal/db"
)

type Repository interface {
	Create(ctx context.Context, order *Order) error
	List(ctx context.Context) ([]Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Order, error)
	// MarkPaid flips paid_status for a pending order and reports whether a row changed.
	MarkPaid(ctx context.Context, transactionID string) (bool, error)
	ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error)
	// DeletePending removes the order only while it is unpaid.
	DeletePending(ctx context.Context, transactionID string) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (*db.DeleteResult, error)
}

type postgresRepository struct {
	db db.Querier
}

func NewRepository(q db.Querier) Repository {
	return &postgresRepository{db: q}
}

const selectOrder = `
	SELECT id, transaction_id, paid_status, book, payment_request, created_at, updated_at
	FROM orders
`

func scanOrder(row pgx.Row, o *Order) error {
	return row.Scan(&o.ID, &o.TransactionID, &o.PaidStatus, &o.Book, &o.Data, &o.CreatedAt, &o.UpdatedAt)
}

func (r *postgresRepository) Create(ctx context.Context, order *Order) error {
	if order.ID == uuid.Nil {
		id, err := uuid.NewV4()
		if err != nil {
			log.Error().Err(err).Msg("repository: failed to generate order ID")
			return fmt.Errorf("repository: failed to generate order ID: %w", err)
		}
		order.ID = id
	}

	now := time.Now().UTC()
	query := `
		INSERT INTO orders (id, transaction_id, paid_status, book, payment_request, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		order.ID,
		order.TransactionID,
		order.PaidStatus,
		order.Book,
		order.Data,
		now,
		now,
	)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return ErrDuplicateTransaction
		}
		return fmt.Errorf("repository: failed to insert order: %w", err)
	}

	order.CreatedAt = now
	order.UpdatedAt = now
	return nil
}

func (r *postgresRepository) List(ctx context.Context) ([]Order, error) {
	rows, err := r.db.Query(ctx, selectOrder+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		var o Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, fmt.Errorf("repository: failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating orders: %w", err)
	}

	return orders, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	var o Order
	if err := scanOrder(r.db.QueryRow(ctx, selectOrder+` WHERE id = $1`, id), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to select order by id %s: %w", id, err)
	}
	return &o, nil
}

func (r *postgresRepository) MarkPaid(ctx context.Context, transactionID string) (bool, error) {
	query := `
		UPDATE orders
		SET paid_status = TRUE, updated_at = $1
		WHERE transaction_id = $2 AND paid_status = FALSE
	`
	tag, err := r.db.Exec(ctx, query, time.Now().UTC(), transactionID)
	if err != nil {
		log.Error().Err(err).Str("transaction_id", transactionID).Msg("repository: failed to mark order paid")
		return false, fmt.Errorf("repository: failed to mark order %s paid: %w", transactionID, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *postgresRepository) ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE transaction_id = $1)`, transactionID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("repository: failed to check order %s: %w", transactionID, err)
	}
	return exists, nil
}

func (r *postgresRepository) DeletePending(ctx context.Context, transactionID string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE transaction_id = $1 AND paid_status = FALSE`, transactionID)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to delete order %s: %w", transactionID, err)
	}
	return tag.RowsAffected(), nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (*db.DeleteResult, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to delete order %s: %w", id, err)
	}
	return db.Deleted(tag.RowsAffected()), nil
}

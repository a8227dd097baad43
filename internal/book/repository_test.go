package book_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vasiliy-maslov/portfolio-api/internal/book"
	"github.com/vasiliy-maslov/portfolio-api/internal/db/dbtest"
)

func TestPostgresBookRepository(t *testing.T) {
	pool := dbtest.NewPool(t)
	repo := book.NewRepository(pool)
	ctx := context.Background()

	t.Run("create_then_get_returns_same_fields", func(t *testing.T) {
		dbtest.Truncate(t, pool, "books")

		in := &book.Book{
			Name:    "X",
			Author:  "Jahir",
			Price:   decimal.NewFromInt(100),
			Image:   "https://img.example.com/x.png",
			Review:  "Great read",
			Details: "Details",
		}
		res, err := repo.Create(ctx, in)
		require.NoError(t, err)
		assert.True(t, res.Acknowledged)
		assert.NotEqual(t, uuid.Nil, res.InsertedID)

		got, err := repo.GetByID(ctx, res.InsertedID)
		require.NoError(t, err)
		assert.Equal(t, res.InsertedID, got.ID)
		assert.Equal(t, in.Name, got.Name)
		assert.Equal(t, in.Author, got.Author)
		assert.True(t, in.Price.Equal(got.Price), "price %s != %s", in.Price, got.Price)
		assert.Equal(t, in.Image, got.Image)
		assert.Equal(t, in.Review, got.Review)
		assert.Equal(t, in.Details, got.Details)
	})

	t.Run("get_missing_returns_not_found", func(t *testing.T) {
		dbtest.Truncate(t, pool, "books")

		_, err := repo.GetByID(ctx, uuid.Must(uuid.NewV4()))
		assert.ErrorIs(t, err, book.ErrNotFound)
	})

	t.Run("upsert_creates_under_caller_id_then_updates", func(t *testing.T) {
		dbtest.Truncate(t, pool, "books")

		id := uuid.Must(uuid.NewV4())
		res, err := repo.Upsert(ctx, &book.Book{ID: id, Name: "First", Price: decimal.NewFromInt(10)})
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.UpsertedCount)
		require.NotNil(t, res.UpsertedID)
		assert.Equal(t, id, *res.UpsertedID)

		res, err = repo.Upsert(ctx, &book.Book{ID: id, Name: "Second", Price: decimal.NewFromInt(20)})
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.MatchedCount)
		assert.Equal(t, int64(0), res.UpsertedCount)

		got, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Second", got.Name)
		assert.True(t, decimal.NewFromInt(20).Equal(got.Price))
	})

	t.Run("list_and_delete", func(t *testing.T) {
		dbtest.Truncate(t, pool, "books")

		first, err := repo.Create(ctx, &book.Book{Name: "A"})
		require.NoError(t, err)
		_, err = repo.Create(ctx, &book.Book{Name: "B"})
		require.NoError(t, err)

		books, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, books, 2)

		del, err := repo.Delete(ctx, first.InsertedID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), del.DeletedCount)

		del, err = repo.Delete(ctx, first.InsertedID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), del.DeletedCount)

		books, err = repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, books, 1)
	})

	t.Run("price_keeps_full_precision", func(t *testing.T) {
		dbtest.Truncate(t, pool, "books")

		for _, price := range []string{"19.999", "12345678901234.5678", "0.0001"} {
			in := &book.Book{Name: "P", Price: decimal.RequireFromString(price)}
			res, err := repo.Create(ctx, in)
			require.NoError(t, err)

			got, err := repo.GetByID(ctx, res.InsertedID)
			require.NoError(t, err)
			assert.True(t, in.Price.Equal(got.Price), "price %s != %s", in.Price, got.Price)
		}
	})
}

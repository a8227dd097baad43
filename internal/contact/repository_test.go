package contact_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vasiliy-maslov/portfolio-api/internal/contact"
	"github.com/vasiliy-maslov/portfolio-api/internal/db/dbtest"
)

func TestPostgresContactRepository(t *testing.T) {
	pool := dbtest.NewPool(t)
	repo := contact.NewRepository(pool)
	ctx := context.Background()

	dbtest.Truncate(t, pool, "contacts")

	in := &contact.Contact{
		Name:    "Bob",
		Email:   "bob@x.com",
		Subject: "Hello",
		Message: "hi",
		UpTime:  "2:05 pm",
		UpDate:  "Apr 16, 2025",
	}
	res, err := repo.Create(ctx, in)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, *in, *got)

	upd, err := repo.Upsert(ctx, &contact.Contact{ID: in.ID, Name: "Robert", Email: "bob@x.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), upd.ModifiedCount)

	contacts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Robert", contacts[0].Name)

	del, err := repo.Delete(ctx, in.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)

	_, err = repo.GetByID(ctx, uuid.Must(uuid.NewV4()))
	assert.ErrorIs(t, err, contact.ErrNotFound)
}

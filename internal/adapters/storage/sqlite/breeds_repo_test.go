package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"pet-breed-identifier/internal/domain/breeds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreedsRepo_EmptyThenRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, err := Open(ctx, filepath.Join(t.TempDir(), "db", "breeds.db"))
	require.NoError(t, err)
	defer repo.Close()

	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, breeds.ErrCatalogNotFound)

	svc := breeds.NewService(repo)

	c, generated, err := svc.Bootstrap(ctx)
	require.NoError(t, err)
	assert.True(t, generated)
	assert.Len(t, c, 37)

	loaded, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)

	// Save reemplaza, no mezcla
	require.NoError(t, svc.Save(ctx, breeds.BuiltinCatalog()))
	loaded, err = svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, breeds.BuiltinCatalog(), loaded)
}

func TestBreedsRepo_MalformedRow(t *testing.T) {
	ctx := context.Background()
	repo, err := Open(ctx, filepath.Join(t.TempDir(), "breeds.db"))
	require.NoError(t, err)
	defer repo.Close()

	_, err = repo.db.ExecContext(ctx,
		`INSERT INTO breeds (name, record, updated_at) VALUES ('Pug', '{oops', CURRENT_TIMESTAMP)`)
	require.NoError(t, err)

	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, breeds.ErrCatalogParse)
}

package storage

import (
	"context"
	"path/filepath"
	"testing"

	"pet-breed-identifier/internal/adapters/storage/jsonfile"
	"pet-breed-identifier/internal/adapters/storage/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCatalog_Selection(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	repo, closer, backend, err := OpenCatalog(ctx, Options{BreedInfoPath: filepath.Join(dir, "b.json")})
	require.NoError(t, err)
	assert.Equal(t, BackendJSONFile, backend)
	assert.IsType(t, &jsonfile.CatalogRepo{}, repo)
	require.NoError(t, closer.Close())

	repo, closer, backend, err = OpenCatalog(ctx, Options{
		SQLitePath:    filepath.Join(dir, "b.db"),
		BreedInfoPath: filepath.Join(dir, "b.json"),
	})
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, backend)
	assert.IsType(t, &sqlite.BreedsRepo{}, repo)
	require.NoError(t, closer.Close())
}

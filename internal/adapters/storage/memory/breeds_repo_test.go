package memory

import (
	"context"
	"testing"

	"pet-breed-identifier/internal/domain/breeds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreedsRepo_EmptyLoad(t *testing.T) {
	_, err := NewBreedsRepo(nil).Load(context.Background())
	assert.ErrorIs(t, err, breeds.ErrCatalogNotFound)
}

func TestBreedsRepo_LoadReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewBreedsRepo(breeds.BuiltinCatalog())

	raw, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, raw, 2)

	delete(raw, "Siamese Cat")

	again, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, again, 2)

	require.NoError(t, repo.Save(ctx, breeds.GenerateDefaultCatalog()))
	again, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, again, 37)
}

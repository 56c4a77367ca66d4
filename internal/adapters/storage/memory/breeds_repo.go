package memory

import (
	"context"
	"sync"

	"pet-breed-identifier/internal/domain/breeds"
)

// BreedsRepo guarda el catálogo en memoria (dev y tests). Se pierde al reiniciar.
type BreedsRepo struct {
	mu  sync.RWMutex
	raw breeds.RawCatalog
}

// NewBreedsRepo crea un repo vacío (Load => ErrCatalogNotFound) o sembrado con seed.
func NewBreedsRepo(seed breeds.Catalog) *BreedsRepo {
	r := &BreedsRepo{}
	if seed != nil {
		r.raw = seed.Raw()
	}
	return r
}

func (r *BreedsRepo) Load(ctx context.Context) (breeds.RawCatalog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.raw == nil {
		return nil, breeds.ErrCatalogNotFound
	}

	out := make(breeds.RawCatalog, len(r.raw))
	for k, v := range r.raw {
		out[k] = v
	}
	return out, nil
}

func (r *BreedsRepo) Save(ctx context.Context, c breeds.Catalog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.raw = c.Raw()
	return nil
}

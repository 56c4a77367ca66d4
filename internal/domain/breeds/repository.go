package breeds

import (
	"context"
	"errors"
)

var (
	// ErrCatalogNotFound lo devuelve un Repository cuando no hay catálogo persistido.
	ErrCatalogNotFound = errors.New("breed catalog not found")
	// ErrCatalogParse indica un catálogo presente pero ilegible.
	ErrCatalogParse = errors.New("breed catalog parse error")
)

// Repository persiste el catálogo completo. No valida esquema.
type Repository interface {
	Load(ctx context.Context) (RawCatalog, error)
	Save(ctx context.Context, c Catalog) error
}

package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"pet-breed-identifier/internal/domain/breeds"
)

// DefaultPath es la ubicación fija del catálogo generado.
const DefaultPath = "data/breed_info.json"

// CatalogRepo guarda el catálogo como un objeto JSON indentado.
type CatalogRepo struct {
	mu   sync.RWMutex
	path string
}

func NewCatalogRepo(path string) *CatalogRepo {
	if path == "" {
		path = DefaultPath
	}
	return &CatalogRepo{path: path}
}

func (r *CatalogRepo) Path() string { return r.path }

// Load devuelve breeds.ErrCatalogNotFound si el archivo no existe y
// breeds.ErrCatalogParse si existe pero no es un objeto JSON válido.
// No valida esquema: un campo con tipo incorrecto queda con su default.
func (r *CatalogRepo) Load(ctx context.Context) (breeds.RawCatalog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, breeds.ErrCatalogNotFound
		}
		return nil, fmt.Errorf("read catalog %s: %w", r.path, err)
	}

	raw, err := breeds.DecodeCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.path, err)
	}
	return raw, nil
}

// Save escribe a un temporal y renombra.
func (r *CatalogRepo) Save(ctx context.Context, c breeds.Catalog) error {
	data, err := json.MarshalIndent(c.Raw(), "", "    ")
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	data = append(data, '\n')

	r.mu.Lock()
	defer r.mu.Unlock()

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create catalog dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".breed_info-*.json")
	if err != nil {
		return fmt.Errorf("create temp catalog: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp catalog: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod temp catalog: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("rename catalog: %w", err)
	}
	return nil
}

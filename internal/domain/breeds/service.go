package breeds

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound     = errors.New("breed not found")
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Load lee el catálogo. Si no existe, devuelve BuiltinCatalog sin persistir nada.
// Un error de parseo se propaga tal cual.
func (s *Service) Load(ctx context.Context) (Catalog, error) {
	raw, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrCatalogNotFound) {
			return BuiltinCatalog(), nil
		}
		return nil, err
	}
	return NormalizeCatalog(raw), nil
}

// GenerateDefault arma el catálogo de 37 razas y lo persiste (sobrescribe).
func (s *Service) GenerateDefault(ctx context.Context) (Catalog, error) {
	c := GenerateDefaultCatalog()
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("save default catalog: %w", err)
	}
	return c, nil
}

// Bootstrap carga el catálogo; si no existe lo genera y persiste una sola vez.
// El flag indica si hubo que generarlo.
func (s *Service) Bootstrap(ctx context.Context) (Catalog, bool, error) {
	raw, err := s.repo.Load(ctx)
	if err == nil {
		return NormalizeCatalog(raw), false, nil
	}
	if !errors.Is(err, ErrCatalogNotFound) {
		return nil, false, err
	}

	c, err := s.GenerateDefault(ctx)
	if err != nil {
		return nil, false, err
	}
	return c, true, nil
}

// Save persiste un catálogo completo.
func (s *Service) Save(ctx context.Context, c Catalog) error {
	return s.repo.Save(ctx, c)
}

// Get devuelve la ficha normalizada de una raza.
func (s *Service) Get(ctx context.Context, name string) (Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Record{}, ErrInvalidInput
	}

	c, err := s.Load(ctx)
	if err != nil {
		return Record{}, err
	}

	if r, ok := c[name]; ok {
		return r, nil
	}
	// búsqueda tolerante a mayúsculas
	for _, k := range c.Names() {
		if strings.EqualFold(k, name) {
			return c[k], nil
		}
	}
	return Record{}, ErrNotFound
}

// List devuelve los nombres ordenados alfabéticamente.
func (s *Service) List(ctx context.Context) ([]string, error) {
	c, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return c.Names(), nil
}

// Names devuelve las claves del catálogo ordenadas.
func (c Catalog) Names() []string {
	out := make([]string, 0, len(c))
	for k := range c {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

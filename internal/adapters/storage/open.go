package storage

import (
	"context"
	"io"
	"strings"

	"pet-breed-identifier/internal/adapters/storage/jsonfile"
	"pet-breed-identifier/internal/adapters/storage/postgres"
	"pet-breed-identifier/internal/adapters/storage/sqlite"
	"pet-breed-identifier/internal/domain/breeds"
)

type Options struct {
	DBDSN         string // si viene, Postgres
	SQLitePath    string // si no hay DSN y viene, SQLite
	BreedInfoPath string // default: archivo JSON
}

// Backend indica qué almacenamiento quedó elegido.
type Backend string

const (
	BackendPostgres Backend = "postgres"
	BackendSQLite   Backend = "sqlite"
	BackendJSONFile Backend = "jsonfile"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenCatalog elige el repositorio del catálogo: Postgres > SQLite > archivo JSON.
// El io.Closer libera la conexión (no-op para el archivo).
func OpenCatalog(ctx context.Context, opts Options) (breeds.Repository, io.Closer, Backend, error) {
	if dsn := strings.TrimSpace(opts.DBDSN); dsn != "" {
		db, err := postgres.Open(ctx, dsn)
		if err != nil {
			return nil, nil, "", err
		}
		return postgres.NewBreedsRepo(db), db, BackendPostgres, nil
	}

	if p := strings.TrimSpace(opts.SQLitePath); p != "" {
		repo, err := sqlite.Open(ctx, p)
		if err != nil {
			return nil, nil, "", err
		}
		return repo, repo, BackendSQLite, nil
	}

	return jsonfile.NewCatalogRepo(opts.BreedInfoPath), nopCloser{}, BackendJSONFile, nil
}

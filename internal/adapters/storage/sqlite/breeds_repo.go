package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // driver "sqlite", sin cgo

	"pet-breed-identifier/internal/domain/breeds"
)

// BreedsRepo guarda el catálogo en un archivo SQLite local.
// Mismo contrato que el repo de Postgres, pensado para correr sin servidor.
type BreedsRepo struct {
	db  *sql.DB
	now func() time.Time
}

// Open abre (o crea) la base en path y crea el esquema si falta.
func Open(ctx context.Context, path string) (*BreedsRepo, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// un solo escritor
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS breeds (
			name       TEXT PRIMARY KEY,
			record     TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		)
	`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create breeds table: %w", err)
	}

	return &BreedsRepo{db: db, now: time.Now}, nil
}

func (r *BreedsRepo) Close() error {
	return r.db.Close()
}

func (r *BreedsRepo) Load(ctx context.Context) (breeds.RawCatalog, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, record FROM breeds ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := breeds.RawCatalog{}
	for rows.Next() {
		var name, raw string
		if err := rows.Scan(&name, &raw); err != nil {
			return nil, err
		}

		p, err := breeds.DecodeRecord([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("breed %q: %w", name, err)
		}
		out[name] = p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(out) == 0 {
		return nil, breeds.ErrCatalogNotFound
	}
	return out, nil
}

func (r *BreedsRepo) Save(ctx context.Context, c breeds.Catalog) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM breeds`); err != nil {
		return err
	}

	now := r.now().UTC()
	for name, rec := range c {
		b, err := json.Marshal(rec.Partial())
		if err != nil {
			return fmt.Errorf("marshal breed %q: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO breeds (name, record, updated_at) VALUES (?, ?, ?)`,
			name, string(b), now,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

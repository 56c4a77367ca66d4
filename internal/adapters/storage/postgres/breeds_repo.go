package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"pet-breed-identifier/internal/domain/breeds"
)

// BreedsRepo guarda una fila por raza; record es el mismo objeto que va al archivo JSON.
type BreedsRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewBreedsRepo(db *sql.DB) *BreedsRepo {
	return &BreedsRepo{db: db, now: time.Now}
}

// Load devuelve breeds.ErrCatalogNotFound si la tabla está vacía.
func (r *BreedsRepo) Load(ctx context.Context) (breeds.RawCatalog, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, record FROM breeds ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := breeds.RawCatalog{}
	for rows.Next() {
		var (
			name string
			raw  []byte
		)
		if err := rows.Scan(&name, &raw); err != nil {
			return nil, err
		}

		p, err := breeds.DecodeRecord(raw)
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

// Save reemplaza el catálogo completo en una transacción.
func (r *BreedsRepo) Save(ctx context.Context, c breeds.Catalog) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM breeds`); err != nil {
		return err
	}

	now := r.now()
	for name, rec := range c {
		b, err := json.Marshal(rec.Partial())
		if err != nil {
			return fmt.Errorf("marshal breed %q: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO breeds (name, record, updated_at)
			VALUES ($1, $2, $3)
		`, name, string(b), now); err != nil {
			return err
		}
	}

	return tx.Commit()
}

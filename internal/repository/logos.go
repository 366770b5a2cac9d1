package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/linecard/api/internal/entity"
)

// LogosRepository stores uploaded logo blobs by object name.
type LogosRepository interface {
	Put(ctx context.Context, logo *entity.LogoObject) error
	Get(ctx context.Context, name string) (*entity.LogoObject, error)
}

// ErrLogoNotFound indicates no blob exists under the requested name.
var ErrLogoNotFound = errors.New("logo not found")

// PGXLogosRepository implements LogosRepository using pgx.
type PGXLogosRepository struct {
	pool pgxPool
}

// NewPGXLogosRepository wires a pgx backed logo store.
func NewPGXLogosRepository(pool *pgxpool.Pool) *PGXLogosRepository {
	return &PGXLogosRepository{pool: pool}
}

// Put stores the blob. Names carry a timestamp suffix so collisions are not
// expected; an upsert keeps a repeated name from failing the request.
func (r *PGXLogosRepository) Put(ctx context.Context, logo *entity.LogoObject) error {
	if logo == nil {
		return fmt.Errorf("logo payload is nil")
	}

	query := `
        INSERT INTO logos (name, content_type, data, created_at)
        VALUES ($1, $2, $3, NOW())
        ON CONFLICT (name) DO UPDATE SET
            content_type = EXCLUDED.content_type,
            data = EXCLUDED.data
    `

	if _, err := r.pool.Exec(ctx, query, logo.Name, logo.ContentType, logo.Data); err != nil {
		return fmt.Errorf("store logo: %w", err)
	}
	return nil
}

// Get fetches a stored blob by name.
func (r *PGXLogosRepository) Get(ctx context.Context, name string) (*entity.LogoObject, error) {
	query := `SELECT name, content_type, data, created_at FROM logos WHERE name = $1`

	var logo entity.LogoObject
	err := r.pool.QueryRow(ctx, query, name).Scan(&logo.Name, &logo.ContentType, &logo.Data, &logo.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLogoNotFound
		}
		return nil, fmt.Errorf("fetch logo: %w", err)
	}

	return &logo, nil
}

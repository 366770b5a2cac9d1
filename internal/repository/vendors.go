package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/linecard/api/internal/entity"
)

// VendorsRepository describes persistence operations for line card entries.
type VendorsRepository interface {
	Insert(ctx context.Context, entry *entity.VendorEntry) error
	List(ctx context.Context) ([]entity.VendorEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ErrVendorNotFound indicates there is no row for the given id.
var ErrVendorNotFound = errors.New("vendor entry not found")

type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ pgxPool = (*pgxpool.Pool)(nil)

// PGXVendorsRepository implements VendorsRepository using pgx.
type PGXVendorsRepository struct {
	pool pgxPool
}

// NewPGXVendorsRepository wires a pgx backed repository.
func NewPGXVendorsRepository(pool *pgxpool.Pool) *PGXVendorsRepository {
	return &PGXVendorsRepository{pool: pool}
}

// Insert persists a new vendor entry. Entries are immutable, so there is no
// conflict clause: a duplicate id is an error.
func (r *PGXVendorsRepository) Insert(ctx context.Context, entry *entity.VendorEntry) error {
	if entry == nil {
		return fmt.Errorf("vendor entry is nil")
	}

	tags := entry.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	var enrichmentJSON any
	if entry.Enrichment != nil {
		raw, err := json.Marshal(entry.Enrichment)
		if err != nil {
			return fmt.Errorf("marshal enrichment: %w", err)
		}
		enrichmentJSON = string(raw)
	}

	query := `
        INSERT INTO vendors (
            id,
            vendor,
            category,
            primary_offering,
            secondary_offering,
            tags,
            logo_url,
            enrichment,
            created_by,
            created_at
        ) VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7, $8::jsonb, $9, $10)
    `

	_, err = r.pool.Exec(ctx, query,
		entry.ID,
		entry.Vendor,
		entry.Category,
		entry.PrimaryOffering,
		entry.SecondaryOffering,
		string(tagsJSON),
		stringPtrOrNil(entry.LogoURL),
		enrichmentJSON,
		entry.CreatedBy,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vendor: %w", err)
	}

	return nil
}

// List retrieves all vendor entries sorted by vendor then category.
func (r *PGXVendorsRepository) List(ctx context.Context) ([]entity.VendorEntry, error) {
	query := `
        SELECT
            id,
            vendor,
            category,
            primary_offering,
            secondary_offering,
            tags,
            logo_url,
            enrichment,
            created_by,
            created_at
        FROM vendors
        ORDER BY vendor ASC, category ASC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()

	return scanVendors(rows)
}

// Delete removes the row by id. A missing row surfaces as ErrVendorNotFound.
func (r *PGXVendorsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM vendors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vendor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrVendorNotFound
	}
	return nil
}

func scanVendors(rows pgx.Rows) ([]entity.VendorEntry, error) {
	var entries []entity.VendorEntry
	for rows.Next() {
		var (
			entry          entity.VendorEntry
			tagsJSON       []byte
			logoURL        sql.NullString
			enrichmentJSON []byte
		)

		err := rows.Scan(
			&entry.ID,
			&entry.Vendor,
			&entry.Category,
			&entry.PrimaryOffering,
			&entry.SecondaryOffering,
			&tagsJSON,
			&logoURL,
			&enrichmentJSON,
			&entry.CreatedBy,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}

		entry.Tags = []string{}
		if len(tagsJSON) > 0 {
			if err := json.Unmarshal(tagsJSON, &entry.Tags); err != nil {
				return nil, fmt.Errorf("unmarshal tags: %w", err)
			}
		}
		if logoURL.Valid {
			val := logoURL.String
			entry.LogoURL = &val
		}
		if len(enrichmentJSON) > 0 {
			var enrichment entity.EnrichmentResult
			if err := json.Unmarshal(enrichmentJSON, &enrichment); err != nil {
				return nil, fmt.Errorf("unmarshal enrichment: %w", err)
			}
			entry.Enrichment = &enrichment
		}

		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vendors: %w", err)
	}
	return entries, nil
}

func stringPtrOrNil(value *string) any {
	if value == nil || *value == "" {
		return nil
	}
	return *value
}

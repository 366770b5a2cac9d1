package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/octobees/linecard/api/internal/entity"
)

type stubPool struct {
	queryRowFunc func(ctx context.Context, query string, args ...any) pgx.Row
	queryFunc    func(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	execFunc     func(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
}

func (s *stubPool) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	if s.queryRowFunc != nil {
		return s.queryRowFunc(ctx, query, args...)
	}
	return &stubRow{scan: func(dest ...any) error { return nil }}
}

func (s *stubPool) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	if s.queryFunc != nil {
		return s.queryFunc(ctx, query, args...)
	}
	return nil, errors.New("query not implemented")
}

func (s *stubPool) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	if s.execFunc != nil {
		return s.execFunc(ctx, query, args...)
	}
	return pgconn.CommandTag{}, errors.New("exec not implemented")
}

type stubRow struct {
	scan func(dest ...any) error
}

func (s *stubRow) Scan(dest ...any) error { return s.scan(dest...) }

type stubVendorRows struct {
	called bool
}

func (s *stubVendorRows) Close()                                       {}
func (s *stubVendorRows) Err() error                                   { return nil }
func (s *stubVendorRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (s *stubVendorRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (s *stubVendorRows) Next() bool {
	if s.called {
		return false
	}
	s.called = true
	return true
}

func (s *stubVendorRows) Scan(dest ...any) error {
	if !s.called {
		return errors.New("scan called before next")
	}
	id := uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	created := time.Now()

	*dest[0].(*uuid.UUID) = id
	*dest[1].(*string) = "Acme"
	*dest[2].(*string) = "Security"
	*dest[3].(*string) = "Firewalls"
	*dest[4].(*string) = "Switches"
	*dest[5].(*[]byte) = []byte(`["network","security"]`)
	*dest[6].(*sql.NullString) = sql.NullString{String: "https://cdn.example.com/acme.png", Valid: true}
	*dest[7].(*[]byte) = []byte(`{"description":"Acme makes widgets.","confidence":0.9}`)
	*dest[8].(*string) = "admin@example.com"
	*dest[9].(*time.Time) = created
	return nil
}

func (s *stubVendorRows) Values() ([]any, error) { return nil, nil }
func (s *stubVendorRows) RawValues() [][]byte    { return nil }
func (s *stubVendorRows) Conn() *pgx.Conn        { return nil }

func TestPGXVendorsRepository_InsertValidation(t *testing.T) {
	repo := &PGXVendorsRepository{}
	if err := repo.Insert(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil entry")
	}
}

func TestPGXVendorsRepository_InsertArgs(t *testing.T) {
	entry := &entity.VendorEntry{
		ID:       uuid.New(),
		Vendor:   "Acme",
		Category: "Security",
	}

	called := false
	repo := &PGXVendorsRepository{pool: &stubPool{
		execFunc: func(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
			called = true
			if len(args) != 10 {
				t.Fatalf("expected 10 args, got %d", len(args))
			}
			if args[0] != entry.ID {
				t.Fatalf("expected id arg, got %v", args[0])
			}
			if tags, _ := args[5].(string); tags != "[]" {
				t.Fatalf("nil tags must persist as empty array, got %v", args[5])
			}
			if args[6] != nil {
				t.Fatalf("expected nil logo url, got %v", args[6])
			}
			if args[7] != nil {
				t.Fatalf("expected nil enrichment, got %v", args[7])
			}
			return pgconn.CommandTag{}, nil
		},
	}}

	if err := repo.Insert(context.Background(), entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatalf("expected exec to be called")
	}
}

func TestScanVendors(t *testing.T) {
	entries, err := scanVendors(&stubVendorRows{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	entry := entries[0]
	if entry.Vendor != "Acme" || entry.Category != "Security" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if len(entry.Tags) != 2 || entry.Tags[0] != "network" {
		t.Fatalf("unexpected tags: %+v", entry.Tags)
	}
	if entry.LogoURL == nil || *entry.LogoURL != "https://cdn.example.com/acme.png" {
		t.Fatalf("expected logo url set, got %+v", entry.LogoURL)
	}
	if entry.Enrichment == nil || entry.Enrichment.Confidence != 0.9 {
		t.Fatalf("expected enrichment decoded, got %+v", entry.Enrichment)
	}
	if entry.CreatedBy != "admin@example.com" {
		t.Fatalf("unexpected createdBy: %q", entry.CreatedBy)
	}
}

func TestPGXVendorsRepository_DeleteNotFound(t *testing.T) {
	repo := &PGXVendorsRepository{pool: &stubPool{
		execFunc: func(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("DELETE 0"), nil
		},
	}}

	err := repo.Delete(context.Background(), uuid.New())
	if !errors.Is(err, ErrVendorNotFound) {
		t.Fatalf("expected ErrVendorNotFound, got %v", err)
	}
}

func TestPGXVendorsRepository_DeleteSuccess(t *testing.T) {
	id := uuid.New()
	repo := &PGXVendorsRepository{pool: &stubPool{
		execFunc: func(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
			if len(args) != 1 || args[0] != id {
				t.Fatalf("expected id arg, got %v", args)
			}
			return pgconn.NewCommandTag("DELETE 1"), nil
		},
	}}

	if err := repo.Delete(context.Background(), id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

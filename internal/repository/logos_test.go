package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/octobees/linecard/api/internal/entity"
)

func TestPGXLogosRepository_PutValidation(t *testing.T) {
	repo := &PGXLogosRepository{}
	if err := repo.Put(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil logo")
	}
}

func TestPGXLogosRepository_Put(t *testing.T) {
	logo := &entity.LogoObject{
		Name:        "acme-1.png",
		ContentType: "image/png",
		Data:        []byte("png-bytes"),
	}

	called := false
	repo := &PGXLogosRepository{pool: &stubPool{
		execFunc: func(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
			called = true
			if len(args) != 3 {
				t.Fatalf("expected 3 args, got %d", len(args))
			}
			if args[0] != "acme-1.png" || args[1] != "image/png" {
				t.Fatalf("unexpected args: %v", args)
			}
			return pgconn.CommandTag{}, nil
		},
	}}

	if err := repo.Put(context.Background(), logo); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatalf("expected exec to be called")
	}
}

func TestPGXLogosRepository_GetNotFound(t *testing.T) {
	repo := &PGXLogosRepository{pool: &stubPool{
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			return &stubRow{scan: func(dest ...any) error { return pgx.ErrNoRows }}
		},
	}}

	_, err := repo.Get(context.Background(), "missing.png")
	if !errors.Is(err, ErrLogoNotFound) {
		t.Fatalf("expected ErrLogoNotFound, got %v", err)
	}
}

func TestPGXLogosRepository_Get(t *testing.T) {
	repo := &PGXLogosRepository{pool: &stubPool{
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			return &stubRow{scan: func(dest ...any) error {
				*dest[0].(*string) = "acme-1.png"
				*dest[1].(*string) = "image/png"
				*dest[2].(*[]byte) = []byte("png-bytes")
				return nil
			}}
		},
	}}

	logo, err := repo.Get(context.Background(), "acme-1.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logo.Name != "acme-1.png" || logo.ContentType != "image/png" || string(logo.Data) != "png-bytes" {
		t.Fatalf("unexpected logo: %+v", logo)
	}
}

package service

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/octobees/linecard/api/internal/dto"
	"github.com/octobees/linecard/api/internal/entity"
	"github.com/octobees/linecard/api/internal/repository"
)

var (
	// ErrVendorNameRequired indicates the vendor name was empty or whitespace.
	ErrVendorNameRequired = errors.New("vendor name is required")
	// ErrInvalidLogoURL indicates a logo URL that is not absolute http(s).
	ErrInvalidLogoURL = errors.New("logoUrl must be an absolute http(s) URL")
	// ErrInvalidVendorID indicates a malformed vendor id.
	ErrInvalidVendorID = errors.New("invalid vendor id")
)

// VendorsService exposes read/write operations for line card entries.
type VendorsService struct {
	repo repository.VendorsRepository
}

// NewVendorsService creates a new instance of VendorsService.
func NewVendorsService(repo repository.VendorsRepository) *VendorsService {
	return &VendorsService{repo: repo}
}

// List returns all persisted vendor entries.
func (s *VendorsService) List(ctx context.Context) ([]entity.VendorEntry, error) {
	return s.repo.List(ctx)
}

// Create validates the payload, stamps provenance and persists the entry.
// Entries are immutable after creation.
func (s *VendorsService) Create(ctx context.Context, req dto.CreateVendorRequest, createdBy string) (uuid.UUID, error) {
	vendor := strings.TrimSpace(req.Vendor)
	if vendor == "" {
		return uuid.Nil, ErrVendorNameRequired
	}

	var logoURL *string
	if req.LogoURL != nil && strings.TrimSpace(*req.LogoURL) != "" {
		trimmed := strings.TrimSpace(*req.LogoURL)
		if !isAbsoluteHTTPURL(trimmed) {
			return uuid.Nil, ErrInvalidLogoURL
		}
		logoURL = &trimmed
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	entry := &entity.VendorEntry{
		ID:                uuid.New(),
		Vendor:            vendor,
		Category:          strings.TrimSpace(req.Category),
		PrimaryOffering:   strings.TrimSpace(req.PrimaryOffering),
		SecondaryOffering: strings.TrimSpace(req.SecondaryOffering),
		Tags:              tags,
		LogoURL:           logoURL,
		Enrichment:        req.Enrichment,
		CreatedBy:         strings.ToLower(strings.TrimSpace(createdBy)),
		CreatedAt:         time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		return uuid.Nil, err
	}

	return entry.ID, nil
}

// Delete removes the entry by id. Not-found errors from the store pass
// through unchanged.
func (s *VendorsService) Delete(ctx context.Context, id string) error {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return ErrInvalidVendorID
	}
	return s.repo.Delete(ctx, parsed)
}

func isAbsoluteHTTPURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

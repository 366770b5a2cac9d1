package entity

import (
	"time"

	"github.com/google/uuid"
)

// VendorEntry represents a single vendor/category cell on the line card.
// Entries are immutable after creation; the only mutation is deletion by id.
type VendorEntry struct {
	ID                uuid.UUID         `json:"id"`
	Vendor            string            `json:"vendor"`
	Category          string            `json:"category"`
	PrimaryOffering   string            `json:"primaryOffering"`
	SecondaryOffering string            `json:"secondaryOffering"`
	Tags              []string          `json:"tags"`
	LogoURL           *string           `json:"logoUrl,omitempty"`
	Enrichment        *EnrichmentResult `json:"enrichment,omitempty"`
	CreatedBy         string            `json:"createdBy,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
}

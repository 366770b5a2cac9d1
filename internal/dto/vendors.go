package dto

import "github.com/octobees/linecard/api/internal/entity"

// CreateVendorRequest is the payload accepted by POST /api/vendor.
type CreateVendorRequest struct {
	Vendor            string                   `json:"vendor"`
	Category          string                   `json:"category"`
	PrimaryOffering   string                   `json:"primaryOffering"`
	SecondaryOffering string                   `json:"secondaryOffering"`
	Tags              []string                 `json:"tags"`
	LogoURL           *string                  `json:"logoUrl"`
	Enrichment        *entity.EnrichmentResult `json:"enrichment"`
}

package dto

// EnrichRequest names the manufacturer to enrich. The name may also arrive
// as the `name` query parameter; the body form exists for POST callers.
type EnrichRequest struct {
	Name string `json:"name"`
}

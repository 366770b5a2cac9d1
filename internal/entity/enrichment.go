package entity

// EnrichmentResult holds the structured facts the model returns for a
// manufacturer name. URL fields are nil when the model does not know them;
// the engine never invents URLs on the model's behalf.
type EnrichmentResult struct {
	Website     *string      `json:"website"`
	Domain      *string      `json:"domain"`
	Logo        *string      `json:"logo"`
	Description string       `json:"description"`
	TopProducts []TopProduct `json:"topProducts"`
	Categories  []string     `json:"categories"`
	Tags        []string     `json:"tags"`
	Confidence  float64      `json:"confidence"`
	Sources     []string     `json:"sources"`
	Notes       string       `json:"notes"`
}

// TopProduct is one well-known product of an enriched manufacturer.
type TopProduct struct {
	Name        string  `json:"name"`
	URL         *string `json:"url"`
	Description *string `json:"description,omitempty"`
}

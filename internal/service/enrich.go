package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/idna"

	"github.com/octobees/linecard/api/internal/config"
	"github.com/octobees/linecard/api/internal/entity"
	"github.com/octobees/linecard/api/internal/llm"
)

var (
	// ErrNameRequired indicates the manufacturer name was empty.
	ErrNameRequired = errors.New("manufacturer name is required")
	// ErrConfigMissing indicates the model connection settings are absent.
	ErrConfigMissing = errors.New("model endpoint configuration missing")
)

// UpstreamError reports a failed call to the model endpoint.
type UpstreamError struct {
	Status int
	Detail string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("model endpoint error (status %d): %s", e.Status, e.Detail)
}

// ExtractionError reports model output that stayed unparsable after the
// single extractor retry. RawPreview is truncated and never contains
// credentials.
type ExtractionError struct {
	RawPreview string
}

// Error implements the error interface.
func (e *ExtractionError) Error() string {
	return "model returned unparsable JSON"
}

const rawPreviewLimit = 2000

const enrichSystemPrompt = `
You are a factual assistant. Given only a manufacturer's name, return a JSON object (no other text)
with keys: website, domain, logo, description, topProducts, categories, tags, confidence, sources, notes.

Rules:
- Respond only with valid JSON.
- website: the official website URL if known, otherwise null.
- domain: the root domain (example.com) if known, otherwise null.
- logo: a URL to the company logo if you can provide one confidently; otherwise null.
- topProducts: an array of objects {name, url, description?} for 0..5 well-known products. If you are not sure of a product's official URL, set url to null.
- categories: array of 0..5 short category names.
- tags: array of keywords.
- confidence: a number 0.0 - 1.0 indicating how confident you are in the data.
- sources: an array of URLs you used (if any). If none, leave it empty.
- notes: short string explaining uncertainty or caveats.

Crucial: Do NOT invent websites, domains, product URLs or logo URLs. If you do not know a website or URL, return null for that field and set confidence low. Output must be parseable JSON only.
`

const extractorSystemPrompt = `You are a strict JSON extractor. Given the previous model output (the user message),
return ONLY valid JSON (no explanation, no markdown). If there is no JSON, return an empty JSON object {}.`

// EnrichmentService turns a free-text manufacturer name into a structured
// EnrichmentResult by prompting the model endpoint.
type EnrichmentService struct {
	chat       llm.ChatCompleter
	configured bool
	mock       bool
	clearbit   bool
	logger     *zap.Logger
}

// NewEnrichmentService wires the enrichment engine.
func NewEnrichmentService(chat llm.ChatCompleter, cfg *config.Config, logger *zap.Logger) *EnrichmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrichmentService{
		chat:       chat,
		configured: cfg.ModelConfigured(),
		mock:       cfg.UseMockEnrich,
		clearbit:   cfg.EnableClearbitLogo,
		logger:     logger,
	}
}

// Enrich produces an EnrichmentResult for the given manufacturer name.
// Besides the single JSON-extraction retry there are no automatic retries;
// every failure is terminal for the request.
func (s *EnrichmentService) Enrich(ctx context.Context, name string) (*entity.EnrichmentResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	if s.mock {
		return mockResult(), nil
	}

	if !s.configured {
		return nil, ErrConfigMissing
	}

	content, err := s.chat.Complete(ctx, llm.ChatRequest{
		Messages: []llm.Message{
			{Role: "system", Content: enrichSystemPrompt},
			{Role: "user", Content: fmt.Sprintf("Enrich the manufacturer: %q", name)},
		},
		Temperature: 0.2,
		MaxTokens:   800,
	})
	if err != nil {
		return nil, s.upstreamError(err)
	}

	raw := stripFences(strings.TrimSpace(content))
	s.logger.Debug("enrich: raw model content", zap.String("preview", truncateText(raw, 400)))

	result, ok := extractResult(raw)
	if !ok {
		result, ok = s.retryExtraction(ctx, raw)
	}
	if !ok {
		preview := truncateText(raw, rawPreviewLimit)
		s.logger.Warn("enrich: unparsable model output", zap.String("raw", preview))
		return nil, &ExtractionError{RawPreview: preview}
	}

	s.postProcess(result)
	return result, nil
}

// retryExtraction issues the single extractor retry: one more model call with
// a strict JSON-extractor prompt over the original unparsable text. Errors
// from the retry call itself are logged and count as a failed retry.
func (s *EnrichmentService) retryExtraction(ctx context.Context, raw string) (*entity.EnrichmentResult, bool) {
	s.logger.Debug("enrich: initial parse failed, attempting extractor retry")

	content, err := s.chat.Complete(ctx, llm.ChatRequest{
		Messages: []llm.Message{
			{Role: "system", Content: extractorSystemPrompt},
			{Role: "user", Content: "Extract valid JSON from the following text. Output ONLY JSON (no surrounding text or markdown):\n\n" + raw},
		},
		Temperature: 0.0,
		MaxTokens:   800,
	})
	if err != nil {
		s.logger.Warn("enrich: extractor retry failed", zap.Error(err))
		return nil, false
	}

	cleaned := stripFences(strings.TrimSpace(content))
	return extractResult(cleaned)
}

func (s *EnrichmentService) upstreamError(err error) error {
	var statusErr *llm.StatusError
	if errors.As(err, &statusErr) {
		s.logger.Error("enrich: model endpoint error",
			zap.Int("status", statusErr.StatusCode),
			zap.String("detail", statusErr.Body))
		return &UpstreamError{Status: statusErr.StatusCode, Detail: statusErr.Body}
	}
	s.logger.Error("enrich: model request failed", zap.Error(err))
	return &UpstreamError{Detail: err.Error()}
}

var schemePrefix = regexp.MustCompile(`^https?://`)

// postProcess applies the URL fix-ups: a clearbit logo fallback keyed by the
// bare domain when enabled, and an https:// prefix on scheme-less websites.
func (s *EnrichmentService) postProcess(result *entity.EnrichmentResult) {
	if result.Logo == nil && result.Domain != nil && s.clearbit {
		if domain := bareDomain(*result.Domain); domain != "" {
			logo := "https://logo.clearbit.com/" + domain
			result.Logo = &logo
		}
	}

	if result.Website != nil && *result.Website != "" && !strings.HasPrefix(*result.Website, "http") {
		website := "https://" + *result.Website
		result.Website = &website
	}
}

// bareDomain strips scheme, www. prefix and any path, then normalizes the
// remainder to its ASCII (punycode) form.
func bareDomain(domain string) string {
	domain = schemePrefix.ReplaceAllString(strings.TrimSpace(domain), "")
	domain = strings.TrimPrefix(domain, "www.")
	if idx := strings.IndexByte(domain, '/'); idx != -1 {
		domain = domain[:idx]
	}
	if domain == "" {
		return ""
	}
	ascii, err := idna.Lookup.ToASCII(domain)
	if err != nil || ascii == "" {
		return domain
	}
	return ascii
}

func mockResult() *entity.EnrichmentResult {
	website := "https://example-manufacturer.test"
	domain := "example-manufacturer.test"
	logo := "https://via.placeholder.com/128?text=Logo"
	widgetDesc := "A popular widget."
	serviceDesc := "Managed service offering."
	return &entity.EnrichmentResult{
		Website:     &website,
		Domain:      &domain,
		Logo:        &logo,
		Description: "Example Manufacturer supplies widgets and services for testing.",
		TopProducts: []entity.TopProduct{
			{Name: "Widget A", Description: &widgetDesc},
			{Name: "Service B", Description: &serviceDesc},
		},
		Categories: []string{"Security", "Networking"},
		Tags:       []string{"example", "test", "widgets"},
		Confidence: 0.85,
		Sources:    []string{},
		Notes:      "Mock data for local development",
	}
}

package domain

import "strings"

// SourceType records where the product reference came from.
type SourceType string

const (
	SourceTypeURL   SourceType = "url"
	SourceTypeImage SourceType = "image"
)

// Scenario enumerates the three fixed image contexts rendered per run.
type Scenario string

const (
	ScenarioStudio    Scenario = "studio"
	ScenarioLifestyle Scenario = "lifestyle"
	ScenarioUGC       Scenario = "ugc"
)

// Scenarios returns the fixed presentation order of the image contexts.
func Scenarios() []Scenario {
	return []Scenario{ScenarioStudio, ScenarioLifestyle, ScenarioUGC}
}

// ProductSource is provenance metadata derived from the request input only,
// never from model output.
type ProductSource struct {
	Type  SourceType `json:"type"`
	Value string     `json:"value"`
}

// Product is the structured description extracted from the user's reference.
// Unknown fields carry "N/A" rather than empty strings.
type Product struct {
	Name            string        `json:"name"`
	Category        string        `json:"category"`
	Brand           string        `json:"brand"`
	Color           string        `json:"color"`
	NotableFeatures []string      `json:"notable_features"`
	Source          ProductSource `json:"source"`
}

// Marketing bundles all generated copy for one product.
type Marketing struct {
	Headlines   []string `json:"headlines"`
	Captions    []string `json:"captions"`
	CTAs        []string `json:"ctas"`
	Hashtags    []string `json:"hashtags"`
	AltTexts    []string `json:"alt_texts"`
	SEOKeywords []string `json:"seo_keywords"`
	Palette     []string `json:"palette"`
}

// GeneratedImage is one scenario render, real or placeholder. PathOrB64 is a
// data URI so the client never needs a second fetch.
type GeneratedImage struct {
	Scenario    Scenario `json:"scenario"`
	PromptUsed  string   `json:"prompt_used"`
	VariantNote string   `json:"variant_note"`
	PathOrB64   string   `json:"path_or_b64"`
}

// Affiliate carries the deterministically constructed tracking link.
type Affiliate struct {
	AffiliateURL string `json:"affiliate_url"`
}

// Diagnostics is free-form run metadata surfaced alongside the result.
type Diagnostics struct {
	ConfidenceProductParse float64 `json:"confidence_product_parse"`
	Notes                  string  `json:"notes"`
}

// OutputData is the complete bundle produced by one pipeline run. Every field
// is populated on success; a partial bundle is never returned.
type OutputData struct {
	Product     Product          `json:"product"`
	Images      []GeneratedImage `json:"images"`
	Marketing   Marketing        `json:"marketing"`
	Affiliate   Affiliate        `json:"affiliate"`
	Diagnostics Diagnostics      `json:"diagnostics"`
}

// UploadedImage is a product photo submitted by the user.
type UploadedImage struct {
	Filename string
	MIME     string
	Data     []byte
}

// GenerateInput is one normalized generate request. Exactly one of ProductURL
// or ProductImage must be set; the image wins when both are present.
type GenerateInput struct {
	ProductURL        string
	ProductImage      *UploadedImage
	ProductSpec       string
	IncludeHumanModel bool
	Locale            string
}

// HasImage reports whether an uploaded photo is attached.
func (in GenerateInput) HasImage() bool {
	return in.ProductImage != nil && len(in.ProductImage.Data) > 0
}

// SourceRef derives the provenance record for the input.
func (in GenerateInput) SourceRef() ProductSource {
	if in.HasImage() {
		return ProductSource{Type: SourceTypeImage, Value: in.ProductImage.Filename}
	}
	return ProductSource{Type: SourceTypeURL, Value: strings.TrimSpace(in.ProductURL)}
}

// Package pipeline turns one user request into a validated OutputData bundle:
// product extraction, marketing generation, and a scenario image batch, each
// backed by deterministic fallbacks so a run degrades instead of dying
// halfway. Only pre-flight validation and text-stage provider failures are
// surfaced; everything else is absorbed.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/jsonrepair"
	"server/internal/providers/genai"
)

// TextGenerator is the structured-text generation service contract.
type TextGenerator interface {
	GenerateJSON(ctx context.Context, req genai.TextRequest) (string, error)
}

// ImageGenerator is the image generation service contract.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, req genai.ImageRequest) (*genai.ImageResult, error)
}

const minCredentialLength = 10

// Options configures a Pipeline. Text and Image are required; fallbacks and
// logger get defaults.
type Options struct {
	Text              TextGenerator
	Image             ImageGenerator
	AffiliateBaseURL  string
	Logger            *infra.Logger
	ProductFallback   ProductFallback
	MarketingFallback MarketingFallback
}

// Pipeline orchestrates the three generation stages. It holds no per-run
// state; every run flows through immutable intermediate values.
type Pipeline struct {
	text              TextGenerator
	image             ImageGenerator
	affiliateBase     string
	logger            *infra.Logger
	productFallback   ProductFallback
	marketingFallback MarketingFallback
}

// New constructs a Pipeline with sane defaults.
func New(opts Options) *Pipeline {
	logger := opts.Logger
	if logger == nil {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	base := strings.TrimRight(strings.TrimSpace(opts.AffiliateBaseURL), "/")
	if base == "" {
		base = "https://example-store.com"
	}
	productFallback := opts.ProductFallback
	if productFallback == nil {
		productFallback = DefaultProductFallback
	}
	marketingFallback := opts.MarketingFallback
	if marketingFallback == nil {
		marketingFallback = DefaultMarketingFallback
	}
	return &Pipeline{
		text:              opts.Text,
		image:             opts.Image,
		affiliateBase:     base,
		logger:            logger,
		productFallback:   productFallback,
		marketingFallback: marketingFallback,
	}
}

// Run executes one full generation cycle. It fails with *ValidationError
// before any remote call when the credential or input is unusable, and with
// *ProviderError when a text-stage remote call fails. A run never returns a
// partial bundle: on success every OutputData field is populated.
func (p *Pipeline) Run(ctx context.Context, in domain.GenerateInput, apiKey string) (*domain.OutputData, error) {
	locale := normalizeLocale(in.Locale)
	if err := validate(in, apiKey, locale); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	log := p.logger.With().Str("run_id", runID).Str("locale", locale).Logger()
	log.Info().
		Str("source_type", string(in.SourceRef().Type)).
		Bool("human_model", in.IncludeHumanModel).
		Msg("pipeline: run started")

	credential := strings.TrimSpace(apiKey)

	product, outcome, err := p.extractProduct(ctx, in, credential)
	if err != nil {
		log.Error().Err(err).Msg("pipeline: product extraction failed")
		return nil, &ProviderError{Message: Classify(locale, err.Error()), Err: err}
	}

	marketing, _, err := p.generateMarketing(ctx, product, locale, credential)
	if err != nil {
		log.Error().Err(err).Msg("pipeline: marketing generation failed")
		return nil, &ProviderError{Message: Classify(locale, err.Error()), Err: err}
	}

	images, degradeErr := p.generateImages(ctx, product, in.IncludeHumanModel, locale, credential)

	out := &domain.OutputData{
		Product:   product,
		Images:    images,
		Marketing: marketing,
		Affiliate: domain.Affiliate{AffiliateURL: p.affiliateURL(product.Name)},
		Diagnostics: domain.Diagnostics{
			ConfidenceProductParse: confidence(outcome),
			Notes:                  diagnosticsNotes(locale, degradeErr),
		},
	}

	log.Info().
		Float64("confidence", out.Diagnostics.ConfidenceProductParse).
		Bool("placeholders", degradeErr != nil).
		Msg("pipeline: run completed")

	return out, nil
}

func validate(in domain.GenerateInput, apiKey, locale string) error {
	key := strings.TrimSpace(apiKey)
	if key == "" {
		return &ValidationError{Message: message(locale, msgMissingCredential)}
	}
	if len(key) < minCredentialLength {
		return &ValidationError{Message: message(locale, msgCredentialTooShort)}
	}
	if !in.HasImage() && strings.TrimSpace(in.ProductURL) == "" {
		return &ValidationError{Message: message(locale, msgMissingInput)}
	}
	return nil
}

func confidence(outcome jsonrepair.Outcome) float64 {
	switch outcome {
	case jsonrepair.OutcomeParsed:
		return 0.9
	case jsonrepair.OutcomeRepaired:
		return 0.6
	default:
		return 0.3
	}
}

func diagnosticsNotes(locale string, degradeErr error) string {
	if degradeErr == nil {
		return message(locale, msgNotesOK)
	}
	return fmt.Sprintf(message(locale, msgNotesPlaceholder), degradeErr.Error())
}

// affiliateURL builds the deterministic tracking link for a product; it is
// never model-derived.
func (p *Pipeline) affiliateURL(productName string) string {
	return fmt.Sprintf("%s/%s?utm_source=aff&utm_medium=social&utm_campaign=ai-generated",
		p.affiliateBase, slug(productName))
}

func slug(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	s := strings.Trim(b.String(), "-")
	if s == "" {
		return "product-slug"
	}
	return url.PathEscape(s)
}

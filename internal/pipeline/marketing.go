package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"server/internal/domain"
	"server/internal/domain/schema"
	"server/internal/jsonrepair"
	"server/internal/providers/genai"
)

type marketingPayload struct {
	Headlines   []string `json:"headlines"`
	Captions    []string `json:"captions"`
	CTAs        []string `json:"ctas"`
	Hashtags    []string `json:"hashtags"`
	AltTexts    []string `json:"alt_texts"`
	SEOKeywords []string `json:"seo_keywords"`
	Palette     []string `json:"palette"`
}

// generateMarketing runs the marketing stage: one schema-constrained call
// embedding the serialized product, decoded with repair-then-fallback. The
// fallback guarantees a complete, non-empty record.
func (p *Pipeline) generateMarketing(ctx context.Context, product domain.Product, locale, apiKey string) (domain.Marketing, jsonrepair.Outcome, error) {
	raw, err := p.text.GenerateJSON(ctx, genai.TextRequest{
		APIKey: apiKey,
		Prompt: buildMarketingPrompt(product, locale),
		Schema: schema.Marketing,
	})
	if err != nil {
		return domain.Marketing{}, jsonrepair.OutcomeFallback, err
	}

	fb := p.marketingFallback(product, locale)
	payload, outcome := jsonrepair.Extract(raw, marketingPayload{
		Headlines:   fb.Headlines,
		Captions:    fb.Captions,
		CTAs:        fb.CTAs,
		Hashtags:    fb.Hashtags,
		AltTexts:    fb.AltTexts,
		SEOKeywords: fb.SEOKeywords,
		Palette:     fb.Palette,
	})

	marketing := domain.Marketing{
		Headlines:   payload.Headlines,
		Captions:    payload.Captions,
		CTAs:        payload.CTAs,
		Hashtags:    payload.Hashtags,
		AltTexts:    payload.AltTexts,
		SEOKeywords: payload.SEOKeywords,
		Palette:     payload.Palette,
	}
	if len(marketing.Palette) == 0 {
		marketing.Palette = fb.Palette
	}
	return marketing, outcome, nil
}

func buildMarketingPrompt(product domain.Product, locale string) string {
	serialized, _ := json.Marshal(product)
	if normalizeLocale(locale) == "en" {
		return fmt.Sprintf("Based on this product, create a complete set of marketing content in English. Product: %s.", serialized)
	}
	return fmt.Sprintf("Berdasarkan produk ini, buatlah set lengkap konten marketing dalam bahasa Indonesia. Produk: %s.", serialized)
}

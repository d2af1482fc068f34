package pipeline

import (
	"context"
	"fmt"
	"strings"

	"server/internal/domain"
	"server/internal/domain/schema"
	"server/internal/jsonrepair"
	"server/internal/providers/genai"
)

// productPayload is the model-owned slice of the product record. Source is
// deliberately absent: provenance always comes from the request input.
type productPayload struct {
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Brand           string   `json:"brand"`
	Color           string   `json:"color"`
	NotableFeatures []string `json:"notable_features"`
}

// extractProduct runs the product-extraction stage: one schema-constrained
// text call, decoded with repair-then-fallback so an unparseable response
// never aborts the run. A transport or API failure is surfaced to the caller.
func (p *Pipeline) extractProduct(ctx context.Context, in domain.GenerateInput, apiKey string) (domain.Product, jsonrepair.Outcome, error) {
	req := genai.TextRequest{
		APIKey: apiKey,
		Prompt: buildProductPrompt(in),
		Schema: schema.Product,
	}
	if in.HasImage() {
		req.Image = &genai.InlineImage{MIME: in.ProductImage.MIME, Data: in.ProductImage.Data}
	}

	raw, err := p.text.GenerateJSON(ctx, req)
	if err != nil {
		return domain.Product{}, jsonrepair.OutcomeFallback, err
	}

	fallback := p.productFallback(in)
	payload, outcome := jsonrepair.Extract(raw, productPayload{
		Name:            fallback.Name,
		Category:        fallback.Category,
		Brand:           fallback.Brand,
		Color:           fallback.Color,
		NotableFeatures: fallback.NotableFeatures,
	})

	product := domain.Product{
		Name:            coalesce(payload.Name, fallback.Name),
		Category:        coalesce(payload.Category, fallback.Category),
		Brand:           coalesce(payload.Brand, "N/A"),
		Color:           coalesce(payload.Color, "N/A"),
		NotableFeatures: payload.NotableFeatures,
		Source:          in.SourceRef(),
	}
	if len(product.NotableFeatures) == 0 {
		product.NotableFeatures = fallback.NotableFeatures
	}
	return product, outcome, nil
}

func buildProductPrompt(in domain.GenerateInput) string {
	var b strings.Builder
	if normalizeLocale(in.Locale) == "en" {
		b.WriteString("You are an AI agent that analyzes products. Extract the following details and return them as JSON. Use 'N/A' for any detail that is unavailable.")
		if in.HasImage() {
			b.WriteString(" Analyze the product in this image.")
		} else {
			fmt.Fprintf(&b, " Analyze the product at this URL: %s. Imagine you are visiting that page.", strings.TrimSpace(in.ProductURL))
		}
		if spec := strings.TrimSpace(in.ProductSpec); spec != "" {
			fmt.Fprintf(&b, " Focus especially on: %s.", spec)
		}
		return b.String()
	}

	b.WriteString("Anda adalah agen AI yang menganalisis produk. Ekstrak detail berikut dan kembalikan dalam format JSON. Jika detail tidak tersedia, gunakan 'N/A'.")
	if in.HasImage() {
		b.WriteString(" Analisis produk dalam gambar ini.")
	} else {
		fmt.Fprintf(&b, " Analisis produk dari URL ini: %s. Bayangkan Anda sedang mengunjungi halaman tersebut.", strings.TrimSpace(in.ProductURL))
	}
	if spec := strings.TrimSpace(in.ProductSpec); spec != "" {
		fmt.Fprintf(&b, " Fokus khususnya pada: %s.", spec)
	}
	return b.String()
}

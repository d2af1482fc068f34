package pipeline

import (
	"encoding/base64"
	"strings"
	"testing"

	"server/internal/domain"
)

func decodeBase64(t *testing.T, s string) string {
	t.Helper()
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		t.Fatalf("decode base64: %v", err)
	}
	return string(b)
}

func sampleProduct() domain.Product {
	return domain.Product{
		Name:            "Sepatu Lari Pro",
		Category:        "Olahraga",
		Brand:           "Acme",
		Color:           "Merah",
		NotableFeatures: []string{"ringan", "sol empuk"},
		Source:          domain.ProductSource{Type: domain.SourceTypeURL, Value: "https://shop.test/item-42"},
	}
}

func TestScenarioPromptsFixedOrder(t *testing.T) {
	prompts := ScenarioPrompts(sampleProduct(), true, "id")
	if len(prompts) != 3 {
		t.Fatalf("len = %d, want 3", len(prompts))
	}
	want := domain.Scenarios()
	for i, sp := range prompts {
		if sp.Scenario != want[i] {
			t.Fatalf("prompts[%d].Scenario = %q, want %q", i, sp.Scenario, want[i])
		}
		if !strings.Contains(sp.Prompt, "Sepatu Lari Pro") {
			t.Fatalf("prompts[%d] does not mention the product: %q", i, sp.Prompt)
		}
		if sp.VariantNote == "" {
			t.Fatalf("prompts[%d] has no variant note", i)
		}
	}
	if !strings.Contains(prompts[0].Prompt, "ringan, sol empuk") {
		t.Fatalf("studio prompt misses features: %q", prompts[0].Prompt)
	}
}

func TestScenarioPromptsHumanModelToggle(t *testing.T) {
	withModel := ScenarioPrompts(sampleProduct(), true, "id")
	withoutModel := ScenarioPrompts(sampleProduct(), false, "id")

	for i := range withModel {
		if !strings.Contains(strings.ToLower(withModel[i].Prompt), "model") {
			t.Fatalf("prompt %d with human model does not mention one: %q", i, withModel[i].Prompt)
		}
		if strings.Contains(strings.ToLower(withoutModel[i].Prompt), "model") {
			t.Fatalf("prompt %d without human model mentions one: %q", i, withoutModel[i].Prompt)
		}
	}
}

func TestScenarioPromptsEnglishLocale(t *testing.T) {
	prompts := ScenarioPrompts(sampleProduct(), true, "en")
	if !strings.Contains(prompts[0].Prompt, "Photorealistic studio shot") {
		t.Fatalf("studio prompt = %q", prompts[0].Prompt)
	}
	if !strings.Contains(prompts[1].VariantNote, "natural setting") {
		t.Fatalf("lifestyle note = %q", prompts[1].VariantNote)
	}
}

func TestPlaceholderImagesCarryMetadata(t *testing.T) {
	product := sampleProduct()
	prompts := ScenarioPrompts(product, true, "id")
	images := placeholderImages(product, prompts, "id")

	if len(images) != 3 {
		t.Fatalf("len = %d, want 3", len(images))
	}
	for i, img := range images {
		if img.PromptUsed != prompts[i].Prompt {
			t.Fatalf("images[%d].PromptUsed mismatch", i)
		}
		if !strings.HasPrefix(img.PathOrB64, "data:image/svg+xml;base64,") {
			t.Fatalf("images[%d].PathOrB64 = %q", i, img.PathOrB64[:40])
		}
	}
}

func TestPlaceholderSVGEscapesProductName(t *testing.T) {
	uri := placeholderDataURI("Foto Studio", `Kaos "Juara" <Edisi & Spesial>`, "(Perlu Billing)")
	const prefix = "data:image/svg+xml;base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("uri = %q", uri[:40])
	}
	decoded := decodeBase64(t, strings.TrimPrefix(uri, prefix))
	if strings.Contains(decoded, `"Juara"`) || strings.Contains(decoded, "<Edisi") {
		t.Fatalf("svg contains unescaped markup: %q", decoded)
	}
	if !strings.Contains(decoded, "&quot;Juara&quot;") {
		t.Fatalf("svg misses escaped quotes: %q", decoded)
	}
}

func TestFallbackMarketingHashtags(t *testing.T) {
	m := DefaultMarketingFallback(sampleProduct(), "id")
	if m.Hashtags[0] != "#Olahraga" {
		t.Fatalf("hashtag = %q, want %q", m.Hashtags[0], "#Olahraga")
	}
	if m.Hashtags[1] != "#Merah" {
		t.Fatalf("hashtag = %q, want %q", m.Hashtags[1], "#Merah")
	}
	if len(m.Palette) != 4 {
		t.Fatalf("palette = %#v", m.Palette)
	}
}

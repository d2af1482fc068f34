package pipeline

import (
	"encoding/base64"
	"fmt"
	"strings"

	"server/internal/domain"
)

var scenarioLabels = map[string]map[domain.Scenario]string{
	"id": {
		domain.ScenarioStudio:    "Foto Studio",
		domain.ScenarioLifestyle: "Foto Lifestyle",
		domain.ScenarioUGC:       "Foto UGC",
	},
	"en": {
		domain.ScenarioStudio:    "Studio Shot",
		domain.ScenarioLifestyle: "Lifestyle Shot",
		domain.ScenarioUGC:       "UGC Shot",
	},
}

var billingHints = map[string]string{
	"id": "(Perlu Billing)",
	"en": "(Billing Required)",
}

// placeholderImages substitutes a full scenario triple with locally rendered
// SVG stand-ins. Each keeps the original prompt and variant note so the user
// can regenerate manually once image generation is available.
func placeholderImages(product domain.Product, prompts []ScenarioPrompt, locale string) []domain.GeneratedImage {
	loc := normalizeLocale(locale)
	images := make([]domain.GeneratedImage, len(prompts))
	for i, sp := range prompts {
		images[i] = domain.GeneratedImage{
			Scenario:    sp.Scenario,
			PromptUsed:  sp.Prompt,
			VariantNote: sp.VariantNote,
			PathOrB64:   placeholderDataURI(scenarioLabels[loc][sp.Scenario], product.Name, billingHints[loc]),
		}
	}
	return images
}

// placeholderDataURI renders a simple labelled SVG as a base64 data URI.
func placeholderDataURI(label, productName, hint string) string {
	svg := fmt.Sprintf(`<svg width="400" height="400" xmlns="http://www.w3.org/2000/svg">`+
		`<rect width="400" height="400" fill="#f3f4f6"/>`+
		`<text x="200" y="180" text-anchor="middle" font-family="Arial" font-size="16" fill="#6b7280">%s</text>`+
		`<text x="200" y="200" text-anchor="middle" font-family="Arial" font-size="12" fill="#9ca3af">%s</text>`+
		`<text x="200" y="220" text-anchor="middle" font-family="Arial" font-size="10" fill="#9ca3af">%s</text>`+
		`</svg>`,
		escapeXML(label), escapeXML(productName), escapeXML(hint))
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

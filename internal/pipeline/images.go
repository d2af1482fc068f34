package pipeline

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"server/internal/domain"
	"server/internal/providers/genai"
)

// promptSuffix is appended to every image prompt at call time; it is not part
// of the stored prompt_used so users can reuse the prompt elsewhere.
const promptSuffix = " --ar 1:1 --no extra logos, no text overlay, no watermark"

// ScenarioPrompt is one rendered scenario template.
type ScenarioPrompt struct {
	Scenario    domain.Scenario `json:"scenario"`
	Prompt      string          `json:"prompt"`
	VariantNote string          `json:"variant_note"`
}

// ScenarioPrompts renders the three fixed scenario templates for a product.
// Templates are parameterized by product fields and the human-model toggle but
// structurally fixed; the model never chooses scenarios.
func ScenarioPrompts(p domain.Product, includeHumanModel bool, locale string) []ScenarioPrompt {
	features := strings.Join(p.NotableFeatures, ", ")
	if normalizeLocale(locale) == "en" {
		return []ScenarioPrompt{
			{
				Scenario:    domain.ScenarioStudio,
				VariantNote: "Clean, professional look focused on product detail.",
				Prompt:      studioPromptEN(p, features, includeHumanModel),
			},
			{
				Scenario:    domain.ScenarioLifestyle,
				VariantNote: "Contextual use showing the product in a natural setting.",
				Prompt:      lifestylePromptEN(p, includeHumanModel),
			},
			{
				Scenario:    domain.ScenarioUGC,
				VariantNote: "Authentic creator-style photo that feels relatable.",
				Prompt:      ugcPromptEN(p, includeHumanModel),
			},
		}
	}
	return []ScenarioPrompt{
		{
			Scenario:    domain.ScenarioStudio,
			VariantNote: "Tampilan bersih dan profesional yang fokus pada detail produk.",
			Prompt:      studioPromptID(p, features, includeHumanModel),
		},
		{
			Scenario:    domain.ScenarioLifestyle,
			VariantNote: "Penggunaan kontekstual yang menunjukkan produk dalam suasana alami.",
			Prompt:      lifestylePromptID(p, includeHumanModel),
		},
		{
			Scenario:    domain.ScenarioUGC,
			VariantNote: "Foto otentik bergaya konten kreator yang relatable.",
			Prompt:      ugcPromptID(p, includeHumanModel),
		},
	}
}

func studioPromptID(p domain.Product, features string, human bool) string {
	subject := fmt.Sprintf("produk %s dipajang sendiri", p.Name)
	if human {
		subject = fmt.Sprintf("model menarik dengan pose netral mengenakan atau memegang %s", p.Name)
	}
	return fmt.Sprintf("Foto studio fotorealistik, %s (%s, %s, %s terlihat jelas). Latar belakang gradien minimal, pencahayaan softbox, dynamic range tinggi, detail material yang tajam, tanpa properti yang mengganggu. Resolusi tinggi 1024x1024, produk di tengah.",
		subject, p.Category, p.Color, features)
}

func lifestylePromptID(p domain.Product, human bool) string {
	subject := fmt.Sprintf("%s ditampilkan secara alami", p.Name)
	if human {
		subject = fmt.Sprintf("Model menggunakan %s secara alami", p.Name)
	}
	return fmt.Sprintf("Adegan lifestyle dalam setting yang relevan dengan %s. %s, dengan produk sebagai fokus. Pencahayaan alami hangat, nuansa candid. Tampilkan fitur-fiturnya tanpa halangan. Resolusi tinggi 1024x1024 portrait untuk iklan sosial media.",
		p.Category, subject)
}

func ugcPromptID(p domain.Product, human bool) string {
	subject := fmt.Sprintf("%s diletakkan di permukaan sederhana", p.Name)
	if human {
		subject = fmt.Sprintf("model menggunakan %s; tone kulit alami", p.Name)
	}
	return fmt.Sprintf("Foto vertikal bergaya UGC, sedikit terlihat handheld. Framing dekat, %s; produk menghadap kamera, fokus tajam, latar belakang indoor sederhana. Tanpa filter berat. Resolusi tinggi 1024x1024.",
		subject)
}

func studioPromptEN(p domain.Product, features string, human bool) string {
	subject := fmt.Sprintf("product %s displayed on its own", p.Name)
	if human {
		subject = fmt.Sprintf("an attractive person in a neutral pose wearing or holding %s", p.Name)
	}
	return fmt.Sprintf("Photorealistic studio shot, %s (%s, %s, %s clearly visible). Minimal gradient backdrop, softbox lighting, high dynamic range, crisp material detail, no distracting props. High resolution 1024x1024, product centered.",
		subject, p.Category, p.Color, features)
}

func lifestylePromptEN(p domain.Product, human bool) string {
	subject := fmt.Sprintf("%s displayed naturally", p.Name)
	if human {
		subject = fmt.Sprintf("A person using %s naturally", p.Name)
	}
	return fmt.Sprintf("Lifestyle scene in a setting relevant to %s. %s, with the product in focus. Warm natural light, candid feel. Show its features unobstructed. High resolution 1024x1024 portrait for social media ads.",
		p.Category, subject)
}

func ugcPromptEN(p domain.Product, human bool) string {
	subject := fmt.Sprintf("%s placed on a simple surface", p.Name)
	if human {
		subject = fmt.Sprintf("a person using %s; natural skin tones", p.Name)
	}
	return fmt.Sprintf("Vertical UGC-style photo, slightly handheld. Close framing, %s; product facing the camera, sharp focus, simple indoor background. No heavy filters. High resolution 1024x1024.",
		subject)
}

// generateImages issues all three scenario requests concurrently and joins on
// the batch. The batch is all-or-nothing: any failure replaces every slot with
// a locally rendered placeholder carrying the same prompt metadata, and the
// run continues. The returned error is the degrade cause (nil when all three
// renders are real) and is never propagated past diagnostics.
func (p *Pipeline) generateImages(ctx context.Context, product domain.Product, includeHumanModel bool, locale, apiKey string) ([]domain.GeneratedImage, error) {
	prompts := ScenarioPrompts(product, includeHumanModel, locale)
	results := make([]*genai.ImageResult, len(prompts))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, sp := range prompts {
		i, sp := i, sp
		eg.Go(func() error {
			res, err := p.image.GenerateImage(egCtx, genai.ImageRequest{
				APIKey:      apiKey,
				Prompt:      sp.Prompt + promptSuffix,
				AspectRatio: "1:1",
			})
			if err != nil {
				return fmt.Errorf("%s: %w", sp.Scenario, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		p.logger.Warn().
			Err(err).
			Msg("pipeline: image generation failed; substituting placeholders")
		return placeholderImages(product, prompts, locale), err
	}

	images := make([]domain.GeneratedImage, len(prompts))
	for i, sp := range prompts {
		images[i] = domain.GeneratedImage{
			Scenario:    sp.Scenario,
			PromptUsed:  sp.Prompt,
			VariantNote: sp.VariantNote,
			PathOrB64:   fmt.Sprintf("data:%s;base64,%s", results[i].MIME, base64.StdEncoding.EncodeToString(results[i].Data)),
		}
	}
	return images, nil
}

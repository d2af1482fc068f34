package pipeline

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"server/internal/domain"
)

// ProductFallback supplies a deterministic product when the extraction output
// cannot be parsed at all.
type ProductFallback func(in domain.GenerateInput) domain.Product

// MarketingFallback synthesizes a complete marketing record from product
// fields when generation output cannot be parsed.
type MarketingFallback func(p domain.Product, locale string) domain.Marketing

// neutralPalette is the fixed grey ramp used when no palette can be derived.
var neutralPalette = []string{"#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af"}

// DefaultProductFallback names the product after its source reference and
// fills the rest with generic values.
func DefaultProductFallback(in domain.GenerateInput) domain.Product {
	source := in.SourceRef()
	name := strings.TrimSpace(source.Value)

	if normalizeLocale(in.Locale) == "en" {
		if name == "" {
			name = "Product"
		}
		return domain.Product{
			Name:            name,
			Category:        "Fashion Item",
			Brand:           "N/A",
			Color:           "N/A",
			NotableFeatures: []string{"High quality", "Stylish design", "Comfortable to use"},
			Source:          source,
		}
	}

	if name == "" {
		name = "Produk"
	}
	return domain.Product{
		Name:            name,
		Category:        "Item Fashion",
		Brand:           "N/A",
		Color:           "N/A",
		NotableFeatures: []string{"Kualitas tinggi", "Desain stylish", "Nyaman dipakai"},
		Source:          source,
	}
}

// DefaultMarketingFallback builds every marketing field from templates over
// the product record plus the fixed neutral palette.
func DefaultMarketingFallback(p domain.Product, locale string) domain.Marketing {
	brand := fallbackValue(p.Brand, "")
	color := fallbackValue(p.Color, "")

	if normalizeLocale(locale) == "en" {
		return domain.Marketing{
			Headlines: []string{
				fmt.Sprintf("The Amazing %s", p.Name),
				fmt.Sprintf("Discover %s", p.Category),
				fmt.Sprintf("Premium Quality by %s", coalesce(brand, "the Best")),
			},
			Captions: []string{
				fmt.Sprintf("Experience the excellence of %s. Perfect for every occasion!", p.Name),
				fmt.Sprintf("Find out why %s is the top pick in %s.", p.Name, p.Category),
				fmt.Sprintf("Upgrade your style with %s. Quality meets elegance.", p.Name),
			},
			CTAs: []string{
				fmt.Sprintf("Buy %s", p.Name),
				"Get It Now",
				"Explore the Collection",
			},
			Hashtags: []string{
				hashtag(p.Category),
				hashtag(coalesce(color, "Style")),
				"#Quality", "#Fashion", "#Lifestyle",
			},
			AltTexts: []string{
				fmt.Sprintf("A beautiful %s in a %s finish", p.Name, coalesce(color, "stunning")),
				fmt.Sprintf("High-quality %s featuring %s", p.Category, p.Name),
				fmt.Sprintf("Professional photo of %s with perfect detail", p.Name),
			},
			SEOKeywords: []string{
				strings.ToLower(p.Name),
				strings.ToLower(p.Category),
				strings.ToLower(coalesce(color, "fashion")),
				"quality", "premium", "style",
			},
			Palette: append([]string(nil), neutralPalette...),
		}
	}

	return domain.Marketing{
		Headlines: []string{
			fmt.Sprintf("%s yang Menakjubkan", p.Name),
			fmt.Sprintf("Temukan %s", p.Category),
			fmt.Sprintf("Kualitas Premium %s", coalesce(brand, "Terbaik")),
		},
		Captions: []string{
			fmt.Sprintf("Rasakan keunggulan %s. Sempurna untuk berbagai kesempatan!", p.Name),
			fmt.Sprintf("Temukan mengapa %s menjadi pilihan terbaik dalam %s.", p.Name, p.Category),
			fmt.Sprintf("Ubah gaya Anda dengan %s. Kualitas bertemu dengan keanggunan.", p.Name),
		},
		CTAs: []string{
			fmt.Sprintf("Beli %s", p.Name),
			"Dapatkan Sekarang",
			"Jelajahi Koleksi",
		},
		Hashtags: []string{
			hashtag(p.Category),
			hashtag(coalesce(color, "Gaya")),
			"#Kualitas", "#Fashion", "#Lifestyle",
		},
		AltTexts: []string{
			fmt.Sprintf("%s yang indah dalam warna %s", p.Name, coalesce(color, "menakjubkan")),
			fmt.Sprintf("%s berkualitas tinggi menampilkan %s", p.Category, p.Name),
			fmt.Sprintf("Foto profesional %s dengan detail yang sempurna", p.Name),
		},
		SEOKeywords: []string{
			strings.ToLower(p.Name),
			strings.ToLower(p.Category),
			strings.ToLower(coalesce(color, "fashion")),
			"kualitas", "premium", "gaya",
		},
		Palette: append([]string(nil), neutralPalette...),
	}
}

// hashtag turns free text into a CamelCase tag.
func hashtag(text string) string {
	titled := cases.Title(language.Und).String(strings.TrimSpace(text))
	return "#" + strings.ReplaceAll(titled, " ", "")
}

// fallbackValue treats the "N/A" sentinel as absent.
func fallbackValue(v, def string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, "n/a") {
		return def
	}
	return v
}

func coalesce(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

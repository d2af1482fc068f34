// Package schema declares the response-shape contracts sent to Gemini as
// structured-output constraints. The definitions are pure data; validation of
// the returned payload happens in the pipeline stages.
package schema

// Schema mirrors the subset of the Gemini responseSchema grammar the service
// uses.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

func stringField(desc string) *Schema {
	return &Schema{Type: "STRING", Description: desc}
}

func stringList(desc string) *Schema {
	return &Schema{Type: "ARRAY", Items: &Schema{Type: "STRING"}, Description: desc}
}

// Product constrains the product-extraction response.
var Product = &Schema{
	Type: "OBJECT",
	Properties: map[string]*Schema{
		"name":             stringField("Full product name."),
		"category":         stringField("Product category (e.g., t-shirt, headphones)."),
		"brand":            stringField("Brand of the product, or 'N/A' if not found."),
		"color":            stringField("Primary color of the product."),
		"notable_features": stringList("List of key features or selling points."),
	},
	Required: []string{"name", "category", "brand", "color", "notable_features"},
}

// Marketing constrains the marketing-generation response.
var Marketing = &Schema{
	Type: "OBJECT",
	Properties: map[string]*Schema{
		"headlines":    stringList("3 catchy headlines, max 60 chars each."),
		"captions":     stringList("3 engaging captions, max 150 chars each."),
		"ctas":         stringList("3 clear calls to action."),
		"hashtags":     stringList("5-8 relevant hashtags."),
		"alt_texts":    stringList("3 descriptive alt texts for the generated images."),
		"seo_keywords": stringList("8-12 relevant SEO keywords/phrases."),
		"palette":      stringList("Array of 3-5 dominant color HEX codes from the product."),
	},
	Required: []string{"headlines", "captions", "ctas", "hashtags", "alt_texts", "seo_keywords", "palette"},
}

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"server/internal/domain"
	"server/internal/pipeline"
)

// promptcheck prints the scenario prompts and fallback marketing copy for a
// product described on the command line, so prompt wording can be reviewed
// without spending API quota.
func main() {
	var (
		nameFlag     string
		categoryFlag string
		brandFlag    string
		colorFlag    string
		featuresFlag string
		localeFlag   string
		humanFlag    bool
	)
	flag.StringVar(&nameFlag, "name", "", "Product name (required)")
	flag.StringVar(&categoryFlag, "category", "", "Product category")
	flag.StringVar(&brandFlag, "brand", "N/A", "Product brand")
	flag.StringVar(&colorFlag, "color", "N/A", "Product color")
	flag.StringVar(&featuresFlag, "features", "", "Comma-separated notable features")
	flag.StringVar(&localeFlag, "locale", "id", "Output locale (id or en)")
	flag.BoolVar(&humanFlag, "human", true, "Include a human model in the prompts")
	flag.Parse()

	name := strings.TrimSpace(nameFlag)
	if name == "" {
		fmt.Fprintln(os.Stderr, "-name is required")
		os.Exit(1)
	}

	product := domain.Product{
		Name:     name,
		Category: strings.TrimSpace(categoryFlag),
		Brand:    strings.TrimSpace(brandFlag),
		Color:    strings.TrimSpace(colorFlag),
	}
	for _, part := range strings.Split(featuresFlag, ",") {
		if part = strings.TrimSpace(part); part != "" {
			product.NotableFeatures = append(product.NotableFeatures, part)
		}
	}

	for _, sp := range pipeline.ScenarioPrompts(product, humanFlag, localeFlag) {
		fmt.Printf("[%s] %s\n", sp.Scenario, sp.VariantNote)
		fmt.Println(sp.Prompt)
		fmt.Println()
	}

	marketing := pipeline.DefaultMarketingFallback(product, localeFlag)
	encoded, err := json.MarshalIndent(marketing, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode marketing fallback: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("fallback marketing:")
	fmt.Println(string(encoded))
}

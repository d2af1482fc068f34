package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"server/internal/domain"
	"server/internal/middleware"
	"server/internal/pipeline"
)

// VisualsScenarios previews the three scenario prompts for a product described
// via query parameters, without calling the model.
func (a *App) VisualsScenarios(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := strings.TrimSpace(q.Get("name"))
	if name == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "name required")
		return
	}

	product := domain.Product{
		Name:     name,
		Category: strings.TrimSpace(q.Get("category")),
		Brand:    strings.TrimSpace(q.Get("brand")),
		Color:    strings.TrimSpace(q.Get("color")),
	}
	if raw := q.Get("features"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				product.NotableFeatures = append(product.NotableFeatures, part)
			}
		}
	}

	includeHumanModel := true
	if v := q.Get("human"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			includeHumanModel = parsed
		}
	}

	locale := middleware.LocaleFromContext(r.Context())
	a.json(w, http.StatusOK, map[string]any{
		"scenarios": pipeline.ScenarioPrompts(product, includeHumanModel, locale),
	})
}

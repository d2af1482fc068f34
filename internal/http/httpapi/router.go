package httpapi

import (
	stdhttp "net/http"
	"time"

	"server/internal/http/handlers"
	"server/internal/infra"
	"server/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the HTTP surface: health, the generation endpoint, and the
// scenario prompt preview.
func NewRouter(cfg *infra.Config, logger infra.Logger, app *handlers.App, lookup middleware.CountryLookup) stdhttp.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
		middleware.I18N(cfg.DefaultLocale, lookup),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/visuals", func(r chi.Router) {
		r.Post("/", app.VisualsGenerate)
		r.Get("/scenarios", app.VisualsScenarios)
	})

	return r
}

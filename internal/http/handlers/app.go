package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"server/internal/domain"
	"server/internal/infra"
)

// VisualsRunner executes the full asset generation flow for one request.
type VisualsRunner interface {
	Run(ctx context.Context, in domain.GenerateInput, apiKey string) (*domain.OutputData, error)
}

type App struct {
	Pipeline VisualsRunner
	Logger   infra.Logger
}

func NewApp(p VisualsRunner, logger infra.Logger) *App {
	return &App{Pipeline: p, Logger: logger}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, kind, message string) {
	a.json(w, code, map[string]any{
		"error": map[string]string{
			"code":    kind,
			"message": message,
		},
	})
}

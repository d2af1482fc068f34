package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"server/internal/domain"
	"server/internal/middleware"
	"server/internal/pipeline"
)

const maxUploadBytes = 16 << 20

type visualsRequest struct {
	ProductURL        string `json:"product_url"`
	ProductSpec       string `json:"product_spec"`
	IncludeHumanModel *bool  `json:"include_human_model"`
	APIKey            string `json:"api_key"`
}

// VisualsGenerate accepts either a JSON body or a multipart form with a
// product_image file part and runs the generation flow synchronously.
func (a *App) VisualsGenerate(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromContext(r.Context())

	in, apiKey, ok := a.decodeVisualsRequest(w, r)
	if !ok {
		return
	}
	in.Locale = locale
	if apiKey == "" {
		apiKey = strings.TrimSpace(r.Header.Get("X-Api-Key"))
	}

	out, err := a.Pipeline.Run(r.Context(), in, apiKey)
	if err != nil {
		a.visualsError(w, r, locale, err)
		return
	}
	a.json(w, http.StatusOK, out)
}

func (a *App) decodeVisualsRequest(w http.ResponseWriter, r *http.Request) (domain.GenerateInput, string, bool) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if strings.HasPrefix(mediaType, "multipart/") {
		return a.decodeMultipart(w, r)
	}

	var req visualsRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxUploadBytes)).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return domain.GenerateInput{}, "", false
	}
	in := domain.GenerateInput{
		ProductURL:        strings.TrimSpace(req.ProductURL),
		ProductSpec:       strings.TrimSpace(req.ProductSpec),
		IncludeHumanModel: true,
	}
	if req.IncludeHumanModel != nil {
		in.IncludeHumanModel = *req.IncludeHumanModel
	}
	return in, strings.TrimSpace(req.APIKey), true
}

func (a *App) decodeMultipart(w http.ResponseWriter, r *http.Request) (domain.GenerateInput, string, bool) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid multipart payload")
		return domain.GenerateInput{}, "", false
	}

	in := domain.GenerateInput{
		ProductURL:        strings.TrimSpace(r.FormValue("product_url")),
		ProductSpec:       strings.TrimSpace(r.FormValue("product_spec")),
		IncludeHumanModel: true,
	}
	if v := r.FormValue("include_human_model"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			in.IncludeHumanModel = parsed
		}
	}

	file, header, err := r.FormFile("product_image")
	if err == nil {
		defer file.Close()
		data, readErr := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if readErr != nil {
			a.error(w, http.StatusBadRequest, "bad_request", "unreadable product_image")
			return domain.GenerateInput{}, "", false
		}
		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = http.DetectContentType(data)
		}
		in.ProductImage = &domain.UploadedImage{
			Filename: header.Filename,
			MIME:     contentType,
			Data:     data,
		}
	} else if err != http.ErrMissingFile {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid product_image part")
		return domain.GenerateInput{}, "", false
	}

	return in, strings.TrimSpace(r.FormValue("api_key")), true
}

func (a *App) visualsError(w http.ResponseWriter, r *http.Request, locale string, err error) {
	var verr *pipeline.ValidationError
	if errors.As(err, &verr) {
		a.error(w, http.StatusBadRequest, "validation_error", verr.Message)
		return
	}
	var perr *pipeline.ProviderError
	if errors.As(err, &perr) {
		a.error(w, http.StatusBadGateway, "provider_error", perr.Message)
		return
	}
	a.Logger.Error().
		Str("request_id", middleware.RequestIDFromContext(r.Context())).
		Err(err).
		Msg("visuals generate failed")
	a.error(w, http.StatusInternalServerError, "internal", pipeline.Classify(locale, err.Error()))
}

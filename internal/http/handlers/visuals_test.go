package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"server/internal/domain"
	"server/internal/pipeline"

	"github.com/rs/zerolog"
)

type fakeRunner struct {
	lastInput domain.GenerateInput
	lastKey   string
	out       *domain.OutputData
	err       error
}

func (f *fakeRunner) Run(_ context.Context, in domain.GenerateInput, apiKey string) (*domain.OutputData, error) {
	f.lastInput = in
	f.lastKey = apiKey
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func newTestApp(runner *fakeRunner) *App {
	return NewApp(runner, zerolog.New(io.Discard))
}

func sampleOutput() *domain.OutputData {
	return &domain.OutputData{
		Product: domain.Product{
			Name:   "Sepatu Lari Pro",
			Source: domain.ProductSource{Type: domain.SourceTypeURL, Value: "https://shop.test/item"},
		},
		Affiliate: domain.Affiliate{AffiliateURL: "https://example-store.com/sepatu-lari-pro"},
	}
}

func TestVisualsGenerateJSONBody(t *testing.T) {
	runner := &fakeRunner{out: sampleOutput()}
	app := newTestApp(runner)

	body := `{"product_url":"https://shop.test/item","product_spec":"warna merah","api_key":"test-api-key-1234567890"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/visuals", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.VisualsGenerate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if runner.lastInput.ProductURL != "https://shop.test/item" {
		t.Fatalf("ProductURL = %q", runner.lastInput.ProductURL)
	}
	if runner.lastInput.ProductSpec != "warna merah" {
		t.Fatalf("ProductSpec = %q", runner.lastInput.ProductSpec)
	}
	if !runner.lastInput.IncludeHumanModel {
		t.Fatal("IncludeHumanModel should default to true")
	}
	if runner.lastKey != "test-api-key-1234567890" {
		t.Fatalf("api key = %q", runner.lastKey)
	}

	var out domain.OutputData
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Product.Name != "Sepatu Lari Pro" {
		t.Fatalf("product name = %q", out.Product.Name)
	}
}

func TestVisualsGenerateHumanModelOptOut(t *testing.T) {
	runner := &fakeRunner{out: sampleOutput()}
	app := newTestApp(runner)

	body := `{"product_url":"https://shop.test/item","include_human_model":false,"api_key":"test-api-key-1234567890"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/visuals", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.VisualsGenerate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if runner.lastInput.IncludeHumanModel {
		t.Fatal("IncludeHumanModel should be false")
	}
}

func TestVisualsGenerateHeaderKeyFallback(t *testing.T) {
	runner := &fakeRunner{out: sampleOutput()}
	app := newTestApp(runner)

	req := httptest.NewRequest(http.MethodPost, "/v1/visuals", strings.NewReader(`{"product_url":"https://shop.test/item"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", "header-key-1234567890")
	rec := httptest.NewRecorder()

	app.VisualsGenerate(rec, req)

	if runner.lastKey != "header-key-1234567890" {
		t.Fatalf("api key = %q, want header value", runner.lastKey)
	}
}

func TestVisualsGenerateMultipartImage(t *testing.T) {
	runner := &fakeRunner{out: sampleOutput()}
	app := newTestApp(runner)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("product_image", "sepatu.jpg")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("fake-jpeg-bytes")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.WriteField("product_spec", "fokus pada sol"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := mw.WriteField("api_key", "test-api-key-1234567890"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := mw.WriteField("include_human_model", "false"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/v1/visuals", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	app.VisualsGenerate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	img := runner.lastInput.ProductImage
	if img == nil {
		t.Fatal("ProductImage not set")
	}
	if img.Filename != "sepatu.jpg" {
		t.Fatalf("Filename = %q", img.Filename)
	}
	if string(img.Data) != "fake-jpeg-bytes" {
		t.Fatalf("Data = %q", img.Data)
	}
	if runner.lastInput.ProductSpec != "fokus pada sol" {
		t.Fatalf("ProductSpec = %q", runner.lastInput.ProductSpec)
	}
	if runner.lastInput.IncludeHumanModel {
		t.Fatal("IncludeHumanModel should be false")
	}
}

func TestVisualsGenerateValidationError(t *testing.T) {
	runner := &fakeRunner{err: &pipeline.ValidationError{Message: "Harap masukkan Gemini API Key Anda."}}
	app := newTestApp(runner)

	req := httptest.NewRequest(http.MethodPost, "/v1/visuals", strings.NewReader(`{"product_url":"https://shop.test/item"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.VisualsGenerate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Error.Code != "validation_error" {
		t.Fatalf("error code = %q", body.Error.Code)
	}
	if body.Error.Message != "Harap masukkan Gemini API Key Anda." {
		t.Fatalf("error message = %q", body.Error.Message)
	}
}

func TestVisualsGenerateProviderError(t *testing.T) {
	runner := &fakeRunner{err: &pipeline.ProviderError{Message: "Terlalu banyak permintaan. Coba lagi nanti."}}
	app := newTestApp(runner)

	req := httptest.NewRequest(http.MethodPost, "/v1/visuals", strings.NewReader(`{"product_url":"https://shop.test/item"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.VisualsGenerate(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "provider_error") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestVisualsGenerateRejectsBadJSON(t *testing.T) {
	runner := &fakeRunner{out: sampleOutput()}
	app := newTestApp(runner)

	req := httptest.NewRequest(http.MethodPost, "/v1/visuals", strings.NewReader(`{"product_url":`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.VisualsGenerate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if runner.lastKey != "" || runner.lastInput.ProductURL != "" {
		t.Fatal("runner should not have been called")
	}
}

func TestVisualsScenariosPreview(t *testing.T) {
	app := newTestApp(&fakeRunner{})

	req := httptest.NewRequest(http.MethodGet, "/v1/visuals/scenarios?name=Sepatu+Lari&category=Olahraga&features=ringan,sol+empuk&human=false", nil)
	rec := httptest.NewRecorder()

	app.VisualsScenarios(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Scenarios []pipeline.ScenarioPrompt `json:"scenarios"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Scenarios) != 3 {
		t.Fatalf("scenarios = %d, want 3", len(body.Scenarios))
	}
	if body.Scenarios[0].Scenario != domain.ScenarioStudio {
		t.Fatalf("first scenario = %q", body.Scenarios[0].Scenario)
	}
	if !strings.Contains(body.Scenarios[0].Prompt, "Sepatu Lari") {
		t.Fatalf("prompt = %q", body.Scenarios[0].Prompt)
	}
}

func TestVisualsScenariosRequiresName(t *testing.T) {
	app := newTestApp(&fakeRunner{})

	req := httptest.NewRequest(http.MethodGet, "/v1/visuals/scenarios", nil)
	rec := httptest.NewRecorder()

	app.VisualsScenarios(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

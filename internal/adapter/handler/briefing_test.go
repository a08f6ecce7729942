package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/briefing-team/briefing-analyzer/internal/usecase/analysis"
	"github.com/briefing-team/briefing-analyzer/pkg/config"
	pkgvalidator "github.com/briefing-team/briefing-analyzer/pkg/validator"
)

func newTestContext(t *testing.T, body string, query string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = pkgvalidator.New()

	target := "/v1/briefings/analyze"
	if query != "" {
		target += "?" + query
	}
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newTestHandler() *Briefing {
	cfg := config.DefaultAnalysisConfig()
	pipeline := analysis.NewPipeline(cfg, nil)
	return NewBriefing(pipeline, cfg.Keywords, nil)
}

func analyzeBody(data string) string {
	b, _ := json.Marshal(map[string]string{"format": "json", "data": data})
	return string(b)
}

func TestAnalyze_OK(t *testing.T) {
	body := analyzeBody(`[{"briefing_id": "B1", "date": "2023-07-11", "briefing_text": "Steady growth this quarter.", "key_metrics": 96}]`)
	c, rec := newTestContext(t, body, "")

	if err := newTestHandler().Analyze(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data struct {
			State  string `json:"state"`
			Result struct {
				AverageKeyMetric *float64 `json:"average_key_metric"`
			} `json:"result"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Data.State != string(analysis.StateReported) {
		t.Fatalf("expected reported state got %q", resp.Data.State)
	}
	if resp.Data.Result.AverageKeyMetric == nil || *resp.Data.Result.AverageKeyMetric != 96 {
		t.Fatalf("unexpected average: %v", resp.Data.Result.AverageKeyMetric)
	}
}

func TestAnalyze_RejectedBatchIs422(t *testing.T) {
	body := analyzeBody(`[{"briefing_id": "B1", "date": "2023-07-11", "briefing_text": "Growth.", "key_metrics": -5}]`)
	c, rec := newTestContext(t, body, "")

	if err := newTestHandler().Analyze(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "key_metrics") {
		t.Fatalf("rejection must name the failing field: %s", rec.Body.String())
	}
}

func TestAnalyze_MalformedInputIs400(t *testing.T) {
	body := analyzeBody(`{not json`)
	c, rec := newTestContext(t, body, "")

	if err := newTestHandler().Analyze(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAnalyze_UnsupportedFormatIs400(t *testing.T) {
	b, _ := json.Marshal(map[string]string{"format": "xml", "data": "<x/>"})
	c, rec := newTestContext(t, string(b), "")

	if err := newTestHandler().Analyze(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	// The oneof tag rejects before the pipeline runs.
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAnalyze_MarkdownRendering(t *testing.T) {
	body := analyzeBody(`[{"briefing_id": "B1", "date": "2023-07-11", "briefing_text": "Steady growth this quarter.", "key_metrics": 96}]`)
	c, rec := newTestContext(t, body, "render=markdown")

	if err := newTestHandler().Analyze(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "text/markdown") {
		t.Fatalf("expected markdown content type got %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "# Investor Briefing Summary") {
		t.Fatalf("markdown body missing summary header: %s", rec.Body.String())
	}
}

func TestValidateEndpoint_ReturnsReport(t *testing.T) {
	b, _ := json.Marshal(map[string]string{
		"format": "json",
		"data":   `[{"briefing_id": "B1", "briefing_text": "Growth."}]`,
	})
	c, rec := newTestContext(t, string(b), "")

	if err := newTestHandler().Validate(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data struct {
			Report struct {
				IsValid bool `json:"is_valid"`
			} `json:"validation_report"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Data.Report.IsValid {
		t.Fatalf("record without date must report invalid")
	}
}

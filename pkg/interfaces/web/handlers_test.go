package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/hoth-industries/controltower/pkg/application/dto"
	"github.com/hoth-industries/controltower/pkg/application/services"
	"github.com/hoth-industries/controltower/pkg/config"
	"github.com/hoth-industries/controltower/pkg/domain/entities"
	infratesting "github.com/hoth-industries/controltower/pkg/infrastructure/testing"
)

func testDataset(t *testing.T) *services.Dataset {
	t.Helper()

	orders := []*entities.Order{
		infratesting.MakeOrder("PO-1", "Acme Inc", "ACME", "HX-5512", "Heat Exchanger Core", "2024-01-10", "2024-01-12", 50, "100"),
		infratesting.MakeOrder("PO-2", "Kessel Metals", "KESSEL METALS", "FINS-7715", "Cooling Fin Array", "2024-02-01", "2024-02-01", 40, "45"),
	}
	quality := []*entities.QualityInspection{
		infratesting.MakeInspection("PO-1", 50, 1, "Surface finish"),
	}
	similarity := []*entities.SimilarityEdge{
		infratesting.MakeEdge("HX-5512", "FINS-7715", 0.96),
	}

	ds, err := services.NewDatasetFromEntities(orders, quality, nil, nil, similarity)
	if err != nil {
		t.Fatalf("failed to build dataset: %v", err)
	}
	return ds
}

func testMux(t *testing.T) *http.ServeMux {
	t.Helper()

	mux := http.NewServeMux()
	handler := NewAnalysisHandler(testDataset(t), services.NewAnalysisService(), zap.NewNop())
	handler.RegisterRoutes(mux)
	return mux
}

func TestHealthHandler_Health(t *testing.T) {
	cfg := &config.Config{Version: "test-version", Env: "test"}
	handler := NewHealthHandler(cfg, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	handler.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if body := rec.Body.String(); body != "ok" {
		t.Errorf("expected body 'ok', got '%s'", body)
	}
}

func TestHealthHandler_Ping(t *testing.T) {
	cfg := &config.Config{Version: "test-version", Env: "test"}
	handler := NewHealthHandler(cfg, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()

	handler.Ping(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response PingResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Status != "ok" {
		t.Errorf("expected status 'ok', got '%s'", response.Status)
	}
	if response.Version != "test-version" {
		t.Errorf("expected version 'test-version', got '%s'", response.Version)
	}
	if response.Service != "controltower" {
		t.Errorf("expected service 'controltower', got '%s'", response.Service)
	}
}

func TestAnalysisHandler_ListParts(t *testing.T) {
	mux := testMux(t)

	req := httptest.NewRequest(http.MethodGet, "/api/parts", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response PartListResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Total != 2 {
		t.Errorf("expected 2 parts, got %d", response.Total)
	}
	if response.Parts[0].Label != "Cooling Fin Array (FINS-7715)" {
		t.Errorf("unexpected first label '%s'", response.Parts[0].Label)
	}
}

func TestAnalysisHandler_Overview(t *testing.T) {
	mux := testMux(t)

	req := httptest.NewRequest(http.MethodGet, "/api/overview", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var health dto.GlobalHealth
	if err := json.NewDecoder(rec.Body).Decode(&health); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if health.OrderCount != 2 {
		t.Errorf("expected 2 orders, got %d", health.OrderCount)
	}
	if health.OverallRejectionRate != 0.02 {
		t.Errorf("expected rejection rate 0.02, got %v", health.OverallRejectionRate)
	}
}

func TestAnalysisHandler_AnalyzePart(t *testing.T) {
	mux := testMux(t)

	req := httptest.NewRequest(http.MethodGet, "/api/parts/HX-5512/analysis", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var analysis dto.PartAnalysis
	if err := json.NewDecoder(rec.Body).Decode(&analysis); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if analysis.Summary.PartNumber != "HX-5512" {
		t.Errorf("expected part HX-5512, got '%s'", analysis.Summary.PartNumber)
	}
	if len(analysis.Sourcing.Suppliers) != 1 {
		t.Errorf("expected 1 supplier, got %d", len(analysis.Sourcing.Suppliers))
	}
	if !analysis.Producibility.Matched {
		t.Error("expected a similarity match for HX-5512")
	}
}

func TestAnalysisHandler_AnalyzePart_NotFound(t *testing.T) {
	mux := testMux(t)

	req := httptest.NewRequest(http.MethodGet, "/api/parts/NOPE-404/analysis", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["error"] != "part_not_found" {
		t.Errorf("expected error code 'part_not_found', got '%s'", body["error"])
	}
}

func TestDashboardHandler_Dashboard(t *testing.T) {
	handler, err := NewDashboardHandler(testDataset(t), services.NewAnalysisService(), "test-version", zap.NewNop())
	if err != nil {
		t.Fatalf("failed to create dashboard handler: %v", err)
	}

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "Supplier Risk Control Tower") {
		t.Error("expected dashboard title in response body")
	}
	if !strings.Contains(body, "Heat Exchanger Core (HX-5512)") {
		t.Error("expected part option label in response body")
	}
	if !strings.Contains(body, "test-version") {
		t.Error("expected version string in response body")
	}
}

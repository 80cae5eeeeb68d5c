package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/hoth-industries/controltower/pkg/application/dto"
	"github.com/hoth-industries/controltower/pkg/application/services"
)

//go:embed templates/*.html
var templateFS embed.FS

// DashboardData contains all data for rendering the dashboard template
type DashboardData struct {
	Version string
	Health  dto.GlobalHealth
	Parts   []dto.PartOption

	// Pre-formatted percentage strings for the header cards
	RejectionRatePct string
	LateSharePct     string
}

// DashboardHandler renders the single-page dashboard. The page carries the
// global health figures and the part selector; per-part analyses are fetched
// from the API as the selection changes.
type DashboardHandler struct {
	dataset  *services.Dataset
	analysis *services.AnalysisService
	version  string
	template *template.Template
	logger   *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dataset *services.Dataset, analysis *services.AnalysisService, version string, logger *zap.Logger) (*DashboardHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/dashboard.html")
	if err != nil {
		return nil, err
	}

	return &DashboardHandler{
		dataset:  dataset,
		analysis: analysis,
		version:  version,
		template: tmpl,
		logger:   logger,
	}, nil
}

// RegisterRoutes registers the dashboard route on the given mux.
func (h *DashboardHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Dashboard)
}

// Dashboard handles GET /
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	health := h.analysis.GlobalHealth(h.dataset)
	data := DashboardData{
		Version:          h.version,
		Health:           health,
		Parts:            h.analysis.PartOptions(h.dataset),
		RejectionRatePct: fmt.Sprintf("%.1f%%", health.OverallRejectionRate*100),
		LateSharePct:     fmt.Sprintf("%.1f%%", health.LateOrderShare*100),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.Execute(w, data); err != nil {
		h.logger.Error("Failed to render dashboard", zap.Error(err))
	}
}

package web

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/hoth-industries/controltower/pkg/application/dto"
	"github.com/hoth-industries/controltower/pkg/application/services"
	"github.com/hoth-industries/controltower/pkg/domain/entities"
)

// PartListResponse lists the selectable parts with a total count.
type PartListResponse struct {
	Parts []dto.PartOption `json:"parts"`
	Total int              `json:"total"`
}

// AnalysisHandler serves the analytics API over a loaded dataset snapshot.
type AnalysisHandler struct {
	dataset  *services.Dataset
	analysis *services.AnalysisService
	logger   *zap.Logger
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(dataset *services.Dataset, analysis *services.AnalysisService, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		dataset:  dataset,
		analysis: analysis,
		logger:   logger,
	}
}

// RegisterRoutes registers the analysis handler's routes on the given mux.
func (h *AnalysisHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/overview", h.Overview)
	mux.HandleFunc("GET /api/parts", h.ListParts)
	mux.HandleFunc("GET /api/parts/{part}/analysis", h.AnalyzePart)
}

// Overview handles GET /api/overview
func (h *AnalysisHandler) Overview(w http.ResponseWriter, r *http.Request) {
	health := h.analysis.GlobalHealth(h.dataset)

	if err := WriteJSON(w, http.StatusOK, health); err != nil {
		h.logger.Error("Failed to write overview response", zap.Error(err))
	}
}

// ListParts handles GET /api/parts
func (h *AnalysisHandler) ListParts(w http.ResponseWriter, r *http.Request) {
	options := h.analysis.PartOptions(h.dataset)

	response := PartListResponse{
		Parts: options,
		Total: len(options),
	}
	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to write part list response", zap.Error(err))
	}
}

// AnalyzePart handles GET /api/parts/{part}/analysis
func (h *AnalysisHandler) AnalyzePart(w http.ResponseWriter, r *http.Request) {
	partNumber := entities.PartNumber(r.PathValue("part"))
	if partNumber == "" {
		if err := ErrorResponse(w, http.StatusBadRequest, "missing_part_number", "part number is required"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	analysis, err := h.analysis.AnalyzePart(h.dataset, partNumber)
	if err != nil {
		h.logger.Warn("Part analysis failed",
			zap.String("part_number", string(partNumber)),
			zap.Error(err))
		if err := ErrorResponse(w, http.StatusNotFound, "part_not_found", err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, analysis); err != nil {
		h.logger.Error("Failed to write analysis response", zap.Error(err))
	}
}

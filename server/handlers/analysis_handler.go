package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"callcenter-forecast/models"
	services "callcenter-forecast/service"
	"callcenter-forecast/util"
)

const (
	LIMIT_QUERY_ARG      = "limit"
	DEFAULT_HISTORY_SIZE = 20
)

const internalErrorMessage = "Internal server error"

// Analyzer is the analysis operation served by AnalysisHandler.
type Analyzer interface {
	Analyze(ctx context.Context) (*models.AnalysisResponse, error)
	RecentRuns(ctx context.Context, limit int) ([]models.RunSummary, error)
}

type AnalysisHandler struct {
	analyzer Analyzer
}

func NewAnalysisHandler(analyzer Analyzer) *AnalysisHandler {
	return &AnalysisHandler{analyzer: analyzer}
}

// GetAnalysis runs the analysis. Missing or insufficient data is reported with
// status 200 and an error payload; any other failure is a 500.
func (h *AnalysisHandler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	resp, err := h.analyzer.Analyze(r.Context())

	var userErr *services.UserError
	switch {
	case errors.As(err, &userErr):
		writeJSON(w, http.StatusOK, models.ErrorResponse{Error: userErr.Message})
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: internalErrorMessage})
	default:
		writeJSON(w, http.StatusOK, resp)
	}
}

// GetAnalysisChart renders the analysis as an HTML page with line charts.
func (h *AnalysisHandler) GetAnalysisChart(w http.ResponseWriter, r *http.Request) {
	resp, err := h.analyzer.Analyze(r.Context())

	var userErr *services.UserError
	switch {
	case errors.As(err, &userErr):
		http.Error(w, userErr.Message, http.StatusUnprocessableEntity)
		return
	case err != nil:
		http.Error(w, internalErrorMessage, http.StatusInternalServerError)
		return
	}

	var page bytes.Buffer
	if err := util.RenderAnalysisCharts(&page, resp); err != nil {
		log.Error().Err(err).Msg("Error rendering analysis charts")
		http.Error(w, internalErrorMessage, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := page.WriteTo(w); err != nil {
		log.Error().Err(err).Msg("Error writing chart page")
	}
}

// GetRunHistory lists recent analysis runs, newest first.
// expects ?limit={count(int)}, optional
func (h *AnalysisHandler) GetRunHistory(w http.ResponseWriter, r *http.Request) {
	limit := DEFAULT_HISTORY_SIZE
	if raw := r.URL.Query().Get(LIMIT_QUERY_ARG); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid limit"})
			return
		}
		limit = parsed
	}

	runs, err := h.analyzer.RecentRuns(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("Error loading run history")
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: internalErrorMessage})
		return
	}
	writeJSON(w, http.StatusOK, runs)
}

func (h *AnalysisHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("Error encoding response")
	}
}

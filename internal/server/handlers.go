package server

import (
	"net/http"

	"github.com/tickerlens/tickerlens/internal/common"
	"github.com/tickerlens/tickerlens/internal/models"
	"github.com/tickerlens/tickerlens/internal/render"
)

// Error messages surfaced to the host page.
const (
	// MsgFetchFailed covers every transport-level failure: network error,
	// non-JSON body, engine unreachable.
	MsgFetchFailed = "Failed to fetch analysis results. Please try again."
	// MsgAnalysisFailed is the fallback when the engine declares failure
	// without an error message of its own.
	MsgAnalysisFailed = "Analysis failed"
)

// analyzeEnvelope is the terminal response of every /api/analyze attempt.
// The handler always returns one, whatever the outcome — the host page is
// never left in its loading state. On failure, Sections is omitted so the
// results panels are not updated, and DisplayMS tells the page how long to
// show the transient error.
type analyzeEnvelope struct {
	Success   bool              `json:"success"`
	Error     string            `json:"error,omitempty"`
	Sections  map[string]string `json:"sections,omitempty"`
	DisplayMS int               `json:"display_ms,omitempty"`
}

// handleIndex serves the dashboard shell page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		WriteError(w, http.StatusNotFound, "Not found")
		return
	}
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteHTML(w, http.StatusOK, render.Page(s.app.Config.Dashboard.ErrorDisplayMS))
}

// handleAnalyze orchestrates one analysis submission: validate the input,
// issue exactly one upstream request, validate the payload, render the five
// dashboard fragments. Concurrent submissions are independent; ordering of
// their responses is the host page's last-write-wins concern, not ours.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	displayMS := s.app.Config.Dashboard.ErrorDisplayMS

	var req models.AnalyzeRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	req.Normalize(s.app.Config.Dashboard.DefaultNewsCount)
	if msg := req.Validate(); msg != "" {
		WriteJSON(w, http.StatusBadRequest, analyzeEnvelope{Error: msg, DisplayMS: displayMS})
		return
	}

	resp, err := s.app.Insight.Analyze(r.Context(), &req)
	if err != nil {
		s.logger.Warn().Err(err).Str("ticker", req.Ticker).Msg("Analyze request failed")
		WriteJSON(w, http.StatusBadGateway, analyzeEnvelope{Error: MsgFetchFailed, DisplayMS: displayMS})
		return
	}

	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = MsgAnalysisFailed
		}
		WriteJSON(w, http.StatusOK, analyzeEnvelope{Error: msg, DisplayMS: displayMS})
		return
	}

	analysis, status := render.ValidatePayload(resp)
	if status != render.PayloadOK {
		s.logger.Warn().Str("ticker", req.Ticker).Str("status", string(status)).Msg("Engine payload incomplete")
		WriteJSON(w, http.StatusOK, analyzeEnvelope{Error: status.Message(), DisplayMS: displayMS})
		return
	}

	// Fresh registry per response: the fragments replace their mount points
	// wholesale, so the document ends up with exactly one copy of each asset.
	WriteJSON(w, http.StatusOK, analyzeEnvelope{
		Success:  true,
		Sections: render.Dashboard(analysis, render.NewAssetRegistry()),
	})
}

// handleHealth responds to GET/HEAD /api/health with {"status":"ok"}.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleVersion responds with version info.
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

// handleConfig echoes the non-sensitive parts of the running configuration.
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	cfg := s.app.Config
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"environment":        cfg.Environment,
		"insight_base_url":   cfg.Clients.Insight.BaseURL,
		"default_news_count": cfg.Dashboard.DefaultNewsCount,
		"error_display_ms":   cfg.Dashboard.ErrorDisplayMS,
	})
}

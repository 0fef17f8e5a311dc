package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jobshield/jobshield/internal/fetch"
	"github.com/jobshield/jobshield/internal/pipeline"
)

// AnalyzeRequest is the payload for POST /analyze. Exactly one of the
// two fields is expected; job_text wins when both are present.
type AnalyzeRequest struct {
	JobText string `json:"job_text" validate:"omitempty,min=1"`
	JobURL  string `json:"job_url" validate:"omitempty,url"`
}

var validate = validator.New()

// handleAnalyze runs the screening pipeline for a pasted posting or a
// posting URL and returns the aggregate report.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	if err := validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if req.JobText == "" && req.JobURL == "" {
		s.jsonResponse(w, http.StatusBadRequest, pipeline.InvalidInputReport())
		return
	}

	opts := pipeline.Options{
		Text:   req.JobText,
		Logger: s.log,
	}

	if req.JobText == "" {
		markup, ok := s.fetchMarkup(w, r, req.JobURL)
		if !ok {
			return
		}
		opts.Markup = markup
	}

	report, err := pipeline.Analyze(opts)
	if err != nil {
		if pipeline.IsContentError(err) {
			s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.log.Error("analysis failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// fetchMarkup retrieves page markup for a posting URL, falling back to
// headless rendering when enabled and the portal needs it. It writes
// the error response itself and returns ok=false on failure.
func (s *Server) fetchMarkup(w http.ResponseWriter, r *http.Request, jobURL string) (string, bool) {
	ctx := r.Context()

	if s.useBrowser && fetch.NeedsBrowser(fetch.PortalFromURL(jobURL)) {
		html, err := fetch.BrowserSimple(ctx, jobURL, s.log)
		if err != nil {
			s.log.Warn("browser fetch failed", zap.String("url", jobURL), zap.Error(err))
			s.errorResponse(w, http.StatusBadGateway, "failed to fetch job posting URL")
			return "", false
		}
		return html, true
	}

	opts := fetch.DefaultOptions()
	opts.Timeout = s.fetchTime

	result, err := fetch.URL(ctx, jobURL, opts)
	if err != nil {
		var fe *fetch.Error
		if errors.As(err, &fe) {
			s.errorResponse(w, http.StatusBadRequest, fe.Message)
			return "", false
		}
		s.log.Error("fetch failed", zap.String("url", jobURL), zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "fetch failed")
		return "", false
	}
	if !result.Success {
		s.log.Warn("fetch unsuccessful",
			zap.String("url", jobURL),
			zap.Int("status", result.StatusCode),
			zap.String("reason", result.Reason),
		)
		s.errorResponse(w, http.StatusBadGateway, result.Reason)
		return "", false
	}

	// SPA shells come back as near-empty documents; re-render when the
	// browser is available.
	if s.useBrowser && fetch.ShouldUseBrowser(result.HTML) {
		html, err := fetch.BrowserSimple(ctx, jobURL, s.log)
		if err == nil {
			return html, true
		}
		s.log.Warn("browser re-render failed, using static markup",
			zap.String("url", jobURL), zap.Error(err))
	}

	return result.HTML, true
}

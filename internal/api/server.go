// Package api exposes the measurement layer over HTTP: one endpoint that
// turns a posted skeleton frame into a measurement report, plus config and
// health inspection.
package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/banshee-data/kinemetry/internal/config"
	"github.com/banshee-data/kinemetry/internal/ingest"
	"github.com/banshee-data/kinemetry/internal/measure"
	"github.com/banshee-data/kinemetry/internal/monitoring"
	"github.com/banshee-data/kinemetry/internal/units"
	"github.com/banshee-data/kinemetry/internal/version"
)

// ANSI escape codes for request log colouring
const colorReset = "\033[0m"
const colorYellow = "\033[33m"
const colorBoldGreen = "\033[1;32m"
const colorBoldRed = "\033[1;31m"

// maxFrameBody caps the request body for a single frame post.
const maxFrameBody = 1 << 20 // 1MB

// Server serves measurement requests. All state is read-only after
// construction, so handlers are safe for concurrent requests.
type Server struct {
	cfg   *config.TuningConfig
	opts  measure.ReportOptions
	units string
}

// NewServer creates an API server from loaded tuning configuration.
func NewServer(cfg *config.TuningConfig) *Server {
	return &Server{
		cfg:   cfg,
		opts:  cfg.ReportOptions(),
		units: cfg.GetUnits(),
	}
}

// ServeMux returns the route table for the API server.
func (s *Server) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/measure", s.measureHandler)
	mux.HandleFunc("/api/config", s.showConfig)
	mux.HandleFunc("/api/health", s.healthHandler)
	return mux
}

// measureResponse wraps a canonical report (meters) with the height
// converted to the requested display units.
type measureResponse struct {
	Units         string         `json:"units"`
	Height        float64        `json:"height"`
	HeightDisplay string         `json:"height_display"`
	Report        measure.Report `json:"report"`
}

// measureHandler accepts one skeleton frame as JSON and responds with the
// measurement report. The optional ?units= parameter overrides the
// configured display units for this request.
func (s *Server) measureHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	target := s.units
	if u := r.URL.Query().Get("units"); u != "" {
		if !units.IsValid(u) {
			s.writeJSONError(w, http.StatusBadRequest,
				"Invalid 'units' parameter, must be one of: "+units.GetValidUnitsString())
			return
		}
		target = u
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxFrameBody))
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	skeleton, err := ingest.ParseFrame(data)
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "Invalid frame: "+err.Error())
		return
	}

	report := measure.BuildReport(skeleton, s.opts)
	resp := measureResponse{
		Units:         target,
		Height:        units.ConvertLength(report.HeightMeters, target),
		HeightDisplay: units.FormatLength(report.HeightMeters, target),
		Report:        report,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		monitoring.Logf("failed to write measurement response: %v", err)
	}
}

// showConfig reports the effective tuning values.
func (s *Server) showConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	effective := map[string]interface{}{
		"head_divergence_meters": s.cfg.GetHeadDivergenceMeters(),
		"min_tracked_joints":     s.cfg.GetMinTrackedJoints(),
		"units":                  s.cfg.GetUnits(),
		"udp_receive_buffer":     s.cfg.GetUDPReceiveBuffer(),
		"stats_log_interval":     s.cfg.GetStatsLogInterval().String(),
	}
	if err := json.NewEncoder(w).Encode(effective); err != nil {
		s.writeJSONError(w, http.StatusInternalServerError, "Failed to write config")
	}
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"version": version.String(),
	})
}

func (s *Server) writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Flush() {
	if flusher, ok := lrw.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func statusCodeColor(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return colorBoldGreen + strconv.Itoa(statusCode) + colorReset
	case statusCode >= 300 && statusCode < 400:
		return colorYellow + strconv.Itoa(statusCode) + colorReset
	case statusCode >= 400:
		return colorBoldRed + strconv.Itoa(statusCode) + colorReset
	default:
		return strconv.Itoa(statusCode)
	}
}

// LoggingMiddleware logs method, path, status, and duration
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{w, http.StatusOK}
		next.ServeHTTP(lrw, r)
		monitoring.Logf(
			"[%s] %s %s %vms",
			statusCodeColor(lrw.statusCode), r.Method, r.URL.Path,
			time.Since(start).Milliseconds(),
		)
	})
}

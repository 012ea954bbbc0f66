package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/sumwatshade/weathersynth/cmd/params"
	"github.com/sumwatshade/weathersynth/cmd/weather"
)

// Server serves the current series. The series and its summary are always
// replaced together under mu.
type Server struct {
	svc        weather.Service
	defaults   weather.Params
	exportName string
	logger     *slog.Logger
	metrics    *Metrics

	mu      sync.RWMutex
	series  weather.Series
	summary weather.Summary
}

// NewServer generates the initial series from defaults.
func NewServer(svc weather.Service, defaults weather.Params, exportName string, logger *slog.Logger, metrics *Metrics) (*Server, error) {
	s := &Server{
		svc:        svc,
		defaults:   defaults,
		exportName: exportName,
		logger:     logger,
		metrics:    metrics,
	}
	if err := s.regenerate(defaults); err != nil {
		return nil, err
	}
	return s, nil
}

// RegisterRoutes registers all API routes.
func (s *Server) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/series", s.instrument("/api/series", s.GetSeries)).Methods(http.MethodGet)
	router.HandleFunc("/api/series.csv", s.instrument("/api/series.csv", s.GetCSV)).Methods(http.MethodGet)
	router.HandleFunc("/api/series.tsv", s.instrument("/api/series.tsv", s.GetTSV)).Methods(http.MethodGet)
	router.HandleFunc("/api/summary", s.instrument("/api/summary", s.GetSummary)).Methods(http.MethodGet)
	router.HandleFunc("/api/series/regenerate", s.instrument("/api/series/regenerate", s.Regenerate)).Methods(http.MethodPost)
	router.HandleFunc("/api/series/vpd", s.instrument("/api/series/vpd", s.RecalculateVPD)).Methods(http.MethodPost)
	router.HandleFunc("/api/vpd-bands", s.instrument("/api/vpd-bands", s.GetVPDBands)).Methods(http.MethodGet)
	router.HandleFunc("/health", s.HealthCheck).Methods(http.MethodGet)
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// RecordResponse is one day with every field at display precision.
type RecordResponse struct {
	Date     string `json:"date"`
	TempMin  string `json:"temp_min"`
	TempMax  string `json:"temp_max"`
	TempAvg  string `json:"temp_avg"`
	Humidity string `json:"humidity"`
	VPD      string `json:"vpd"`
	VPDBand  string `json:"vpd_band"`
	PAR      int    `json:"par"`
	SolarRad int    `json:"solar_rad"`
	Pressure string `json:"pressure"`
	Wind     string `json:"wind"`
}

// SummaryResponse carries the series means.
type SummaryResponse struct {
	AvgTemp     float64 `json:"avg_temp"`
	AvgHumidity float64 `json:"avg_humidity"`
	AvgVPD      float64 `json:"avg_vpd"`
	AvgPAR      int     `json:"avg_par"`
}

// SeriesResponse is the full current series.
type SeriesResponse struct {
	ID          string           `json:"id"`
	Start       string           `json:"start"`
	End         string           `json:"end"`
	Period      string           `json:"period"`
	GeneratedAt time.Time        `json:"generated_at"`
	Records     []RecordResponse `json:"records"`
	Summary     SummaryResponse  `json:"summary"`
}

// VPDBandResponse is one row of the interpretation table.
type VPDBandResponse struct {
	Label       string  `json:"label"`
	Range       string  `json:"range"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max,omitempty"`
	Description string  `json:"description"`
}

// GetSeries handles GET /api/series
func (s *Server) GetSeries(w http.ResponseWriter, r *http.Request) {
	s.sendJSON(w, s.snapshot(), http.StatusOK)
}

// GetSummary handles GET /api/summary
func (s *Server) GetSummary(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	sum := toSummaryResponse(s.summary)
	s.mu.RUnlock()
	s.sendJSON(w, sum, http.StatusOK)
}

// GetCSV handles GET /api/series.csv
func (s *Server) GetCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", s.exportName))
	s.sendDelimited(w, r, weather.Comma, "text/csv; charset=utf-8", "csv")
}

// GetTSV handles GET /api/series.tsv
func (s *Server) GetTSV(w http.ResponseWriter, r *http.Request) {
	s.sendDelimited(w, r, weather.Tab, "text/tab-separated-values; charset=utf-8", "tsv")
}

// Regenerate handles POST /api/series/regenerate. Optional query parameters
// start (YYYY-MM-DD), days and seed override the configured window; without
// a seed every call draws fresh numbers.
func (s *Server) Regenerate(w http.ResponseWriter, r *http.Request) {
	p := weather.Params{Start: s.defaults.Start, Days: s.defaults.Days}
	q := r.URL.Query()

	if v := q.Get("start"); v != "" {
		start, err := params.ParseStart(v)
		if err != nil {
			s.sendError(w, err.Error(), http.StatusBadRequest)
			return
		}
		p.Start = start
	}
	if v := q.Get("days"); v != "" {
		days, err := params.ParseDays(v)
		if err != nil {
			s.sendError(w, err.Error(), http.StatusBadRequest)
			return
		}
		p.Days = days
	}
	if v := q.Get("seed"); v != "" {
		seed, err := params.ParseSeed(v)
		if err != nil {
			s.sendError(w, err.Error(), http.StatusBadRequest)
			return
		}
		p.Seed = seed
	}

	if err := s.regenerate(p); err != nil {
		s.logger.Error("regenerate failed", "err", err)
		s.sendError(w, "failed to generate series", http.StatusInternalServerError)
		return
	}
	s.sendJSON(w, s.snapshot(), http.StatusOK)
}

// RecalculateVPD handles POST /api/series/vpd
func (s *Server) RecalculateVPD(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	series := weather.RecomputeVPD(s.series)
	sum, err := weather.Summarize(series)
	if err != nil {
		s.mu.Unlock()
		s.sendError(w, err.Error(), http.StatusConflict)
		return
	}
	s.series, s.summary = series, sum
	s.mu.Unlock()

	s.metrics.VPDRecomputed.Inc()
	s.logger.Info("vpd recomputed", "series_id", series.ID, "avg_vpd", sum.AvgVPD.StringFixed(3))
	s.sendJSON(w, s.snapshot(), http.StatusOK)
}

// GetVPDBands handles GET /api/vpd-bands
func (s *Server) GetVPDBands(w http.ResponseWriter, r *http.Request) {
	bands := weather.VPDBands()
	out := make([]VPDBandResponse, 0, len(bands))
	for _, b := range bands {
		out = append(out, VPDBandResponse{
			Label:       b.Label,
			Range:       b.Range(),
			Min:         b.Min,
			Max:         b.Max,
			Description: b.Description,
		})
	}
	s.sendJSON(w, out, http.StatusOK)
}

// HealthCheck handles GET /health
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	days := s.series.Len()
	s.mu.RUnlock()
	s.sendJSON(w, map[string]any{"status": "ok", "days": days}, http.StatusOK)
}

func (s *Server) regenerate(p weather.Params) error {
	series, err := s.svc.Generate(p)
	if err != nil {
		return err
	}
	sum, err := weather.Summarize(series)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.series, s.summary = series, sum
	s.mu.Unlock()

	s.metrics.SeriesGenerated.Inc()
	s.logger.Info("series generated",
		"series_id", series.ID,
		"start", series.Start.Format(time.DateOnly),
		"days", series.Len(),
		"seed", p.Seed,
	)
	return nil
}

func (s *Server) snapshot() SeriesResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]RecordResponse, 0, s.series.Len())
	for _, rec := range s.series.Records {
		records = append(records, toRecordResponse(rec))
	}
	return SeriesResponse{
		ID:          s.series.ID,
		Start:       s.series.Start.Format(params.InputLayout),
		End:         s.series.End().Format(params.InputLayout),
		Period:      s.series.Period(),
		GeneratedAt: s.series.GeneratedAt,
		Records:     records,
		Summary:     toSummaryResponse(s.summary),
	}
}

func (s *Server) sendDelimited(w http.ResponseWriter, r *http.Request, d weather.Delimiter, contentType, format string) {
	s.mu.RLock()
	body := weather.Serialize(s.series, d)
	s.mu.RUnlock()

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		s.logger.Warn("export write failed", "format", format, "err", err)
		return
	}
	s.metrics.ExportsTotal.WithLabelValues(format).Inc()
}

// instrument records the request duration under route and logs the outcome.
func (s *Server) instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		startTime := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next(rec, r)

		duration := time.Since(startTime)
		s.metrics.APIRequestDuration.WithLabelValues(route).Observe(duration.Seconds())
		s.logger.Debug("http request",
			"method", r.Method,
			"route", route,
			"status", rec.status,
			"duration", duration,
		)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// sendJSON sends a JSON response
func (s *Server) sendJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("encode response", "err", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(w http.ResponseWriter, message string, statusCode int) {
	s.sendJSON(w, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    statusCode,
	}, statusCode)
}

func toRecordResponse(r weather.Record) RecordResponse {
	f := r.Fields()
	return RecordResponse{
		Date:     f[0],
		TempMin:  f[1],
		TempMax:  f[2],
		TempAvg:  f[3],
		Humidity: f[4],
		VPD:      f[5],
		VPDBand:  weather.ClassifyVPD(r.VPD.InexactFloat64()).Label,
		PAR:      r.PAR,
		SolarRad: r.SolarRad,
		Pressure: f[8],
		Wind:     f[9],
	}
}

func toSummaryResponse(s weather.Summary) SummaryResponse {
	return SummaryResponse{
		AvgTemp:     s.AvgTemp.InexactFloat64(),
		AvgHumidity: s.AvgHumidity.InexactFloat64(),
		AvgVPD:      s.AvgVPD.InexactFloat64(),
		AvgPAR:      s.AvgPAR,
	}
}

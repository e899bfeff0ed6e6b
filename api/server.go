// Package api exposes the extraction engine's snapshot over HTTP. It is a
// thin presentation surface: every decision lives in the extractor; handlers
// only query the snapshot and encode the result.
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/julianunes2703/ipp/extractor"
	"github.com/julianunes2703/ipp/extractor/common"
)

// Config holds the API server configuration
type Config struct {
	Port      string
	LogPrefix string
}

// DefaultConfig returns the default API configuration
func DefaultConfig() Config {
	return Config{
		Port:      ":8080",
		LogPrefix: "API: ",
	}
}

// Server serves the engine's current snapshot
type Server struct {
	config Config
	engine *extractor.Engine
	mux    *http.ServeMux
}

// New creates a new API server around an engine
func New(cfg Config, engine *extractor.Engine) *Server {
	s := &Server{
		config: cfg,
		engine: engine,
		mux:    http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/rows", s.handleRows)
	s.mux.HandleFunc("/months", s.handleMonths)
	s.mux.HandleFunc("/value", s.handleValue)
	s.mux.HandleFunc("/find", s.handleFind)
	s.mux.HandleFunc("/debug", s.handleDebug)
	s.mux.HandleFunc("/refresh", s.handleRefresh)
}

// Handler returns the http.Handler for the server
// This allows the server to be used with custom http.Server configurations
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the HTTP server (blocking)
func (s *Server) Start() error {
	log.Printf("%sStarting server on %s", s.config.LogPrefix, s.config.Port)
	return http.ListenAndServe(s.config.Port, s.mux)
}

func (s *Server) writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

// handleRows returns the full snapshot: account rows, months and the loading
// flag.
func (s *Server) handleRows(w http.ResponseWriter, r *http.Request) {
	snap := s.engine.Snapshot()
	s.writeJSON(w, map[string]interface{}{
		"rows":    snap.Rows,
		"months":  snap.Months,
		"loading": s.engine.Loading(),
	})
}

func (s *Server) handleMonths(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.engine.Snapshot().Months)
}

// handleValue answers /value?key=ebitda&month=jan with the numeric value;
// absent accounts and months resolve to zero, matching the engine's
// availability-over-errors contract.
func (s *Server) handleValue(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	month := r.URL.Query().Get("month")
	if key == "" || month == "" {
		http.Error(w, "key and month query parameters are required", http.StatusBadRequest)
		return
	}

	value := s.engine.Snapshot().ValueAt(key, common.MonthKey(month))
	s.writeJSON(w, map[string]interface{}{
		"key":   key,
		"month": month,
		"value": value,
	})
}

func (s *Server) handleFind(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "key query parameter is required", http.StatusBadRequest)
		return
	}

	row, found := s.engine.Snapshot().FindRow(key)
	if !found {
		http.Error(w, "no row matches key "+key, http.StatusNotFound)
		return
	}
	s.writeJSON(w, row)
}

// handleDebug answers /debug?keys=a,b,c with a found/not-found report per
// semantic key.
func (s *Server) handleDebug(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("keys")
	if raw == "" {
		http.Error(w, "keys query parameter is required", http.StatusBadRequest)
		return
	}

	s.writeJSON(w, s.engine.Snapshot().DebugKeys(strings.Split(raw, ",")...))
}

// handleRefresh re-runs the fetch-and-extract pipeline. A failed refresh
// still answers 200 with the (now empty) snapshot state plus the error
// message; the engine never serves a partial result.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	err := s.engine.Refresh(r.Context())
	snap := s.engine.Snapshot()
	payload := map[string]interface{}{
		"rows":   len(snap.Rows),
		"months": snap.Months,
	}
	if err != nil {
		log.Printf("%sRefresh failed: %v", s.config.LogPrefix, err)
		payload["error"] = err.Error()
	}
	s.writeJSON(w, payload)
}

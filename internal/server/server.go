package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/goalsim/goalsim/internal/domain"
	"github.com/goalsim/goalsim/internal/simulation"
)

// maxSimulations bounds a single request so one caller cannot pin a core
// for minutes. The engine itself has no timeout semantics; bounding trial
// count is the serving layer's job.
const maxSimulations = 100000

// Server exposes the simulation engine over HTTP.
type Server struct {
	engine *simulation.Engine
}

// New creates a server around the given engine.
func New(engine *simulation.Engine) *Server {
	return &Server{engine: engine}
}

// Router builds the chi router with logging, panic recovery and
// compression middleware.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	r.Get("/api/health", s.handleHealth)
	r.Post("/api/simulate", s.handleSimulate)

	return r
}

// ListenAndServe runs the HTTP server on addr until it fails.
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, s.Router())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// simulateResponse is the wire shape of a successful simulation run.
type simulateResponse struct {
	RunID  string                   `json:"run_id"`
	Result *domain.SimulationResult `json:"result"`
}

// errorResponse is the wire shape of a rejected or failed request.
type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// handleSimulate accepts the plan parameter object as JSON (rates as
// fractions, e.g. 0.07) and returns the complete result. Invalid
// parameters are rejected with a 400 naming the field before any
// simulation cost is paid.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var params domain.PlanParameters
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&params); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body: " + err.Error()})
		return
	}

	if params.NumSimulations > maxSimulations {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "num_simulations exceeds the server limit",
			Field: "num_simulations",
		})
		return
	}

	result, err := s.engine.Run(r.Context(), params)
	if err != nil {
		var ipe *domain.InvalidParameterError
		if errors.As(err, &ipe) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: ipe.Error(), Field: ipe.Field})
			return
		}
		log.Printf("simulation failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "simulation failed"})
		return
	}

	writeJSON(w, http.StatusOK, simulateResponse{
		RunID:  uuid.NewString(),
		Result: result,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

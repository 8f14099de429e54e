package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/clambin/gotools/metrics"
	"github.com/duganc/spinning-switches/simulation"
	log "github.com/sirupsen/logrus"
)

// SummaryReader gives access to the results of a simulation
type SummaryReader interface {
	Summary() simulation.Summary
}

// Server exposes the Prometheus metrics and the current simulation summary over HTTP
type Server struct {
	HTTPServer *metrics.Server
	reader     SummaryReader
}

// New creates a new Server. If port is zero, a free port is allocated.
func New(port int, reader SummaryReader) *Server {
	s := &Server{reader: reader}
	s.HTTPServer = metrics.NewServerWithHandlers(port, []metrics.Handler{
		{
			Path:    "/summary",
			Handler: http.HandlerFunc(s.handleSummary),
			Methods: []string{http.MethodGet},
		},
	})
	return s
}

// Run starts the HTTP server. It returns when the server is shut down.
func (s *Server) Run() error {
	log.WithField("port", s.HTTPServer.Port).Info("server started")
	err := s.HTTPServer.Run()
	if err == http.ErrServerClosed {
		err = nil
	}
	log.Info("server stopped")
	return err
}

// Shutdown stops the HTTP server
func (s *Server) Shutdown() error {
	return s.HTTPServer.Shutdown(30 * time.Second)
}

func (s *Server) handleSummary(w http.ResponseWriter, _ *http.Request) {
	summary := s.reader.Summary()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(summaryResponse{Summary: summary, Mean: summary.Mean()}); err != nil {
		log.WithError(err).Warning("failed to encode summary")
	}
}

type summaryResponse struct {
	simulation.Summary
	Mean float64 `json:"mean"`
}

package server

import (
	"context"
	"net/http"

	"github.com/bagdasarian/taskflow/internal/handler"
	"github.com/rs/zerolog"
)

type Server struct {
	handler *handler.Handler
	server  *http.Server
	log     zerolog.Logger
}

func NewServer(h *handler.Handler, metrics http.Handler, addr string, log zerolog.Logger) *Server {
	mux := http.NewServeMux()
	SetupRoutes(mux, h, metrics)

	return &Server{
		handler: h,
		server: &http.Server{
			Addr:    addr,
			Handler: mux,
		},
		log: log,
	}
}

// Handler exposes the routed mux, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("server starting")
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.log.Info().Msg("server stopped")
	return nil
}

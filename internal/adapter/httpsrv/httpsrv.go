package httpsrv

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type Server struct {
	srv    *http.Server
	router *mux.Router
}

type ServerOptions struct {
	MetricsHandler http.Handler
	MetricsPath    string
}

func NewServer(addr string, opts ServerOptions) *Server {
	router := mux.NewRouter()

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if opts.MetricsPath == "" {
		opts.MetricsPath = "/metrics"
	}

	router.Handle("/health", healthHandler()).Methods(http.MethodGet, http.MethodHead)

	if opts.MetricsHandler != nil {
		router.Handle(opts.MetricsPath, opts.MetricsHandler).Methods(http.MethodGet)
	}

	return &Server{
		srv:    srv,
		router: router,
	}
}

func (s *Server) ListenAddr() string {
	return s.srv.Addr
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	err := s.srv.ListenAndServe()

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

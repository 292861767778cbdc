// Package server provides the HTTP surface for the payoff studio.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"payoff-studio/internal/chart"
	"payoff-studio/internal/config"
	"payoff-studio/internal/logging"
	"payoff-studio/internal/quotes"
	"payoff-studio/internal/store"
)

// Server serves the payoff UI and JSON API.
type Server struct {
	cfg      config.ServerConfig
	chartCfg config.ChartConfig
	provider quotes.Provider
	store    store.StrategyStore // may be nil; strategy routes then 503
	logger   zerolog.Logger
}

// New creates a new server.
func New(cfg config.ServerConfig, chartCfg config.ChartConfig, provider quotes.Provider, st store.StrategyStore, logger zerolog.Logger) *Server {
	if chartCfg.Width <= 0 || chartCfg.Height <= 0 {
		def := chart.DefaultOptions()
		chartCfg = config.ChartConfig{Width: def.Width, Height: def.Height, Padding: def.Padding}
	}
	return &Server{
		cfg:      cfg,
		chartCfg: chartCfg,
		provider: provider,
		store:    st,
		logger:   logger,
	}
}

// Routes builds the HTTP mux.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/quote", s.handleQuote)
	mux.HandleFunc("/api/expirations", s.handleExpirations)
	mux.HandleFunc("/api/payoff", s.handlePayoff)
	mux.HandleFunc("/api/chart.svg", s.handleChartSVG)
	mux.HandleFunc("/api/strategies", s.handleStrategies)
	return s.logRequests(mux)
}

// Start runs the server until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Routes(),
		ReadTimeout:  time.Duration(s.cfg.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(s.cfg.WriteTimeoutSec) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.cfg.Addr).Msg("Server starting")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(logging.WithLogger(r.Context(), s.logger)))
		logging.LogRequest(s.logger, r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

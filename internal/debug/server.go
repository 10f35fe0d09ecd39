// Package debug serves metrics, pprof and a ledger dump on a local port.
package debug

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-farm/internal/defs"
	"go-farm/internal/ledger"
)

// LedgerReader is read from the HTTP goroutine while the game loop mutates
// the ledger, so it must return a consistent copy.
type LedgerReader interface {
	Snapshot() ledger.Snapshot
}

type ledgerResponse struct {
	Money int64            `json:"money"`
	Items map[string]int64 `json:"items"`
}

// NewRouter builds the debug routes.
func NewRouter(gatherer prometheus.Gatherer, storage LedgerReader) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Mount("/debug", middleware.Profiler())
	r.Get("/ledger", func(w http.ResponseWriter, _ *http.Request) {
		snap := storage.Snapshot()
		resp := ledgerResponse{Money: snap.Money, Items: make(map[string]int64)}
		for _, kind := range defs.AllItemKinds {
			for _, crop := range defs.AllCrops {
				item := defs.Item{Kind: kind, Crop: crop}
				resp.Items[item.Name()] = snap.Quantity(item)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	})
	return r
}

// Server runs the debug router in the background.
type Server struct {
	srv    *http.Server
	logger *zap.Logger
}

func NewServer(addr string, handler http.Handler, logger *zap.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Start listens in a goroutine. A failure is logged, the game keeps running.
func (s *Server) Start() {
	go func() {
		s.logger.Info("debug server listening", zap.String("addr", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("debug server stopped", zap.Error(err))
		}
	}()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

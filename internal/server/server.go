// Package server exposes the filter and aggregation pipeline as a small
// JSON API so a web frontend can consume the same views as the TUI.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/jobdeck/jobdeck/internal/dataset"
)

// Provider returns the current cleaned dataset, typically a dataset.Cache
// bound to a source path. It is invoked per request; the cache makes
// repeated calls free while the file is unchanged.
type Provider func(ctx context.Context) (*dataset.Dataset, error)

// Deps carries what the handlers need.
type Deps struct {
	Data Provider
}

// NewMux builds the route table.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	vh := ViewsHandler{Data: d.Data}
	mux.HandleFunc("/api/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: vh.Jobs,
	}))
	mux.HandleFunc("/api/summary", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: vh.Summary,
	}))
	mux.HandleFunc("/api/top", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: vh.Top,
	}))
	mux.HandleFunc("/api/groups", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: vh.Groups,
	}))
	mux.HandleFunc("/api/export.csv", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: vh.ExportCSV,
	}))
	mux.HandleFunc("/healthz", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: vh.Health,
	}))

	return mux
}

// ListenAndServe runs the API until ctx is canceled, then shuts down
// gracefully.
func ListenAndServe(ctx context.Context, addr string, d Deps) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewMux(d),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	slog.Info("serving dashboard API", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

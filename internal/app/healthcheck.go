package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/vk/axisdefaults/internal/schema"
)

// healthHandler reports that the process is alive and its schema loaded.
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK %d attributes\n", len(schema.Axis().Attributes()))
}

// startHealthcheckServer runs the health check HTTP server in the
// background and returns a function that shuts it down.
func (a *App) startHealthcheckServer(ctx context.Context, port int) func() {
	a.logger.Debug("Configuring health check server.")
	mux := http.NewServeMux()
	mux.HandleFunc("/health", a.healthHandler)

	addr := fmt.Sprintf(":%d", port)
	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		a.logger.Info("🩺 Health check server starting", "address", fmt.Sprintf("http://localhost%s/health", addr))
		// ListenAndServe returns ErrServerClosed on graceful shutdown.
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("Health check server failed", "error", err)
		}
	}()

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()

		a.logger.Info("🩺 Shutting down health check server...")
		if err := server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("Health check server shutdown failed", "error", err)
		}
	}
}

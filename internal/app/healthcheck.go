package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// createResponse is the body of GET /create.
type createResponse struct {
	Found  bool   `json:"found"`
	Module string `json:"module,omitempty"`
	Type   string `json:"type,omitempty"`
}

// modulesResponse is the body of GET /modules.
type modulesResponse struct {
	Platform string   `json:"platform"`
	Modules  []string `json:"modules"`
}

// Handler returns the inspection endpoints: /health, /modules and /create.
func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", a.healthHandler)
	mux.HandleFunc("GET /modules", a.modulesHandler)
	mux.HandleFunc("GET /create", a.createHandler)
	return mux
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

func (a *App) modulesHandler(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, modulesResponse{
		Platform: a.platform.Name,
		Modules:  a.manager.Modules(),
	})
}

func (a *App) createHandler(w http.ResponseWriter, r *http.Request) {
	className := r.URL.Query().Get("class")
	interfaceName := r.URL.Query().Get("interface")
	if className == "" || interfaceName == "" {
		http.Error(w, "class and interface query parameters are required", http.StatusBadRequest)
		return
	}

	resp := createResponse{}
	if obj, module, ok := a.manager.Resolve(className, interfaceName); ok {
		resp = createResponse{Found: true, Module: module, Type: fmt.Sprintf("%T", obj)}
	}
	a.logger.Debug("Create endpoint hit.", "class", className, "interface", interfaceName, "found", resp.Found)
	a.writeJSON(w, http.StatusOK, resp)
}

func (a *App) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Warn("Failed to encode response.", "error", err)
	}
}

// healthCheckServer binds the configured port and serves Handler in the
// background.
func (a *App) healthCheckServer() error {
	a.logger.Debug("Configuring health check server.")
	if a.config.HealthcheckPort <= 0 {
		a.logger.Warn("Health check server not started: disabled")
		return nil
	}

	addr := fmt.Sprintf(":%d", a.config.HealthcheckPort)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	a.httpServer = &http.Server{
		Handler:           a.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	a.logger.Info("Health check server starting", "address", fmt.Sprintf("http://localhost%s/health", addr))
	go func() {
		// Serve returns ErrServerClosed on graceful shutdown.
		if err := a.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("Health check server failed unexpectedly", "error", err)
		}
	}()
	return nil
}

func (a *App) closeHealthCheckServer() error {
	if a.httpServer == nil {
		a.logger.Debug("Health check server was not running.")
		return nil
	}

	ctx, cancel := context.WithTimeout(a.ctx, 5*time.Second)
	defer cancel()

	a.logger.Debug("Shutting down health check server...")
	if err := a.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("health check server shutdown failed: %w", err)
	}
	a.httpServer = nil
	return nil
}

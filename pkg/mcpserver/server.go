package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/harun/careerintel/internal/observability"
	"github.com/harun/careerintel/internal/tracing"
	"github.com/harun/careerintel/pkg/auth"
	"github.com/harun/careerintel/pkg/tool"
)

const (
	serverName    = "careerintel"
	serverVersion = "0.1.0"
)

// Server is the long-lived MCP transport endpoint. It speaks streamable HTTP
// on /mcp and the same JSON-RPC messages over WebSocket on /ws; every call is
// authenticated individually, not just at connection setup.
type Server struct {
	host       string
	port       int
	registry   *tool.Registry
	dispatcher *tool.Dispatcher
	validator  *auth.Validator
	logger     zerolog.Logger
	limiter    *CallLimiter
	upgrader   websocket.Upgrader

	server         *http.Server
	isShuttingDown bool
	shutdownMu     sync.RWMutex
	inFlightReqs   sync.WaitGroup
}

// Config holds server configuration.
type Config struct {
	Host        string
	Port        int
	Registry    *tool.Registry
	Dispatcher  *tool.Dispatcher
	Validator   *auth.Validator
	Logger      zerolog.Logger
	MaxInFlight int
}

// NewServer creates a new MCP server.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Port <= 0 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.Registry == nil {
		return nil, fmt.Errorf("tool registry is required")
	}
	if cfg.Dispatcher == nil {
		return nil, fmt.Errorf("dispatcher is required")
	}
	if cfg.Validator == nil {
		return nil, fmt.Errorf("credential validator is required")
	}
	if cfg.Host == "" {
		cfg.Host = "0.0.0.0"
	}
	if cfg.MaxInFlight <= 0 {
		cfg.MaxInFlight = 64
	}

	return &Server{
		host:       cfg.Host,
		port:       cfg.Port,
		registry:   cfg.Registry,
		dispatcher: cfg.Dispatcher,
		validator:  cfg.Validator,
		logger:     cfg.Logger,
		limiter:    NewCallLimiter(cfg.MaxInFlight),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}, nil
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.host, strconv.Itoa(s.port))
}

// Handler returns the HTTP handler serving the MCP endpoints.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/mcp", s.handleMCP)
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	mux.Handle("/metrics", observability.MetricsHandler())
	return mux
}

// Start starts serving in the background.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:    s.Addr(),
		Handler: s.Handler(),
	}

	s.logger.Info().
		Str("addr", s.Addr()).
		Int("tools", s.registry.Count()).
		Msg("Starting MCP server")

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error().Err(err).Msg("MCP server error")
		}
	}()

	return nil
}

// Stop gracefully stops the server, letting in-flight calls finish.
func (s *Server) Stop() error {
	s.shutdownMu.Lock()
	s.isShuttingDown = true
	s.shutdownMu.Unlock()

	s.logger.Info().Msg("Shutting down MCP server")

	done := make(chan struct{})
	go func() {
		s.inFlightReqs.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info().Msg("All in-flight requests completed")
	case <-time.After(30 * time.Second):
		s.logger.Warn().Msg("Shutdown timeout reached, forcing close")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.server != nil {
		if err := s.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	s.logger.Info().Msg("MCP server stopped")
	return nil
}

func (s *Server) shuttingDown() bool {
	s.shutdownMu.RLock()
	defer s.shutdownMu.RUnlock()
	return s.isShuttingDown
}

// handleMCP handles streamable-HTTP MCP requests: one JSON-RPC message per
// POST body.
func (s *Server) handleMCP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.shuttingDown() {
		http.Error(w, "server is shutting down", http.StatusServiceUnavailable)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	req, rpcErr := parseRequest(body)
	if rpcErr != nil {
		writeJSON(w, http.StatusBadRequest, &Response{
			JSONRPC: "2.0",
			Error:   rpcErr,
		})
		return
	}

	traceID := r.Header.Get("X-Trace-Id")
	if traceID == "" {
		traceID = tracing.NewTraceID()
	}
	ctx := tracing.WithTraceID(r.Context(), traceID)

	s.logger.Debug().
		Str("trace_id", traceID).
		Str("method", req.Method).
		Msg("MCP request received")

	s.inFlightReqs.Add(1)
	defer s.inFlightReqs.Done()

	resp := s.route(ctx, bearerToken(r), req)
	if resp == nil {
		// Notifications get no response body.
		w.WriteHeader(http.StatusAccepted)
		return
	}

	status := http.StatusOK
	if resp.Error != nil && resp.Error.Code == AuthRequired {
		status = http.StatusUnauthorized
	}
	writeJSON(w, status, resp)
}

// bearerToken extracts the credential from an Authorization header. A missing
// or malformed header yields the empty string, which fails validation.
func bearerToken(r *http.Request) string {
	const prefix = "Bearer "

	header := r.Header.Get("Authorization")
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):]
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

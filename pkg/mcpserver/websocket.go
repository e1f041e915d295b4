package mcpserver

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/harun/careerintel/internal/tracing"
)

// wsClient is one WebSocket connection. The bearer token presented at upgrade
// is retained and revalidated on every call, matching the per-call
// authentication model of the HTTP endpoint.
type wsClient struct {
	id          string
	conn        *websocket.Conn
	token       string
	connectedAt time.Time

	writeMu sync.Mutex
}

func (c *wsClient) writeJSON(v interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(v)
}

// handleWebSocket upgrades a connection and serves JSON-RPC messages over it.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if s.shuttingDown() {
		http.Error(w, "server is shutting down", http.StatusServiceUnavailable)
		return
	}

	token := bearerToken(r)

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to upgrade connection")
		return
	}

	clientID, _ := gonanoid.New()
	client := &wsClient{
		id:          clientID,
		conn:        conn,
		token:       token,
		connectedAt: time.Now(),
	}

	s.logger.Info().
		Str("clientId", clientID).
		Str("ip", r.RemoteAddr).
		Msg("WebSocket client connected")

	go s.serveClient(client)
}

func (s *Server) serveClient(client *wsClient) {
	defer func() {
		client.conn.Close()
		s.logger.Info().Str("clientId", client.id).Msg("WebSocket client disconnected")
	}()

	for {
		_, message, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.logger.Error().Err(err).Str("clientId", client.id).Msg("WebSocket error")
			}
			return
		}

		s.handleClientMessage(client, message)
	}
}

func (s *Server) handleClientMessage(client *wsClient, message []byte) {
	req, rpcErr := parseRequest(message)
	if rpcErr != nil {
		if err := client.writeJSON(&Response{JSONRPC: "2.0", Error: rpcErr}); err != nil {
			s.logger.Error().Err(err).Str("clientId", client.id).Msg("Failed to send error response")
		}
		return
	}

	s.inFlightReqs.Add(1)

	// Calls from one connection execute concurrently; no ordering guarantee.
	go func() {
		defer s.inFlightReqs.Done()

		ctx := tracing.WithTraceID(context.Background(), tracing.NewTraceID())

		resp := s.route(ctx, client.token, req)
		if resp == nil {
			return
		}

		if err := client.writeJSON(resp); err != nil {
			s.logger.Error().
				Err(err).
				Str("clientId", client.id).
				Str("method", req.Method).
				Msg("Failed to send response")
		}
	}()
}

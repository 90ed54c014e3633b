package server

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"tchu/communication"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Listen opens the TCP port the remote player connects to.
func Listen(addr string) (net.Listener, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", addr, err)
	}
	return l, nil
}

// Accept waits for one client on l, giving up when ctx is done.
func Accept(ctx context.Context, l net.Listener) (communication.Conn, error) {
	type result struct {
		conn net.Conn
		err  error
	}
	accepted := make(chan result, 1)
	go func() {
		c, err := l.Accept()
		accepted <- result{c, err}
	}()

	select {
	case r := <-accepted:
		if r.err != nil {
			return nil, fmt.Errorf("accepting player: %w", r.err)
		}
		return communication.NewStreamConn(r.conn), nil
	case <-ctx.Done():
		l.Close()
		return nil, ctx.Err()
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketHandler upgrades incoming requests and hands each connection to
// whoever reads Conns.
type WebSocketHandler struct {
	conns  chan communication.Conn
	logger zerolog.Logger
}

func NewWebSocketHandler(logger zerolog.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		conns:  make(chan communication.Conn),
		logger: logger,
	}
}

func (h *WebSocketHandler) Conns() <-chan communication.Conn {
	return h.conns
}

func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already answered the request.
		h.logger.Warn().Err(err).Str("remote", r.RemoteAddr).Msg("websocket upgrade failed")
		return
	}
	h.logger.Info().Str("remote", r.RemoteAddr).Msg("player connected")

	select {
	case h.conns <- communication.NewWebSocketConn(ws):
	case <-r.Context().Done():
		ws.Close()
	}
}

// Package gamemaster hosts a game for a remote player and connects local
// players to a hosted game.
package gamemaster

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"tchu/communication"
	"tchu/communication/client"
	"tchu/communication/server"
	"tchu/engine"
	"tchu/game"
	"tchu/meta"
	"tchu/player"

	"github.com/rs/zerolog"
)

// WebSocketPath is where the websocket transport is served.
const WebSocketPath = "/tchu"

// GameMaster seats a local player as PLAYER_1 and the remote player as
// PLAYER_2, then runs the engine.
type GameMaster struct {
	m      *game.Map
	logger zerolog.Logger
	opts   []engine.Option
}

func NewGameMaster(m *game.Map, logger zerolog.Logger, opts ...engine.Option) *GameMaster {
	return &GameMaster{
		m:      m,
		logger: logger,
		opts:   opts,
	}
}

// Play runs one game against the player behind conn and closes conn when it
// is over.
func (gm *GameMaster) Play(conn communication.Conn, local player.Player) (engine.Result, error) {
	proxy := server.NewRemotePlayerProxy(conn, gm.m, server.WithLogger(gm.logger))
	defer proxy.Close()

	players := map[game.PlayerID]player.Player{
		game.Player1: local,
		game.Player2: proxy,
	}
	opts := append([]engine.Option{engine.WithLogger(gm.logger)}, gm.opts...)
	e := engine.New(players, gm.m, opts...)
	gm.logger.Info().Str("session", e.Session()).Msg("game starting")

	res, err := e.Run()
	if err != nil {
		return res, fmt.Errorf("game %s: %w", e.Session(), err)
	}
	gm.logger.Info().Strs("winners", res.Winners()).Int("turns", res.Turns).Msg("game over")
	return res, nil
}

// ServeTCP waits on l for the remote player and plays one game.
func (gm *GameMaster) ServeTCP(ctx context.Context, l net.Listener, local player.Player) (engine.Result, error) {
	gm.logger.Info().Str("addr", l.Addr().String()).Msg("waiting for a player over tcp")
	conn, err := server.Accept(ctx, l)
	if err != nil {
		return engine.Result{}, err
	}
	return gm.Play(conn, local)
}

// ServeWebSocket serves the websocket upgrade on l and plays one game with
// the first player that connects.
func (gm *GameMaster) ServeWebSocket(ctx context.Context, l net.Listener, local player.Player) (engine.Result, error) {
	h := server.NewWebSocketHandler(gm.logger)
	mux := http.NewServeMux()
	mux.Handle(WebSocketPath, h)
	srv := &http.Server{Handler: mux}

	served := make(chan error, 1)
	go func() {
		served <- srv.Serve(l)
	}()
	defer srv.Close()

	gm.logger.Info().Str("addr", l.Addr().String()).Str("path", WebSocketPath).Msg("waiting for a player over websocket")
	select {
	case conn := <-h.Conns():
		return gm.Play(conn, local)
	case err := <-served:
		if errors.Is(err, http.ErrServerClosed) {
			return engine.Result{}, errors.New("websocket server stopped")
		}
		return engine.Result{}, fmt.Errorf("websocket server stopped: %w", err)
	case <-ctx.Done():
		return engine.Result{}, ctx.Err()
	}
}

// Serve listens on the configured address with the configured transport.
func (gm *GameMaster) Serve(ctx context.Context, cfg meta.Config, local player.Player) (engine.Result, error) {
	l, err := server.Listen(cfg.Addr())
	if err != nil {
		return engine.Result{}, err
	}
	defer l.Close()
	if cfg.Transport == "ws" {
		return gm.ServeWebSocket(ctx, l, local)
	}
	return gm.ServeTCP(ctx, l, local)
}

// Join connects p to the game hosted at the configured address and answers
// until the host hangs up.
func Join(cfg meta.Config, p player.Player, m *game.Map, logger zerolog.Logger) error {
	var (
		conn communication.Conn
		err  error
	)
	if cfg.Transport == "ws" {
		conn, err = client.DialWebSocket("ws://" + cfg.Addr() + WebSocketPath)
	} else {
		conn, err = client.Dial(cfg.Addr())
	}
	if err != nil {
		return err
	}
	defer conn.Close()

	logger.Info().Str("addr", cfg.Addr()).Str("transport", cfg.Transport).Msg("joined game")
	return client.NewRemotePlayerClient(conn, p, m, client.WithLogger(logger)).Run()
}

package client

import (
	"errors"
	"fmt"
	"io"
	"net"

	"tchu/communication"
	"tchu/communication/serde"
	"tchu/game"
	"tchu/player"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// RemotePlayerClient serves a local player to a proxy on the other end of a
// Conn.
type RemotePlayerClient struct {
	conn   communication.Conn
	player player.Player
	serdes *serde.Serdes
	logger zerolog.Logger
}

type Option func(*RemotePlayerClient)

func WithLogger(logger zerolog.Logger) Option {
	return func(c *RemotePlayerClient) {
		c.logger = logger
	}
}

func NewRemotePlayerClient(conn communication.Conn, p player.Player, m *game.Map, opts ...Option) *RemotePlayerClient {
	c := &RemotePlayerClient{
		conn:   conn,
		player: p,
		serdes: serde.New(m),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dial connects to a proxy over TCP.
func Dial(addr string) (communication.Conn, error) {
	c, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", addr, err)
	}
	return communication.NewStreamConn(c), nil
}

// DialWebSocket connects to a proxy served behind a websocket handler.
func DialWebSocket(url string) (communication.Conn, error) {
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", url, err)
	}
	return communication.NewWebSocketConn(ws), nil
}

// Run answers messages until the proxy hangs up. A clean end of stream is not
// an error.
func (c *RemotePlayerClient) Run() error {
	for {
		line, err := c.conn.ReadLine()
		if errors.Is(err, io.EOF) {
			c.logger.Debug().Msg("proxy closed the connection")
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading message: %w", err)
		}
		id, args, err := communication.ParseMessage(line)
		if err != nil {
			return err
		}
		c.logger.Trace().Stringer("message", id).Msg("received")

		answer, err := c.dispatch(id, args)
		if err != nil {
			return fmt.Errorf("handling %s: %w", id, err)
		}
		if id.HasResponse() {
			if err := c.conn.WriteLine(answer); err != nil {
				return fmt.Errorf("answering %s: %w", id, err)
			}
		}
	}
}

func (c *RemotePlayerClient) dispatch(id communication.MessageID, args []string) (string, error) {
	s := c.serdes
	switch id {
	case communication.InitPlayers:
		own, err := s.PlayerID.Deserialize(args[0])
		if err != nil {
			return "", err
		}
		list, err := s.ListOfString.Deserialize(args[1])
		if err != nil {
			return "", err
		}
		if len(list) != len(game.PlayerIDs) {
			return "", fmt.Errorf("%w: expected %d names, got %d", communication.ErrFraming, len(game.PlayerIDs), len(list))
		}
		names := make(map[game.PlayerID]string, len(list))
		for i, pid := range game.PlayerIDs {
			names[pid] = list[i]
		}
		return "", c.player.InitPlayers(own, names)

	case communication.ReceiveInfo:
		info, err := s.String.Deserialize(args[0])
		if err != nil {
			return "", err
		}
		return "", c.player.ReceiveInfo(info)

	case communication.UpdateState:
		state, err := s.PublicGameState.Deserialize(args[0])
		if err != nil {
			return "", err
		}
		own, err := s.PlayerState.Deserialize(args[1])
		if err != nil {
			return "", err
		}
		return "", c.player.UpdateState(state, own)

	case communication.SetInitialTickets:
		tickets, err := s.BagOfTicket.Deserialize(args[0])
		if err != nil {
			return "", err
		}
		return "", c.player.SetInitialTicketChoice(tickets)

	case communication.ChooseInitialTickets:
		return answer(s.BagOfTicket)(c.player.ChooseInitialTickets())

	case communication.NextTurn:
		return answer(s.TurnKind)(c.player.NextTurn())

	case communication.ChooseTickets:
		options, err := s.BagOfTicket.Deserialize(args[0])
		if err != nil {
			return "", err
		}
		return answer(s.BagOfTicket)(c.player.ChooseTickets(options))

	case communication.DrawSlot:
		return answer(s.Int)(c.player.DrawSlot())

	case communication.Route:
		return answer(s.Route)(c.player.ClaimedRoute())

	case communication.Cards:
		return answer(s.BagOfCard)(c.player.InitialClaimCards())

	case communication.ChooseAdditionalCards:
		options, err := s.ListOfCardBags.Deserialize(args[0])
		if err != nil {
			return "", err
		}
		return answer(s.BagOfCard)(c.player.ChooseAdditionalCards(options))

	case communication.SendName:
		return answer(s.String)(c.player.Name())

	case communication.DestroyRoute:
		return answer(s.Route)(c.player.DestroyedRoute())
	}
	return "", fmt.Errorf("%w: unhandled message %s", communication.ErrFraming, id)
}

// answer serializes the result of a player call unless it failed. An answer
// the codec cannot encode, such as a route of another map, is an error.
func answer[T any](s serde.Serde[T]) func(T, error) (string, error) {
	return func(v T, err error) (string, error) {
		if err != nil {
			return "", err
		}
		return serde.TrySerialize(s, v)
	}
}

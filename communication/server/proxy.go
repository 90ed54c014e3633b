package server

import (
	"fmt"
	"sync"

	"tchu/communication"
	"tchu/communication/serde"
	"tchu/game"
	"tchu/player"

	"github.com/rs/zerolog"
)

// RemotePlayerProxy stands in for a player on the far end of a Conn. Every
// call writes one message and, for the calls that return a value, blocks
// until the single response line arrives.
type RemotePlayerProxy struct {
	conn   communication.Conn
	serdes *serde.Serdes
	logger zerolog.Logger
	mutex  sync.Mutex
}

var _ player.Player = (*RemotePlayerProxy)(nil)

type Option func(*RemotePlayerProxy)

func WithLogger(logger zerolog.Logger) Option {
	return func(p *RemotePlayerProxy) {
		p.logger = logger
	}
}

// NewRemotePlayerProxy speaks the protocol over conn. m must be the map the
// engine plays on.
func NewRemotePlayerProxy(conn communication.Conn, m *game.Map, opts ...Option) *RemotePlayerProxy {
	p := &RemotePlayerProxy{
		conn:   conn,
		serdes: serde.New(m),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *RemotePlayerProxy) Close() error {
	return p.conn.Close()
}

func (p *RemotePlayerProxy) send(id communication.MessageID, args ...string) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.write(id, args)
}

func (p *RemotePlayerProxy) write(id communication.MessageID, args []string) error {
	p.logger.Trace().Stringer("message", id).Msg("sending")
	if err := p.conn.WriteLine(communication.FormatMessage(id, args...)); err != nil {
		return fmt.Errorf("sending %s: %w", id, err)
	}
	return nil
}

// call sends a message and decodes the answer with s.
func call[T any](p *RemotePlayerProxy, s serde.Serde[T], id communication.MessageID, args ...string) (T, error) {
	var zero T
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if err := p.write(id, args); err != nil {
		return zero, err
	}
	line, err := p.conn.ReadLine()
	if err != nil {
		return zero, fmt.Errorf("awaiting answer to %s: %w", id, err)
	}
	v, err := s.Deserialize(line)
	if err != nil {
		return zero, fmt.Errorf("answer to %s: %w", id, err)
	}
	return v, nil
}

func (p *RemotePlayerProxy) InitPlayers(own game.PlayerID, names map[game.PlayerID]string) error {
	ordered := make([]string, len(game.PlayerIDs))
	for i, id := range game.PlayerIDs {
		ordered[i] = names[id]
	}
	return p.send(communication.InitPlayers, p.serdes.PlayerID.Serialize(own), p.serdes.ListOfString.Serialize(ordered))
}

func (p *RemotePlayerProxy) ReceiveInfo(info string) error {
	return p.send(communication.ReceiveInfo, p.serdes.String.Serialize(info))
}

func (p *RemotePlayerProxy) UpdateState(state game.PublicGameState, own game.PlayerState) error {
	return p.send(communication.UpdateState, p.serdes.PublicGameState.Serialize(state), p.serdes.PlayerState.Serialize(own))
}

func (p *RemotePlayerProxy) SetInitialTicketChoice(tickets game.Bag[*game.Ticket]) error {
	return p.send(communication.SetInitialTickets, p.serdes.BagOfTicket.Serialize(tickets))
}

func (p *RemotePlayerProxy) ChooseInitialTickets() (game.Bag[*game.Ticket], error) {
	return call(p, p.serdes.BagOfTicket, communication.ChooseInitialTickets)
}

func (p *RemotePlayerProxy) NextTurn() (player.TurnKind, error) {
	return call(p, p.serdes.TurnKind, communication.NextTurn)
}

func (p *RemotePlayerProxy) ChooseTickets(options game.Bag[*game.Ticket]) (game.Bag[*game.Ticket], error) {
	return call(p, p.serdes.BagOfTicket, communication.ChooseTickets, p.serdes.BagOfTicket.Serialize(options))
}

func (p *RemotePlayerProxy) DrawSlot() (int, error) {
	return call(p, p.serdes.Int, communication.DrawSlot)
}

func (p *RemotePlayerProxy) ClaimedRoute() (*game.Route, error) {
	return call(p, p.serdes.Route, communication.Route)
}

func (p *RemotePlayerProxy) InitialClaimCards() (game.Bag[game.Card], error) {
	return call(p, p.serdes.BagOfCard, communication.Cards)
}

func (p *RemotePlayerProxy) ChooseAdditionalCards(options []game.Bag[game.Card]) (game.Bag[game.Card], error) {
	return call(p, p.serdes.BagOfCard, communication.ChooseAdditionalCards, p.serdes.ListOfCardBags.Serialize(options))
}

func (p *RemotePlayerProxy) Name() (string, error) {
	return call(p, p.serdes.String, communication.SendName)
}

func (p *RemotePlayerProxy) DestroyedRoute() (*game.Route, error) {
	return call(p, p.serdes.Route, communication.DestroyRoute)
}

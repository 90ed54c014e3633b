package serde

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"tchu/communication"
	"tchu/game"
	"tchu/player"
)

const (
	listSep   = ","
	recordSep = ";"
	stateSep  = ":"
)

// Serdes holds the codecs of every value sent over the wire. Routes and
// tickets are sent as their index in the map both ends share.
type Serdes struct {
	Int               Serde[int]
	String            Serde[string]
	PlayerID          Serde[game.PlayerID]
	TurnKind          Serde[player.TurnKind]
	Card              Serde[game.Card]
	Route             Serde[*game.Route]
	Ticket            Serde[*game.Ticket]
	ListOfString      Serde[[]string]
	ListOfCard        Serde[[]game.Card]
	ListOfRoute       Serde[[]*game.Route]
	BagOfCard         Serde[game.Bag[game.Card]]
	BagOfTicket       Serde[game.Bag[*game.Ticket]]
	ListOfCardBags    Serde[[]game.Bag[game.Card]]
	PublicCardState   Serde[game.PublicCardState]
	PublicPlayerState Serde[game.PublicPlayerState]
	PlayerState       Serde[game.PlayerState]
	PublicGameState   Serde[game.PublicGameState]
}

func New(m *game.Map) *Serdes {
	s := &Serdes{}
	s.Int = Of(strconv.Itoa, func(text string) (int, error) {
		n, err := strconv.Atoi(text)
		if err != nil {
			return 0, fmt.Errorf("%w: not an integer %q", communication.ErrFraming, text)
		}
		return n, nil
	})
	s.String = Of(
		func(v string) string { return base64.StdEncoding.EncodeToString([]byte(v)) },
		func(text string) (string, error) {
			b, err := base64.StdEncoding.DecodeString(text)
			if err != nil {
				return "", fmt.Errorf("%w: bad base64 %q: %v", communication.ErrFraming, text, err)
			}
			return string(b), nil
		},
	)
	s.PlayerID = OneOf(game.PlayerIDs)
	s.TurnKind = OneOf(player.TurnKinds)
	s.Card = OneOf(game.Cards)
	s.Route = OneOf(m.Routes)
	s.Ticket = OneOf(m.Tickets)

	s.ListOfString = ListOf(s.String, listSep)
	s.ListOfCard = ListOf(s.Card, listSep)
	s.ListOfRoute = ListOf(s.Route, listSep)
	s.BagOfCard = BagOf(s.Card, listSep)
	s.BagOfTicket = BagOf(s.Ticket, listSep)
	s.ListOfCardBags = ListOf(s.BagOfCard, recordSep)

	s.PublicCardState = Of(s.serializePublicCardState, s.deserializePublicCardState)
	s.PublicPlayerState = Of(s.serializePublicPlayerState, s.deserializePublicPlayerState)
	s.PlayerState = Of(s.serializePlayerState, s.deserializePlayerState)
	s.PublicGameState = Of(s.serializePublicGameState, s.deserializePublicGameState)
	return s
}

func (s *Serdes) serializePublicCardState(cs game.PublicCardState) string {
	return strings.Join([]string{
		s.ListOfCard.Serialize(cs.FaceUpCards()),
		s.Int.Serialize(cs.DeckSize()),
		s.Int.Serialize(cs.DiscardsSize()),
	}, recordSep)
}

func (s *Serdes) deserializePublicCardState(text string) (game.PublicCardState, error) {
	f, err := fields(text, recordSep, 3)
	if err != nil {
		return game.PublicCardState{}, err
	}
	faceUp, err := s.ListOfCard.Deserialize(f[0])
	if err != nil {
		return game.PublicCardState{}, err
	}
	deckSize, err := s.Int.Deserialize(f[1])
	if err != nil {
		return game.PublicCardState{}, err
	}
	discardsSize, err := s.Int.Deserialize(f[2])
	if err != nil {
		return game.PublicCardState{}, err
	}
	cs, err := game.NewPublicCardState(faceUp, deckSize, discardsSize)
	if err != nil {
		return game.PublicCardState{}, fmt.Errorf("%w: %v", communication.ErrFraming, err)
	}
	return cs, nil
}

func (s *Serdes) serializePublicPlayerState(ps game.PublicPlayerState) string {
	return strings.Join([]string{
		s.Int.Serialize(ps.TicketCount()),
		s.Int.Serialize(ps.CardCount()),
		s.ListOfRoute.Serialize(ps.Routes()),
	}, recordSep)
}

func (s *Serdes) deserializePublicPlayerState(text string) (game.PublicPlayerState, error) {
	f, err := fields(text, recordSep, 3)
	if err != nil {
		return game.PublicPlayerState{}, err
	}
	tickets, err := s.Int.Deserialize(f[0])
	if err != nil {
		return game.PublicPlayerState{}, err
	}
	cards, err := s.Int.Deserialize(f[1])
	if err != nil {
		return game.PublicPlayerState{}, err
	}
	routes, err := s.ListOfRoute.Deserialize(f[2])
	if err != nil {
		return game.PublicPlayerState{}, err
	}
	ps, err := game.NewPublicPlayerState(tickets, cards, routes)
	if err != nil {
		return game.PublicPlayerState{}, fmt.Errorf("%w: %v", communication.ErrFraming, err)
	}
	return ps, nil
}

func (s *Serdes) serializePlayerState(ps game.PlayerState) string {
	return strings.Join([]string{
		s.BagOfTicket.Serialize(ps.Tickets()),
		s.BagOfCard.Serialize(ps.Cards()),
		s.ListOfRoute.Serialize(ps.Routes()),
	}, recordSep)
}

func (s *Serdes) deserializePlayerState(text string) (game.PlayerState, error) {
	f, err := fields(text, recordSep, 3)
	if err != nil {
		return game.PlayerState{}, err
	}
	tickets, err := s.BagOfTicket.Deserialize(f[0])
	if err != nil {
		return game.PlayerState{}, err
	}
	cards, err := s.BagOfCard.Deserialize(f[1])
	if err != nil {
		return game.PlayerState{}, err
	}
	routes, err := s.ListOfRoute.Deserialize(f[2])
	if err != nil {
		return game.PlayerState{}, err
	}
	return game.NewPlayerState(tickets, cards, routes), nil
}

// The last field is empty while the final round has not started.
func (s *Serdes) serializePublicGameState(gs game.PublicGameState) string {
	last := ""
	if id, ok := gs.LastPlayer(); ok {
		last = s.PlayerID.Serialize(id)
	}
	return strings.Join([]string{
		s.Int.Serialize(gs.TicketsCount()),
		s.PublicCardState.Serialize(gs.CardState()),
		s.PlayerID.Serialize(gs.CurrentPlayerID()),
		s.PublicPlayerState.Serialize(gs.PublicPlayerState(game.Player1)),
		s.PublicPlayerState.Serialize(gs.PublicPlayerState(game.Player2)),
		last,
	}, stateSep)
}

func (s *Serdes) deserializePublicGameState(text string) (game.PublicGameState, error) {
	f, err := fields(text, stateSep, 6)
	if err != nil {
		return game.PublicGameState{}, err
	}
	tickets, err := s.Int.Deserialize(f[0])
	if err != nil {
		return game.PublicGameState{}, err
	}
	cards, err := s.PublicCardState.Deserialize(f[1])
	if err != nil {
		return game.PublicGameState{}, err
	}
	current, err := s.PlayerID.Deserialize(f[2])
	if err != nil {
		return game.PublicGameState{}, err
	}
	states := make(map[game.PlayerID]game.PublicPlayerState, len(game.PlayerIDs))
	for i, id := range game.PlayerIDs {
		if states[id], err = s.PublicPlayerState.Deserialize(f[3+i]); err != nil {
			return game.PublicGameState{}, err
		}
	}
	var last *game.PlayerID
	if f[5] != "" {
		id, err := s.PlayerID.Deserialize(f[5])
		if err != nil {
			return game.PublicGameState{}, err
		}
		last = &id
	}
	gs, err := game.NewPublicGameState(tickets, cards, current, states, last)
	if err != nil {
		return game.PublicGameState{}, fmt.Errorf("%w: %v", communication.ErrFraming, err)
	}
	return gs, nil
}

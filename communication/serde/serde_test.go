package serde

import (
	"testing"

	"tchu/communication"
	"tchu/game"
	"tchu/player"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestPrimitives(t *testing.T) {
	s := New(game.CreateMap())

	t.Run("int", func(t *testing.T) {
		require.Equal(t, "-1", s.Int.Serialize(-1), "Negative slot for the pile")
		n, err := s.Int.Deserialize("42")
		require.NoError(t, err)
		require.Equal(t, 42, n)
		_, err = s.Int.Deserialize("4x")
		require.ErrorIs(t, err, communication.ErrFraming)
	})

	t.Run("string is base64", func(t *testing.T) {
		require.Equal(t, "Q2hhcmxlcw==", s.String.Serialize("Charles"))
		name, err := s.String.Deserialize("Q2hhcmxlcw==")
		require.NoError(t, err)
		require.Equal(t, "Charles", name)
		_, err = s.String.Deserialize("not base64!")
		require.ErrorIs(t, err, communication.ErrFraming)
	})

	t.Run("string with separators", func(t *testing.T) {
		text := "a;b:c,d e\nf"
		encoded := s.String.Serialize(text)
		require.NotContains(t, encoded, ";")
		require.NotContains(t, encoded, ":")
		require.NotContains(t, encoded, ",")
		require.NotContains(t, encoded, " ")
		require.NotContains(t, encoded, "\n")
		decoded, err := s.String.Deserialize(encoded)
		require.NoError(t, err)
		require.Equal(t, text, decoded)

		names := []string{text, "x, y", ":;"}
		list, err := s.ListOfString.Deserialize(s.ListOfString.Serialize(names))
		require.NoError(t, err)
		require.Equal(t, names, list)
	})

	t.Run("enums are indexes", func(t *testing.T) {
		require.Equal(t, "1", s.PlayerID.Serialize(game.Player2))
		require.Equal(t, "2", s.TurnKind.Serialize(player.ClaimRoute))
		require.Equal(t, "8", s.Card.Serialize(game.Locomotive))
		card, err := s.Card.Deserialize("9")
		require.NoError(t, err)
		require.Equal(t, game.Bomb, card)
		_, err = s.Card.Deserialize("10")
		require.ErrorIs(t, err, communication.ErrFraming, "Index past the end")
		_, err = s.TurnKind.Deserialize("-1")
		require.ErrorIs(t, err, communication.ErrFraming, "Negative index")
	})
}

func TestMapBoundSerdes(t *testing.T) {
	m := game.CreateMap()
	s := New(m)

	t.Run("route", func(t *testing.T) {
		require.Equal(t, "0", s.Route.Serialize(m.Routes[0]))
		r, err := s.Route.Deserialize("3")
		require.NoError(t, err)
		require.Same(t, m.Routes[3], r, "Routes decode to the shared map instance")
	})

	t.Run("ticket", func(t *testing.T) {
		last := len(m.Tickets) - 1
		tk, err := s.Ticket.Deserialize(s.Ticket.Serialize(m.Tickets[last]))
		require.NoError(t, err)
		require.Same(t, m.Tickets[last], tk)
	})

	t.Run("route from another map panics", func(t *testing.T) {
		other := game.CreateMap()
		require.Panics(t, func() { s.Route.Serialize(other.Routes[0]) })
	})

	t.Run("try serialize", func(t *testing.T) {
		text, err := TrySerialize(s.Route, m.Routes[4])
		require.NoError(t, err)
		require.Equal(t, "4", text)

		_, err = TrySerialize(s.Route, game.CreateMap().Routes[0])
		require.ErrorIs(t, err, ErrUnknownValue, "Route of another map")
		_, err = TrySerialize(s.Route, nil)
		require.ErrorIs(t, err, ErrUnknownValue, "No route")
	})
}

func TestCollections(t *testing.T) {
	m := game.CreateMap()
	s := New(m)

	t.Run("list of strings", func(t *testing.T) {
		text := s.ListOfString.Serialize([]string{"Ada", "Charles"})
		require.Equal(t, "QWRh,Q2hhcmxlcw==", text)
		names, err := s.ListOfString.Deserialize(text)
		require.NoError(t, err)
		require.Equal(t, []string{"Ada", "Charles"}, names)
	})

	t.Run("empty list", func(t *testing.T) {
		require.Equal(t, "", s.ListOfRoute.Serialize(nil))
		routes, err := s.ListOfRoute.Deserialize("")
		require.NoError(t, err)
		require.Empty(t, routes)
	})

	t.Run("bag is sorted", func(t *testing.T) {
		bag := game.BagOf(game.Locomotive, game.BlackCard, game.Locomotive)
		require.Equal(t, "0,8,8", s.BagOfCard.Serialize(bag))
		decoded, err := s.BagOfCard.Deserialize("8,0,8")
		require.NoError(t, err)
		require.True(t, bag.Equal(decoded), "Order on the wire does not matter")
	})

	t.Run("list of bags", func(t *testing.T) {
		options := []game.Bag[game.Card]{
			game.BagOfN(2, game.RedCard),
			game.BagOf(game.RedCard, game.Locomotive),
		}
		text := s.ListOfCardBags.Serialize(options)
		require.Equal(t, "6,6;6,8", text)
		decoded, err := s.ListOfCardBags.Deserialize(text)
		require.NoError(t, err)
		require.Len(t, decoded, 2)
		for i := range options {
			require.True(t, options[i].Equal(decoded[i]), "Option %d", i)
		}
	})

	t.Run("bad element", func(t *testing.T) {
		_, err := s.ListOfCard.Deserialize("1,x")
		require.ErrorIs(t, err, communication.ErrFraming)
	})
}

func TestStates(t *testing.T) {
	m := game.CreateMap()
	s := New(m)
	gs, err := game.InitialGameState(m.AllTickets(), rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	t.Run("public card state", func(t *testing.T) {
		cs := gs.CardState()
		text := s.PublicCardState.Serialize(cs)
		decoded, err := s.PublicCardState.Deserialize(text)
		require.NoError(t, err)
		require.Equal(t, cs.FaceUpCards(), decoded.FaceUpCards())
		require.Equal(t, cs.DeckSize(), decoded.DeckSize())
		require.Equal(t, cs.DiscardsSize(), decoded.DiscardsSize())

		_, err = s.PublicCardState.Deserialize("0,1,2,3,4;10")
		require.ErrorIs(t, err, communication.ErrFraming, "Missing field")
		_, err = s.PublicCardState.Deserialize("0,1,2;10;0")
		require.ErrorIs(t, err, communication.ErrFraming, "Too few face-up cards")
	})

	t.Run("public player state", func(t *testing.T) {
		ps, err := game.NewPublicPlayerState(3, 7, []*game.Route{m.Routes[0], m.Routes[5]})
		require.NoError(t, err)
		text := s.PublicPlayerState.Serialize(ps)
		require.Equal(t, "3;7;0,5", text)
		decoded, err := s.PublicPlayerState.Deserialize(text)
		require.NoError(t, err)
		require.Equal(t, ps.CarCount(), decoded.CarCount())
		require.Equal(t, ps.ClaimPoints(), decoded.ClaimPoints())
	})

	t.Run("player state", func(t *testing.T) {
		ps := game.NewPlayerState(
			game.BagOf(m.Tickets[1], m.Tickets[0]),
			game.BagOf(game.Bomb, game.GreenCard),
			nil,
		)
		text := s.PlayerState.Serialize(ps)
		decoded, err := s.PlayerState.Deserialize(text)
		require.NoError(t, err)
		require.True(t, ps.Tickets().Equal(decoded.Tickets()))
		require.True(t, ps.Cards().Equal(decoded.Cards()))
		require.Empty(t, decoded.Routes())
		require.Equal(t, text, s.PlayerState.Serialize(decoded))
	})

	t.Run("public game state", func(t *testing.T) {
		public := gs.Public()
		text := s.PublicGameState.Serialize(public)
		require.Regexp(t, `:$`, text, "No last player yet")
		decoded, err := s.PublicGameState.Deserialize(text)
		require.NoError(t, err)
		require.Equal(t, public.CurrentPlayerID(), decoded.CurrentPlayerID())
		require.Equal(t, public.TicketsCount(), decoded.TicketsCount())
		_, ok := decoded.LastPlayer()
		require.False(t, ok)
		require.Equal(t, text, s.PublicGameState.Serialize(decoded))
	})

	t.Run("public game state with last player", func(t *testing.T) {
		public := gs.Public()
		states := map[game.PlayerID]game.PublicPlayerState{}
		for _, id := range game.PlayerIDs {
			states[id] = public.PublicPlayerState(id)
		}
		last := game.Player1
		withLast, err := game.NewPublicGameState(public.TicketsCount(), public.CardState(), game.Player2, states, &last)
		require.NoError(t, err)

		decoded, err := s.PublicGameState.Deserialize(s.PublicGameState.Serialize(withLast))
		require.NoError(t, err)
		id, ok := decoded.LastPlayer()
		require.True(t, ok)
		require.Equal(t, game.Player1, id)
	})

	t.Run("wrong field count", func(t *testing.T) {
		_, err := s.PublicGameState.Deserialize("30:0,1,2,3,4;10;0:0:0;4;:0;4;")
		require.ErrorIs(t, err, communication.ErrFraming)
	})
}

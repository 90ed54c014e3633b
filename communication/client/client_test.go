package client

import (
	"net"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tchu/communication"
	"tchu/communication/serde"
	"tchu/communication/server"
	"tchu/engine"
	"tchu/game"
	"tchu/player"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// recorder answers with fixed values and remembers what it was told.
type recorder struct {
	own    game.PlayerID
	names  map[game.PlayerID]string
	infos  []string
	state  game.PublicGameState
	hand   game.PlayerState
	route  *game.Route
	chosen []game.Bag[game.Card]
}

func (r *recorder) InitPlayers(own game.PlayerID, names map[game.PlayerID]string) error {
	r.own, r.names = own, names
	return nil
}

func (r *recorder) ReceiveInfo(info string) error {
	r.infos = append(r.infos, info)
	return nil
}

func (r *recorder) UpdateState(state game.PublicGameState, own game.PlayerState) error {
	r.state, r.hand = state, own
	return nil
}

func (r *recorder) SetInitialTicketChoice(game.Bag[*game.Ticket]) error { return nil }

func (r *recorder) ChooseInitialTickets() (game.Bag[*game.Ticket], error) {
	return game.Bag[*game.Ticket]{}, nil
}

func (r *recorder) NextTurn() (player.TurnKind, error) { return player.ClaimRoute, nil }

func (r *recorder) ChooseTickets(options game.Bag[*game.Ticket]) (game.Bag[*game.Ticket], error) {
	return options, nil
}

func (r *recorder) DrawSlot() (int, error)             { return 4, nil }
func (r *recorder) ClaimedRoute() (*game.Route, error) { return r.route, nil }

func (r *recorder) InitialClaimCards() (game.Bag[game.Card], error) {
	return game.BagOfN(2, game.BlueCard), nil
}

func (r *recorder) ChooseAdditionalCards(options []game.Bag[game.Card]) (game.Bag[game.Card], error) {
	r.chosen = options
	return options[len(options)-1], nil
}

func (r *recorder) Name() (string, error)                { return "Ada", nil }
func (r *recorder) DestroyedRoute() (*game.Route, error) { return r.route, nil }

// pipe connects a proxy on serverMap to a client serving p on clientMap.
func pipe(t *testing.T, p player.Player, serverMap, clientMap *game.Map) (*server.RemotePlayerProxy, <-chan error) {
	t.Helper()
	a, b := net.Pipe()
	proxy := server.NewRemotePlayerProxy(communication.NewStreamConn(a), serverMap)
	c := NewRemotePlayerClient(communication.NewStreamConn(b), p, clientMap)
	done := make(chan error, 1)
	go func() { done <- c.Run() }()
	return proxy, done
}

func TestClientDispatch(t *testing.T) {
	m := game.CreateMap()
	rec := &recorder{route: m.Routes[10]}
	proxy, done := pipe(t, rec, m, m)

	require.NoError(t, proxy.InitPlayers(game.Player1, map[game.PlayerID]string{game.Player1: "Ada", game.Player2: "Charles"}))
	require.NoError(t, proxy.ReceiveInfo("Ada will play first."))

	name, err := proxy.Name()
	require.NoError(t, err)
	require.Equal(t, "Ada", name)

	kind, err := proxy.NextTurn()
	require.NoError(t, err)
	require.Equal(t, player.ClaimRoute, kind)

	slot, err := proxy.DrawSlot()
	require.NoError(t, err)
	require.Equal(t, 4, slot)

	r, err := proxy.ClaimedRoute()
	require.NoError(t, err)
	require.Same(t, m.Routes[10], r)

	cards, err := proxy.InitialClaimCards()
	require.NoError(t, err)
	require.True(t, game.BagOfN(2, game.BlueCard).Equal(cards))

	options := []game.Bag[game.Card]{game.BagOf(game.BlueCard), game.BagOf(game.Locomotive)}
	extra, err := proxy.ChooseAdditionalCards(options)
	require.NoError(t, err)
	require.True(t, game.BagOf(game.Locomotive).Equal(extra))

	offered := game.BagOf(m.Tickets[0], m.Tickets[1], m.Tickets[2])
	kept, err := proxy.ChooseTickets(offered)
	require.NoError(t, err)
	require.True(t, offered.Equal(kept))

	require.NoError(t, proxy.Close())
	select {
	case err := <-done:
		require.NoError(t, err, "Hang-up ends the client cleanly")
	case <-time.After(5 * time.Second):
		t.Fatal("client did not stop")
	}

	require.Equal(t, game.Player1, rec.own)
	require.Equal(t, "Charles", rec.names[game.Player2])
	require.Equal(t, []string{"Ada will play first."}, rec.infos)
	require.Len(t, rec.chosen, 2)
}

func TestClientUnencodableAnswer(t *testing.T) {
	clientMap := game.CreateMap()
	cases := map[string]*game.Route{
		"route of another map": game.CreateMap().Routes[0],
		"no route":             nil,
	}
	for name, route := range cases {
		t.Run(name, func(t *testing.T) {
			proxy, done := pipe(t, &recorder{route: route}, clientMap, clientMap)
			defer proxy.Close()

			go func() { _, _ = proxy.ClaimedRoute() }()
			select {
			case err := <-done:
				require.ErrorIs(t, err, serde.ErrUnknownValue, "Connection fails instead of the process")
			case <-time.After(5 * time.Second):
				t.Fatal("client did not stop")
			}
		})
	}
}

func TestClientRejectsBadMessage(t *testing.T) {
	a, b := net.Pipe()
	peer := communication.NewStreamConn(a)
	c := NewRemotePlayerClient(communication.NewStreamConn(b), &recorder{}, game.CreateMap())
	done := make(chan error, 1)
	go func() { done <- c.Run() }()

	require.NoError(t, peer.WriteLine("NEXT_TURN extra"))
	err := <-done
	require.ErrorIs(t, err, communication.ErrFraming)
	peer.Close()
}

func TestRemoteGame(t *testing.T) {
	t.Run("over a pipe", func(t *testing.T) {
		serverMap, clientMap := game.CreateMap(), game.CreateMap()
		remote := player.NewRandomPlayer("Charles", clientMap, rand.New(rand.NewSource(2)))
		proxy, done := pipe(t, remote, serverMap, clientMap)

		playRemoteGame(t, serverMap, proxy, done)
	})

	t.Run("over a websocket", func(t *testing.T) {
		h := server.NewWebSocketHandler(zerolog.Nop())
		srv := httptest.NewServer(h)
		defer srv.Close()

		clientMap := game.CreateMap()
		done := make(chan error, 1)
		go func() {
			conn, err := DialWebSocket("ws" + strings.TrimPrefix(srv.URL, "http"))
			if err != nil {
				done <- err
				return
			}
			defer conn.Close()
			remote := player.NewRandomPlayer("Charles", clientMap, rand.New(rand.NewSource(2)))
			done <- NewRemotePlayerClient(conn, remote, clientMap).Run()
		}()

		serverMap := game.CreateMap()
		var conn communication.Conn
		select {
		case conn = <-h.Conns():
		case <-time.After(5 * time.Second):
			t.Fatal("no websocket connection")
		}
		playRemoteGame(t, serverMap, server.NewRemotePlayerProxy(conn, serverMap), done)
	})
}

func playRemoteGame(t *testing.T, m *game.Map, proxy *server.RemotePlayerProxy, done <-chan error) {
	t.Helper()
	local := player.NewRandomPlayer("Ada", m, rand.New(rand.NewSource(1)))
	e := engine.New(map[game.PlayerID]player.Player{
		game.Player1: local,
		game.Player2: proxy,
	}, m, engine.WithRand(rand.New(rand.NewSource(3))))

	res, err := e.Run()
	require.NoError(t, err)
	require.Equal(t, "Charles", res.Names[game.Player2], "Name travels over the wire")
	require.Equal(t, engine.GameOver, e.Phase())

	require.NoError(t, proxy.Close())
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("client did not stop")
	}
}

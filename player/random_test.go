package player

import (
	"testing"

	"tchu/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func setup(t *testing.T, seed uint64) (*game.Map, *game.GameState, *RandomPlayer) {
	t.Helper()
	m := game.CreateMap()
	rng := rand.New(rand.NewSource(seed))
	gs, err := game.InitialGameState(m.AllTickets(), rng)
	require.NoError(t, err)

	p := NewRandomPlayer("Ada", m, rng)
	id := gs.CurrentPlayerID()
	require.NoError(t, p.InitPlayers(id, map[game.PlayerID]string{id: "Ada", id.Next(): "Charles"}))
	require.NoError(t, p.UpdateState(gs.Public(), gs.PlayerState(id)))
	return m, gs, p
}

func TestRandomPlayerTickets(t *testing.T) {
	_, gs, p := setup(t, 11)
	offered, err := gs.TopTickets(5)
	require.NoError(t, err)

	require.NoError(t, p.SetInitialTicketChoice(offered))
	kept, err := p.ChooseInitialTickets()
	require.NoError(t, err)
	require.GreaterOrEqual(t, kept.Size(), 3, "At least three initial tickets are kept")
	require.True(t, offered.Contains(kept), "Kept tickets come from the offer")

	for i := 0; i < 20; i++ {
		chosen, err := p.ChooseTickets(game.BagOf(offered.Items()[:3]...))
		require.NoError(t, err)
		require.GreaterOrEqual(t, chosen.Size(), 1, "At least one ticket is kept")
	}
}

func TestRandomPlayerTurns(t *testing.T) {
	t.Run("claims are legal", func(t *testing.T) {
		_, gs, p := setup(t, 12)

		for i := 0; i < 50; i++ {
			kind, err := p.NextTurn()
			require.NoError(t, err)
			require.NotEqual(t, DestroyRoute, kind, "Nothing to destroy yet")
			if kind == ClaimRoute {
				route, _ := p.ClaimedRoute()
				cards, _ := p.InitialClaimCards()
				require.True(t, gs.IsClaimable(route))
				require.True(t, gs.CurrentPlayerState().Cards().Contains(cards), "Claim cards are held")
			}
		}
	})

	t.Run("slots are in range", func(t *testing.T) {
		_, _, p := setup(t, 13)

		for i := 0; i < 50; i++ {
			slot, err := p.DrawSlot()
			require.NoError(t, err)
			require.GreaterOrEqual(t, slot, -1)
			require.Less(t, slot, 5)
		}
	})

	t.Run("additional cards come from the options", func(t *testing.T) {
		_, _, p := setup(t, 14)
		options := []game.Bag[game.Card]{game.BagOf(game.RedCard), game.BagOf(game.Locomotive)}

		for i := 0; i < 20; i++ {
			chosen, err := p.ChooseAdditionalCards(options)
			require.NoError(t, err)
			if !chosen.IsEmpty() {
				require.Contains(t, options, chosen)
			}
		}
	})
}

func TestTurnKindString(t *testing.T) {
	require.Equal(t, "CLAIM_ROUTE", ClaimRoute.String())
	require.Equal(t, "UNKNOWN", TurnKind(9).String())
}

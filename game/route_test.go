package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	stationA = Station{ID: 0, Name: "A"}
	stationB = Station{ID: 1, Name: "B"}
	stationC = Station{ID: 2, Name: "C"}
	stationD = Station{ID: 3, Name: "D"}
	stationX = Station{ID: 4, Name: "X"}
	stationY = Station{ID: 5, Name: "Y"}
)

func mustRoute(t *testing.T, id string, s1, s2 Station, length int, level Level, paint Paint) *Route {
	t.Helper()
	r, err := NewRoute(id, s1, s2, length, level, paint)
	require.NoError(t, err)
	return r
}

func TestNewRoute(t *testing.T) {
	_, err := NewRoute("AA", stationA, stationA, 1, Overground, AnyColor())
	require.ErrorIs(t, err, ErrInvalidArgument, "Route cannot loop")

	_, err = NewRoute("AB", stationA, stationB, 7, Overground, AnyColor())
	require.ErrorIs(t, err, ErrInvalidArgument, "Route cannot exceed six")

	r := mustRoute(t, "AB", stationA, stationB, 3, Overground, Painted(Red))
	opposite, err := r.StationOpposite(stationB)
	require.NoError(t, err)
	require.Equal(t, stationA, opposite)
	_, err = r.StationOpposite(stationC)
	require.ErrorIs(t, err, ErrInvalidArgument, "C is not an end")
	require.Equal(t, 4, r.ClaimPoints(), "Length three is worth four points")
}

func TestPossibleClaimCards(t *testing.T) {
	t.Run("overground with a color", func(t *testing.T) {
		r := mustRoute(t, "AB", stationA, stationB, 3, Overground, Painted(Red))

		require.Equal(t, []Bag[Card]{BagOfN(3, RedCard)}, r.PossibleClaimCards())
	})

	t.Run("underground with a color", func(t *testing.T) {
		r := mustRoute(t, "AB", stationA, stationB, 2, Underground, Painted(Red))

		require.Equal(t, []Bag[Card]{
			BagOf(RedCard, RedCard),
			BagOf(RedCard, Locomotive),
			BagOf(Locomotive, Locomotive),
		}, r.PossibleClaimCards())
	})

	t.Run("underground of any color", func(t *testing.T) {
		r := mustRoute(t, "AB", stationA, stationB, 2, Underground, AnyColor())

		claims := r.PossibleClaimCards()

		require.Len(t, claims, 17, "Eight colors with zero or one locomotive, plus all locomotives")
		require.Equal(t, BagOf(BlackCard, BlackCard), claims[0], "Fewest locomotives and smallest color first")
		require.Equal(t, BagOf(BlackCard, Locomotive), claims[8], "One locomotive comes after the plain sets")
		require.Equal(t, BagOf(Locomotive, Locomotive), claims[16], "All locomotives appear once, last")
	})
}

func TestAdditionalClaimCardsCount(t *testing.T) {
	tunnel := mustRoute(t, "AB", stationA, stationB, 2, Underground, Painted(Red))

	n, err := tunnel.AdditionalClaimCardsCount(BagOf(RedCard, RedCard), BagOf(RedCard, Locomotive, BlueCard))
	require.NoError(t, err)
	require.Equal(t, 2, n, "Red and locomotive match")

	n, err = tunnel.AdditionalClaimCardsCount(BagOf(Locomotive, Locomotive), BagOf(RedCard, Locomotive, Locomotive))
	require.NoError(t, err)
	require.Equal(t, 2, n, "Only locomotives match a locomotive claim")

	_, err = tunnel.AdditionalClaimCardsCount(BagOf(RedCard), BagOf(RedCard))
	require.ErrorIs(t, err, ErrInvalidArgument, "Exactly three cards are drawn")

	plain := mustRoute(t, "BC", stationB, stationC, 2, Overground, Painted(Red))
	_, err = plain.AdditionalClaimCardsCount(BagOf(RedCard), BagOf(RedCard, RedCard, RedCard))
	require.ErrorIs(t, err, ErrInvalidArgument, "Only tunnels have extra costs")
}

func TestParallelRoutes(t *testing.T) {
	r1 := mustRoute(t, "AB_1", stationA, stationB, 1, Overground, Painted(Red))
	r2 := mustRoute(t, "AB_2", stationB, stationA, 1, Overground, Painted(Blue))
	r3 := mustRoute(t, "BC_1", stationB, stationC, 1, Overground, Painted(Blue))

	require.True(t, r1.ParallelTo(r2), "Same stations in any orientation")
	require.False(t, r1.ParallelTo(r1), "A route is not parallel to itself")
	require.False(t, r1.ParallelTo(r3))
}

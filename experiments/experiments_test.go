package experiments

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunSelfPlay(t *testing.T) {
	dir := t.TempDir()
	records, err := RunSelfPlay(Config{Games: 4, Seed: 42, Workers: 2, Dir: dir})
	require.NoError(t, err)
	require.NotEmpty(t, records)

	for i, r := range records {
		if i > 0 {
			require.Greater(t, r.ID, records[i-1].ID, "Records keep game order")
		}
		require.Equal(t, int64(41+r.ID), r.Seed)
		require.Greater(t, r.Turns, 0)
		require.Equal(t, r.Turns, r.TicketDraws+r.CardDraws+r.Claims+r.Destructions, "Every turn is counted once")
		if r.Draw {
			require.Equal(t, r.Points1, r.Points2)
			require.Empty(t, r.Winner)
		} else {
			require.NotEmpty(t, r.Winner)
		}
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "One record directory")
}

func TestRunGameIsDeterministic(t *testing.T) {
	a, errA := runGame(1, 7)
	b, errB := runGame(1, 7)
	if errA != nil {
		require.Equal(t, errA.Error(), errB.Error(), "Same seed fails the same way")
		return
	}
	require.NoError(t, errB)
	require.Equal(t, a.Turns, b.Turns)
	require.Equal(t, a.Points1, b.Points1)
	require.Equal(t, a.Points2, b.Points2)
}

func TestRunThroughput(t *testing.T) {
	records, err := RunThroughput(Config{Games: 2, Seed: 1}, []int{1, 2})
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, 1, records[0].Workers)
	require.Equal(t, 2, records[1].Workers)
	require.Equal(t, records[0].Games, records[1].Games, "Same games in every batch")
}

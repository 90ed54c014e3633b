package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tchu/player"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start()
	c.AddTurn(player.DrawCards)
	c.AddTurn(player.DrawCards)
	c.AddTurn(player.ClaimRoute)
	c.AddTurn(player.TurnKind(9))

	m := c.Complete()
	require.Equal(t, 2, m.CardDraws)
	require.Equal(t, 1, m.Claims)
	require.Equal(t, 0, m.TicketDraws)
	require.Equal(t, 0, m.Destructions)
	require.False(t, m.StartTime.IsZero())

	c.Start()
	require.Equal(t, 0, c.Complete().CardDraws, "Start resets the counts")

	require.Equal(t, GameMetric{}, NewDummyCollector().Complete())
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "selfplay")
	require.NoError(t, err)

	records := []GameRecord{
		{ID: 1, Seed: 42, Turns: 80, Points1: 61, Points2: 47, Winner: "PLAYER_1",
			GameMetric: GameMetric{Claims: 30, Duration: time.Second}},
		{ID: 2, Seed: 43, Turns: 91, Points1: 50, Points2: 50, Draw: true},
	}
	require.NoError(t, w.WriteGameRecords(records))

	rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, rows, 3, "Header and two records")
	require.Equal(t, "id", rows[0][0])
	require.Equal(t, []string{"1", "42", "80", "61", "47", "PLAYER_1", "false", "0", "0", "30", "0", "1s"}, rows[1])
	require.Equal(t, "", rows[2][5], "No winner on a draw")
	require.Equal(t, "true", rows[2][6])

	require.NoError(t, w.WriteThroughputRecords([]ThroughputRecord{{Workers: 4, Games: 8, Duration: 2 * time.Second}}))
	rows = readCSV(t, filepath.Join(w.Dir(), "throughput_records.csv"))
	require.Equal(t, []string{"4", "8", "2s", "4.00"}, rows[1])
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

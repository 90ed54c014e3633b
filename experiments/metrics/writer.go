package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type GameRecord struct {
	ID      int
	Seed    int64
	Turns   int
	Points1 int
	Points2 int
	Winner  string // Player ID, empty on a draw
	Draw    bool
	GameMetric
}

type ThroughputRecord struct {
	Workers  int
	Games    int
	Duration time.Duration
}

type Writer struct {
	baseDir string
}

// NewWriter stores records in a subdirectory of root named after the current
// time.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "seed", "turns", "points1", "points2", "winner", "draw",
		"ticket_draws", "card_draws", "claims", "destructions", "duration"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.ID),
			strconv.FormatInt(record.Seed, 10),
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.Points1),
			strconv.Itoa(record.Points2),
			record.Winner,
			strconv.FormatBool(record.Draw),
			strconv.Itoa(record.TicketDraws),
			strconv.Itoa(record.CardDraws),
			strconv.Itoa(record.Claims),
			strconv.Itoa(record.Destructions),
			record.Duration.String(),
		}
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteThroughputRecords(records []ThroughputRecord) error {
	header := []string{"workers", "games", "duration", "games_per_second"}
	rows := make([][]string, len(records))
	for i, record := range records {
		perSecond := 0.0
		if record.Duration > 0 {
			perSecond = float64(record.Games) / record.Duration.Seconds()
		}
		rows[i] = []string{
			strconv.Itoa(record.Workers),
			strconv.Itoa(record.Games),
			record.Duration.String(),
			strconv.FormatFloat(perSecond, 'f', 2, 64),
		}
	}
	return w.write("throughput_records.csv", header, rows)
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	return nil
}

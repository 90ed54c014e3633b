package experiments

import (
	"fmt"
	"time"

	"tchu/experiments/metrics"

	"github.com/rs/zerolog/log"
)

// RunThroughput plays the same batch of games once per worker count and
// records how long each batch took.
func RunThroughput(cfg Config, workerCounts []int) ([]metrics.ThroughputRecord, error) {
	records := make([]metrics.ThroughputRecord, 0, len(workerCounts))

	log.Info().Ints("workers", workerCounts).Msg("starting throughput experiment...")
	for _, workers := range workerCounts {
		run := cfg
		run.Workers = workers

		start := time.Now()
		games := runGames(run)
		records = append(records, metrics.ThroughputRecord{
			Workers:  workers,
			Games:    len(games),
			Duration: time.Since(start),
		})
		log.Info().Int("workers", workers).Dur("duration", time.Since(start)).Msg("completed batch")
	}
	log.Info().Msg("completed throughput experiment")

	if cfg.Dir == "" {
		return records, nil
	}
	writer, err := metrics.NewWriter(cfg.Dir, "throughput")
	if err != nil {
		return records, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteThroughputRecords(records); err != nil {
		return records, fmt.Errorf("failed to write throughput records: %w", err)
	}
	return records, nil
}

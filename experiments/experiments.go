// Package experiments plays bots against each other and stores what happened.
package experiments

import (
	"fmt"
	"sync"

	"tchu/engine"
	"tchu/experiments/metrics"
	"tchu/game"
	"tchu/player"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Config struct {
	Games   int
	Seed    int64 // game i is dealt from Seed+i
	Workers int
	Dir     string // root of the record directories; empty skips writing
}

// RunSelfPlay plays cfg.Games random-bot games and writes their records. Games
// that fail are logged and left out.
func RunSelfPlay(cfg Config) ([]metrics.GameRecord, error) {
	log.Info().Int("games", cfg.Games).Int("workers", cfg.Workers).Msg("starting self-play...")
	records := runGames(cfg)
	log.Info().Int("completed", len(records)).Msg("completed self-play")

	if cfg.Dir == "" {
		return records, nil
	}
	writer, err := metrics.NewWriter(cfg.Dir, "selfplay")
	if err != nil {
		return records, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteGameRecords(records); err != nil {
		return records, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored game records")
	return records, nil
}

// runGames spreads the games over cfg.Workers goroutines. Records keep the
// order of their ids.
func runGames(cfg Config) []metrics.GameRecord {
	workers := max(cfg.Workers, 1)
	results := make([]*metrics.GameRecord, cfg.Games)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				seed := cfg.Seed + int64(i)
				record, err := runGame(i+1, seed)
				if err != nil {
					log.Warn().Err(err).Int("game", i+1).Int64("seed", seed).Msg("game failed")
					continue
				}
				results[i] = &record
			}
		}()
	}
	for i := 0; i < cfg.Games; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	records := make([]metrics.GameRecord, 0, cfg.Games)
	for _, r := range results {
		if r != nil {
			records = append(records, *r)
		}
	}
	return records
}

// runGame plays one game between two random bots.
func runGame(id int, seed int64) (metrics.GameRecord, error) {
	m := game.CreateMap()
	rng := rand.New(rand.NewSource(uint64(seed)))
	players := map[game.PlayerID]player.Player{
		game.Player1: player.NewRandomPlayer("Bot 1", m, rng),
		game.Player2: player.NewRandomPlayer("Bot 2", m, rng),
	}
	collector := metrics.NewCollector()
	e := engine.New(players, m, engine.WithRand(rng), engine.WithCollector(collector))

	res, err := e.Run()
	if err != nil {
		return metrics.GameRecord{}, err
	}
	record := metrics.GameRecord{
		ID:         id,
		Seed:       seed,
		Turns:      res.Turns,
		Points1:    res.Points[game.Player1],
		Points2:    res.Points[game.Player2],
		Draw:       res.Draw,
		GameMetric: collector.Complete(),
	}
	if !res.Draw {
		record.Winner = res.Winner.String()
	}
	return record, nil
}

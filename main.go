package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"tchu/experiments"
	"tchu/game"
	"tchu/gamemaster"
	"tchu/meta"
	"tchu/player"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const usage = `usage: tchu <command> [flags]

commands:
  serve       host a game: a random bot plays against the player who connects
  join        connect a random bot to a hosted game
  selfplay    play bot games locally and store their records
  throughput  time batches of bot games over several worker counts`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	cfg, err := meta.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cmd, args := os.Args[1], os.Args[2:]
	switch cmd {
	case "serve":
		err = serve(cfg, args)
	case "join":
		err = join(cfg, args)
	case "selfplay":
		err = selfPlay(cfg, args)
	case "throughput":
		err = throughput(cfg, args)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Error().Err(err).Str("command", cmd).Msg("failed")
		os.Exit(1)
	}
}

// flags registers the settings shared by every command, defaulting to cfg.
func flags(name string, cfg *meta.Config) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.StringVar(&cfg.Host, "host", cfg.Host, "host to listen on or connect to")
	fs.IntVar(&cfg.Port, "port", cfg.Port, "port to listen on or connect to")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "tcp or ws")
	fs.StringVar(&cfg.LogLevel, "log", cfg.LogLevel, "log level")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 for a time based one")
	return fs
}

func setupLogging(cfg meta.Config) error {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("bad log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	return nil
}

func seed(cfg meta.Config) uint64 {
	if cfg.Seed != 0 {
		return uint64(cfg.Seed)
	}
	return uint64(time.Now().UnixNano())
}

func serve(cfg meta.Config, args []string) error {
	fs := flags("serve", &cfg)
	name := fs.String("name", cfg.Name1, "name of the local bot")
	fs.Parse(args)
	if err := setupLogging(cfg); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := game.CreateMap()
	rng := rand.New(rand.NewSource(seed(cfg)))
	local := player.NewRandomPlayer(*name, m, rng, player.WithLogger(log.Logger))
	gm := gamemaster.NewGameMaster(m, log.Logger)

	res, err := gm.Serve(ctx, cfg, local)
	if err != nil {
		return err
	}
	for _, id := range game.PlayerIDs {
		fmt.Printf("%s: %d points\n", res.Names[id], res.Points[id])
	}
	return nil
}

func join(cfg meta.Config, args []string) error {
	fs := flags("join", &cfg)
	name := fs.String("name", cfg.Name2, "name of the bot")
	fs.Parse(args)
	if err := setupLogging(cfg); err != nil {
		return err
	}

	m := game.CreateMap()
	rng := rand.New(rand.NewSource(seed(cfg)))
	p := player.NewRandomPlayer(*name, m, rng, player.WithLogger(log.Logger))
	return gamemaster.Join(cfg, p, m, log.Logger)
}

func selfPlay(cfg meta.Config, args []string) error {
	fs := flags("selfplay", &cfg)
	games := fs.Int("games", 10, "number of games")
	workers := fs.Int("workers", 1, "games played side by side")
	dir := fs.String("out", "experiments", "directory of the records, empty to skip writing")
	fs.Parse(args)
	if err := setupLogging(cfg); err != nil {
		return err
	}

	records, err := experiments.RunSelfPlay(experiments.Config{
		Games:   *games,
		Seed:    int64(seed(cfg)),
		Workers: *workers,
		Dir:     *dir,
	})
	if err != nil {
		return err
	}
	wins := map[string]int{}
	for _, r := range records {
		if r.Draw {
			wins["draw"]++
		} else {
			wins[r.Winner]++
		}
	}
	fmt.Printf("%d games: %v\n", len(records), wins)
	return nil
}

func throughput(cfg meta.Config, args []string) error {
	fs := flags("throughput", &cfg)
	games := fs.Int("games", 20, "games per batch")
	workers := fs.String("workers", "1,2,4,8", "comma separated worker counts")
	dir := fs.String("out", "experiments", "directory of the records, empty to skip writing")
	fs.Parse(args)
	if err := setupLogging(cfg); err != nil {
		return err
	}

	var counts []int
	for _, w := range strings.Split(*workers, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(w))
		if err != nil || n < 1 {
			return fmt.Errorf("bad worker count %q", w)
		}
		counts = append(counts, n)
	}

	records, err := experiments.RunThroughput(experiments.Config{
		Games: *games,
		Seed:  int64(seed(cfg)),
		Dir:   *dir,
	}, counts)
	if err != nil {
		return err
	}
	for _, r := range records {
		fmt.Printf("%3d workers: %d games in %s\n", r.Workers, r.Games, r.Duration)
	}
	return nil
}

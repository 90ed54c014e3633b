package engine

import (
	"errors"
	"fmt"
	"time"

	"tchu/experiments/metrics"
	"tchu/game"
	"tchu/info"
	"tchu/meta"
	"tchu/player"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// ErrTurnLimit is returned when a game runs past its turn budget.
var ErrTurnLimit = errors.New("turn limit reached")

type Phase int

const (
	TicketSelection Phase = iota
	Playing
	FinalRound
	GameOver
)

func (p Phase) String() string {
	switch p {
	case TicketSelection:
		return "ticket selection"
	case Playing:
		return "playing"
	case FinalRound:
		return "final round"
	}
	return "game over"
}

// Engine runs one game between two players. All game state lives in the
// engine, so several games can run side by side.
type Engine struct {
	session   string
	players   map[game.PlayerID]player.Player
	m         *game.Map
	rng       *rand.Rand
	logger    zerolog.Logger
	tickets   game.Bag[*game.Ticket]
	maxTurns  int
	collector metrics.Collector

	names map[game.PlayerID]string
	infos map[game.PlayerID]info.Info
	state *game.GameState
	phase Phase
	turns int
}

type Option func(*Engine)

func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithTickets replaces the tickets of the map.
func WithTickets(tickets game.Bag[*game.Ticket]) Option {
	return func(e *Engine) {
		e.tickets = tickets
	}
}

func WithMaxTurns(n int) Option {
	return func(e *Engine) {
		e.maxTurns = n
	}
}

// WithCollector records the turns played in c.
func WithCollector(c metrics.Collector) Option {
	return func(e *Engine) {
		e.collector = c
	}
}

// New prepares a game on m. It panics unless players holds exactly both
// player ids.
func New(players map[game.PlayerID]player.Player, m *game.Map, opts ...Option) *Engine {
	if len(players) != len(game.PlayerIDs) {
		panic("need exactly two players")
	}
	for _, id := range game.PlayerIDs {
		if players[id] == nil {
			panic(fmt.Sprintf("missing player %s", id))
		}
	}
	e := &Engine{
		session:   uuid.New().String(),
		players:   players,
		m:         m,
		rng:       rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		logger:    zerolog.Nop(),
		tickets:   m.AllTickets(),
		maxTurns:  meta.MAX_TURNS,
		collector: metrics.NewDummyCollector(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With().Str("session", e.session).Logger()
	return e
}

func (e *Engine) Session() string {
	return e.session
}

func (e *Engine) Phase() Phase {
	return e.phase
}

// Run plays the game to its end. A failing player or an illegal answer stops
// the game with an error; illegal answers wrap game.ErrInvalidArgument.
func (e *Engine) Run() (Result, error) {
	e.collector.Start()
	if err := e.setup(); err != nil {
		return Result{}, err
	}
	if err := e.play(); err != nil {
		return Result{}, err
	}
	return e.score()
}

func (e *Engine) setupNames() error {
	e.names = make(map[game.PlayerID]string, len(game.PlayerIDs))
	e.infos = make(map[game.PlayerID]info.Info, len(game.PlayerIDs))
	for _, id := range game.PlayerIDs {
		name, err := e.players[id].Name()
		if err != nil {
			return fmt.Errorf("failed to get name of %s: %w", id, err)
		}
		e.names[id] = name
		e.infos[id] = info.New(name)
	}
	return nil
}

func (e *Engine) setup() error {
	e.phase = TicketSelection
	if err := e.setupNames(); err != nil {
		return err
	}
	for _, id := range game.PlayerIDs {
		if err := e.players[id].InitPlayers(id, e.names); err != nil {
			return e.playerError(id, "init players", err)
		}
	}

	state, err := game.InitialGameState(e.tickets, e.rng)
	if err != nil {
		return fmt.Errorf("failed to deal: %w", err)
	}
	e.state = state
	e.logger.Info().Str("first", e.names[state.CurrentPlayerID()]).Msg("game started")
	if err := e.broadcastInfo(e.infos[state.CurrentPlayerID()].WillPlayFirst()); err != nil {
		return err
	}

	offered := make(map[game.PlayerID]game.Bag[*game.Ticket], len(game.PlayerIDs))
	for _, id := range game.PlayerIDs {
		tickets, err := e.state.TopTickets(meta.INITIAL_TICKETS_COUNT)
		if err != nil {
			return fmt.Errorf("not enough tickets for %s: %w", id, err)
		}
		e.state, _ = e.state.WithoutTopTickets(meta.INITIAL_TICKETS_COUNT)
		offered[id] = tickets
		if err := e.players[id].SetInitialTicketChoice(tickets); err != nil {
			return e.playerError(id, "set initial tickets", err)
		}
	}
	if err := e.broadcastState(); err != nil {
		return err
	}

	for _, id := range game.PlayerIDs {
		chosen, err := e.players[id].ChooseInitialTickets()
		if err != nil {
			return e.playerError(id, "choose initial tickets", err)
		}
		keep := meta.INITIAL_TICKETS_COUNT - meta.DISCARDABLE_TICKETS_COUNT
		if !offered[id].Contains(chosen) || chosen.Size() < keep {
			return e.illegal(id, "kept tickets %s out of %s", chosen, offered[id])
		}
		if e.state, err = e.state.WithInitiallyChosenTickets(id, chosen); err != nil {
			return e.illegal(id, "%v", err)
		}
	}
	for _, id := range game.PlayerIDs {
		if err := e.broadcastInfo(e.infos[id].KeptTickets(e.state.PlayerState(id).TicketCount())); err != nil {
			return err
		}
	}
	return nil
}

// play runs turns until the player who triggered the final round has played
// once more.
func (e *Engine) play() error {
	e.phase = Playing
	for {
		e.turns++
		if e.maxTurns > 0 && e.turns > e.maxTurns {
			return fmt.Errorf("%w after %d turns", ErrTurnLimit, e.maxTurns)
		}
		current := e.state.CurrentPlayerID()
		if err := e.broadcastState(); err != nil {
			return err
		}
		if err := e.broadcastInfo(e.infos[current].CanPlay()); err != nil {
			return err
		}
		if err := e.playTurn(current); err != nil {
			return err
		}

		if last, ok := e.state.LastPlayer(); ok && last == current {
			e.phase = GameOver
			return nil
		}
		if e.state.LastTurnBegins() {
			e.phase = FinalRound
			e.logger.Info().Str("player", e.names[current]).Int("turn", e.turns).Msg("final round")
			msg := e.infos[current].LastTurnBegins(e.state.CurrentPlayerState().CarCount())
			if err := e.broadcastInfo(msg); err != nil {
				return err
			}
		}
		e.state = e.state.ForNextTurn()
	}
}

func (e *Engine) broadcastInfo(text string) error {
	for _, id := range game.PlayerIDs {
		if err := e.players[id].ReceiveInfo(text); err != nil {
			return e.playerError(id, "receive info", err)
		}
	}
	return nil
}

func (e *Engine) broadcastState() error {
	public := e.state.Public()
	for _, id := range game.PlayerIDs {
		if err := e.players[id].UpdateState(public, e.state.PlayerState(id)); err != nil {
			return e.playerError(id, "update state", err)
		}
	}
	return nil
}

func (e *Engine) playerError(id game.PlayerID, call string, err error) error {
	return fmt.Errorf("player %s (%s) failed on %s: %w", e.names[id], id, call, err)
}

func (e *Engine) illegal(id game.PlayerID, format string, args ...any) error {
	e.logger.Warn().Str("player", e.names[id]).Int("turn", e.turns).Msgf(format, args...)
	return fmt.Errorf("%w: player %s: %s", game.ErrInvalidArgument, e.names[id], fmt.Sprintf(format, args...))
}

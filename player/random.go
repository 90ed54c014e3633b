package player

import (
	"tchu/game"
	"tchu/meta"
	"tchu/utils"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

type action struct {
	kind  TurnKind
	route *game.Route
	claim game.Bag[game.Card]
}

// RandomPlayer picks uniformly among its legal actions. Each claimable route
// and each destroyable route counts as one action.
type RandomPlayer struct {
	name   string
	m      *game.Map
	rng    *rand.Rand
	logger zerolog.Logger

	id    game.PlayerID
	state game.PublicGameState
	own   game.PlayerState

	offered game.Bag[*game.Ticket]
	planned action
}

type Option func(*RandomPlayer)

func WithLogger(logger zerolog.Logger) Option {
	return func(p *RandomPlayer) {
		p.logger = logger
	}
}

func NewRandomPlayer(name string, m *game.Map, rng *rand.Rand, opts ...Option) *RandomPlayer {
	p := &RandomPlayer{
		name:   name,
		m:      m,
		rng:    rng,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *RandomPlayer) InitPlayers(own game.PlayerID, names map[game.PlayerID]string) error {
	p.id = own
	p.logger = p.logger.With().Str("player", p.name).Stringer("id", own).Logger()
	return nil
}

func (p *RandomPlayer) ReceiveInfo(info string) error {
	p.logger.Trace().Msg(info)
	return nil
}

func (p *RandomPlayer) UpdateState(state game.PublicGameState, own game.PlayerState) error {
	p.state, p.own = state, own
	return nil
}

func (p *RandomPlayer) SetInitialTicketChoice(tickets game.Bag[*game.Ticket]) error {
	p.offered = tickets
	return nil
}

func (p *RandomPlayer) ChooseInitialTickets() (game.Bag[*game.Ticket], error) {
	keep := p.offered.Size() - meta.DISCARDABLE_TICKETS_COUNT
	return p.randomSubset(p.offered, keep), nil
}

func (p *RandomPlayer) legalActions() []action {
	var actions []action
	for _, r := range p.m.Routes {
		if !p.state.IsClaimable(r) || !p.own.CanClaimRoute(r) {
			continue
		}
		claims, err := p.own.PossibleClaimCards(r)
		if err != nil || len(claims) == 0 {
			continue
		}
		actions = append(actions, action{kind: ClaimRoute, route: r, claim: claims[p.rng.Intn(len(claims))]})
	}
	if p.own.CanDestroyRoutes() {
		for _, r := range p.state.PublicPlayerState(p.id.Next()).Routes() {
			actions = append(actions, action{kind: DestroyRoute, route: r})
		}
	}
	if p.state.CanDrawCards() {
		actions = append(actions, action{kind: DrawCards})
	}
	if p.state.CanDrawTickets() {
		actions = append(actions, action{kind: DrawTickets})
	}
	return actions
}

func (p *RandomPlayer) NextTurn() (TurnKind, error) {
	actions := p.legalActions()
	if len(actions) == 0 {
		// Nothing is legal.
		p.planned = action{kind: DrawCards}
		return DrawCards, nil
	}
	p.planned = actions[p.rng.Intn(len(actions))]
	claims := utils.CountFunc(actions, func(a action) bool { return a.kind == ClaimRoute })
	p.logger.Debug().Stringer("kind", p.planned.kind).Int("options", len(actions)).Int("claims", claims).Msg("next turn")
	return p.planned.kind, nil
}

func (p *RandomPlayer) ChooseTickets(options game.Bag[*game.Ticket]) (game.Bag[*game.Ticket], error) {
	keep := max(1, options.Size()-meta.DISCARDABLE_TICKETS_COUNT)
	return p.randomSubset(options, keep), nil
}

func (p *RandomPlayer) DrawSlot() (int, error) {
	return p.rng.Intn(meta.FACE_UP_CARDS_COUNT+1) - 1, nil
}

func (p *RandomPlayer) ClaimedRoute() (*game.Route, error) {
	return p.planned.route, nil
}

func (p *RandomPlayer) InitialClaimCards() (game.Bag[game.Card], error) {
	return p.planned.claim, nil
}

// ChooseAdditionalCards declines with the same odds as picking any option.
func (p *RandomPlayer) ChooseAdditionalCards(options []game.Bag[game.Card]) (game.Bag[game.Card], error) {
	i := p.rng.Intn(len(options) + 1)
	if i == len(options) {
		return game.Bag[game.Card]{}, nil
	}
	return options[i], nil
}

func (p *RandomPlayer) Name() (string, error) {
	return p.name, nil
}

func (p *RandomPlayer) DestroyedRoute() (*game.Route, error) {
	return p.planned.route, nil
}

// randomSubset keeps between atLeast and all of the elements of b.
func (p *RandomPlayer) randomSubset(b game.Bag[*game.Ticket], atLeast int) game.Bag[*game.Ticket] {
	items := b.Items()
	atLeast = min(max(atLeast, 0), len(items))
	p.rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	n := atLeast + p.rng.Intn(len(items)-atLeast+1)
	return game.BagOf(items[:n]...)
}

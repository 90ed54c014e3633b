package game

import (
	"maps"
	"slices"
	"tchu/meta"

	"golang.org/x/exp/rand"
)

// PublicGameState is the part of the game both players see.
type PublicGameState struct {
	ticketsCount  int
	cardState     PublicCardState
	currentPlayer PlayerID
	playerStates  map[PlayerID]PublicPlayerState
	lastPlayer    PlayerID
	hasLast       bool
}

// NewPublicGameState checks that both players are present. A nil lastPlayer
// means the final round has not started.
func NewPublicGameState(ticketsCount int, cardState PublicCardState, currentPlayer PlayerID,
	playerStates map[PlayerID]PublicPlayerState, lastPlayer *PlayerID) (PublicGameState, error) {
	if ticketsCount < 0 {
		return PublicGameState{}, invalidArgument("negative ticket count %d", ticketsCount)
	}
	if len(playerStates) != len(PlayerIDs) {
		return PublicGameState{}, invalidArgument("expected %d player states, got %d", len(PlayerIDs), len(playerStates))
	}
	for _, id := range PlayerIDs {
		if _, ok := playerStates[id]; !ok {
			return PublicGameState{}, invalidArgument("missing state for %s", id)
		}
	}
	gs := PublicGameState{
		ticketsCount:  ticketsCount,
		cardState:     cardState,
		currentPlayer: currentPlayer,
		playerStates:  maps.Clone(playerStates),
	}
	if lastPlayer != nil {
		gs.lastPlayer, gs.hasLast = *lastPlayer, true
	}
	return gs, nil
}

func (gs PublicGameState) TicketsCount() int {
	return gs.ticketsCount
}

func (gs PublicGameState) CanDrawTickets() bool {
	return gs.ticketsCount > 0
}

func (gs PublicGameState) CardState() PublicCardState {
	return gs.cardState
}

// CanDrawCards requires at least five cards between the pile and the
// discards.
func (gs PublicGameState) CanDrawCards() bool {
	return gs.cardState.DeckSize()+gs.cardState.DiscardsSize() >= meta.FACE_UP_CARDS_COUNT
}

func (gs PublicGameState) CurrentPlayerID() PlayerID {
	return gs.currentPlayer
}

func (gs PublicGameState) PublicPlayerState(id PlayerID) PublicPlayerState {
	return gs.playerStates[id]
}

func (gs PublicGameState) CurrentPublicPlayerState() PublicPlayerState {
	return gs.playerStates[gs.currentPlayer]
}

// ClaimedRoutes lists the routes of both players, first player first.
func (gs PublicGameState) ClaimedRoutes() []*Route {
	var routes []*Route
	for _, id := range PlayerIDs {
		routes = append(routes, gs.playerStates[id].routes...)
	}
	return routes
}

// LastPlayer is set once the final round has begun.
func (gs PublicGameState) LastPlayer() (PlayerID, bool) {
	return gs.lastPlayer, gs.hasLast
}

// IsClaimable reports whether neither r nor a parallel route is owned.
func (gs PublicGameState) IsClaimable(r *Route) bool {
	for _, c := range gs.ClaimedRoutes() {
		if c == r || c.ParallelTo(r) {
			return false
		}
	}
	return true
}

// RouteIsDestroyableFor reports whether r belongs to the opponent of id.
func (gs PublicGameState) RouteIsDestroyableFor(id PlayerID, r *Route) bool {
	return slices.Contains(gs.playerStates[id.Next()].routes, r)
}

// GameState is the complete game: the public part plus the ticket pile, the
// hidden cards and the hands.
type GameState struct {
	PublicGameState
	tickets Deck[*Ticket]
	cards   CardState
	players map[PlayerID]PlayerState
}

func newGameState(tickets Deck[*Ticket], cards CardState, current PlayerID,
	players map[PlayerID]PlayerState, lastPlayer PlayerID, hasLast bool) *GameState {
	public := make(map[PlayerID]PublicPlayerState, len(players))
	for id, ps := range players {
		public[id] = ps.Public()
	}
	return &GameState{
		PublicGameState: PublicGameState{
			ticketsCount:  tickets.Size(),
			cardState:     cards.Public(),
			currentPlayer: current,
			playerStates:  public,
			lastPlayer:    lastPlayer,
			hasLast:       hasLast,
		},
		tickets: tickets,
		cards:   cards,
		players: players,
	}
}

// NewGameState assembles a game from its parts. A nil lastPlayer means the
// final round has not started.
func NewGameState(tickets Deck[*Ticket], cards CardState, currentPlayer PlayerID,
	players map[PlayerID]PlayerState, lastPlayer *PlayerID) (*GameState, error) {
	for _, id := range PlayerIDs {
		if _, ok := players[id]; !ok {
			return nil, invalidArgument("missing state for %s", id)
		}
	}
	if len(players) != len(PlayerIDs) {
		return nil, invalidArgument("expected %d player states, got %d", len(PlayerIDs), len(players))
	}
	if lastPlayer != nil {
		return newGameState(tickets, cards, currentPlayer, maps.Clone(players), *lastPlayer, true), nil
	}
	return newGameState(tickets, cards, currentPlayer, maps.Clone(players), 0, false), nil
}

// InitialGameState shuffles tickets and cards, deals four cards to each
// player and picks the first player at random.
func InitialGameState(tickets Bag[*Ticket], rng *rand.Rand) (*GameState, error) {
	deck := DeckOf(AllCards(), rng)
	players := make(map[PlayerID]PlayerState, len(PlayerIDs))
	for _, id := range PlayerIDs {
		hand, err := deck.TopCards(meta.INITIAL_CARDS_COUNT)
		if err != nil {
			return nil, err
		}
		deck, _ = deck.WithoutTopCards(meta.INITIAL_CARDS_COUNT)
		if players[id], err = InitialPlayerState(hand); err != nil {
			return nil, err
		}
	}
	cards, err := CardStateOf(deck)
	if err != nil {
		return nil, err
	}
	first := PlayerIDs[rng.Intn(len(PlayerIDs))]
	return newGameState(DeckOf(tickets, rng), cards, first, players, 0, false), nil
}

// AllCards is the full card pool of a game.
func AllCards() Bag[Card] {
	var cards []Card
	for _, c := range CarCards {
		for i := 0; i < meta.CAR_CARDS_PER_COLOR; i++ {
			cards = append(cards, c)
		}
	}
	for i := 0; i < meta.LOCOMOTIVE_CARDS; i++ {
		cards = append(cards, Locomotive)
	}
	for i := 0; i < meta.BOMB_CARDS; i++ {
		cards = append(cards, Bomb)
	}
	return BagOf(cards...)
}

func (gs *GameState) Public() PublicGameState {
	return gs.PublicGameState
}

func (gs *GameState) PlayerState(id PlayerID) PlayerState {
	return gs.players[id]
}

func (gs *GameState) CurrentPlayerState() PlayerState {
	return gs.players[gs.currentPlayer]
}

func (gs *GameState) with(cards CardState, players map[PlayerID]PlayerState) *GameState {
	return newGameState(gs.tickets, cards, gs.currentPlayer, players, gs.lastPlayer, gs.hasLast)
}

func (gs *GameState) withPlayer(id PlayerID, ps PlayerState) map[PlayerID]PlayerState {
	players := maps.Clone(gs.players)
	players[id] = ps
	return players
}

func (gs *GameState) TopTickets(count int) (Bag[*Ticket], error) {
	return gs.tickets.TopCards(count)
}

func (gs *GameState) WithoutTopTickets(count int) (*GameState, error) {
	rest, err := gs.tickets.WithoutTopCards(count)
	if err != nil {
		return gs, err
	}
	return newGameState(rest, gs.cards, gs.currentPlayer, gs.players, gs.lastPlayer, gs.hasLast), nil
}

func (gs *GameState) TopCard() (Card, error) {
	return gs.cards.TopDeckCard()
}

func (gs *GameState) WithoutTopCard() (*GameState, error) {
	cards, err := gs.cards.WithoutTopDeckCard()
	if err != nil {
		return gs, err
	}
	return gs.with(cards, gs.players), nil
}

func (gs *GameState) WithMoreDiscardedCards(discarded Bag[Card]) *GameState {
	return gs.with(gs.cards.WithMoreDiscardedCards(discarded), gs.players)
}

// WithCardsDeckRecreatedIfNeeded refills an empty pile from the discards.
func (gs *GameState) WithCardsDeckRecreatedIfNeeded(rng *rand.Rand) *GameState {
	if !gs.cards.IsDeckEmpty() {
		return gs
	}
	cards, _ := gs.cards.WithDeckRecreatedFromDiscards(rng)
	return gs.with(cards, gs.players)
}

// WithInitiallyChosenTickets gives id its first tickets.
func (gs *GameState) WithInitiallyChosenTickets(id PlayerID, chosen Bag[*Ticket]) (*GameState, error) {
	ps := gs.players[id]
	if ps.TicketCount() > 0 {
		return gs, invalidArgument("%s already has tickets", id)
	}
	return gs.with(gs.cards, gs.withPlayer(id, ps.WithAddedTickets(chosen))), nil
}

// WithChosenAdditionalTickets removes the drawn tickets from the pile and
// gives the chosen ones to the current player, who may discard at most two.
func (gs *GameState) WithChosenAdditionalTickets(drawn, chosen Bag[*Ticket]) (*GameState, error) {
	if !drawn.Contains(chosen) {
		return gs, invalidArgument("chosen tickets %s were not drawn", chosen)
	}
	if keep := max(1, drawn.Size()-meta.DISCARDABLE_TICKETS_COUNT); chosen.Size() < keep {
		return gs, invalidArgument("kept %d of %d drawn tickets, at least %d required", chosen.Size(), drawn.Size(), keep)
	}
	rest, err := gs.tickets.WithoutTopCards(drawn.Size())
	if err != nil {
		return gs, err
	}
	players := gs.withPlayer(gs.currentPlayer, gs.CurrentPlayerState().WithAddedTickets(chosen))
	return newGameState(rest, gs.cards, gs.currentPlayer, players, gs.lastPlayer, gs.hasLast), nil
}

func (gs *GameState) WithDrawnFaceUpCard(slot int) (*GameState, error) {
	card, err := gs.cards.FaceUpCard(slot)
	if err != nil {
		return gs, err
	}
	cards, err := gs.cards.WithDrawnFaceUpCard(slot)
	if err != nil {
		return gs, err
	}
	players := gs.withPlayer(gs.currentPlayer, gs.CurrentPlayerState().WithAddedCard(card))
	return gs.with(cards, players), nil
}

func (gs *GameState) WithBlindlyDrawnCard() (*GameState, error) {
	card, err := gs.cards.TopDeckCard()
	if err != nil {
		return gs, err
	}
	cards, _ := gs.cards.WithoutTopDeckCard()
	players := gs.withPlayer(gs.currentPlayer, gs.CurrentPlayerState().WithAddedCard(card))
	return gs.with(cards, players), nil
}

// WithClaimedRoute gives r to the current player, who pays with cards.
func (gs *GameState) WithClaimedRoute(r *Route, cards Bag[Card]) (*GameState, error) {
	if !gs.IsClaimable(r) {
		return gs, invalidArgument("route %s is not claimable", r.ID())
	}
	ps, err := gs.CurrentPlayerState().WithClaimedRoute(r, cards)
	if err != nil {
		return gs, err
	}
	return gs.with(gs.cards.WithMoreDiscardedCards(cards), gs.withPlayer(gs.currentPlayer, ps)), nil
}

// WithDestroyedRoute spends a bomb of the current player to take r away from
// the opponent.
func (gs *GameState) WithDestroyedRoute(r *Route) (*GameState, error) {
	if !gs.RouteIsDestroyableFor(gs.currentPlayer, r) {
		return gs, invalidArgument("route %s is not owned by the opponent", r.ID())
	}
	attacker, err := gs.CurrentPlayerState().WithoutCard(Bomb)
	if err != nil {
		return gs, err
	}
	victim, _ := gs.players[gs.currentPlayer.Next()].WithDestroyedRoute(r)
	players := gs.withPlayer(gs.currentPlayer, attacker)
	players[gs.currentPlayer.Next()] = victim
	return gs.with(gs.cards.WithMoreDiscardedCards(BagOf(Bomb)), players), nil
}

// LastTurnBegins is true when the final round starts after the current turn.
func (gs *GameState) LastTurnBegins() bool {
	return !gs.hasLast && gs.CurrentPlayerState().CarCount() <= meta.LAST_TURN_CAR_COUNT
}

// ForNextTurn hands the turn over. The player who triggered the final round
// is recorded once and never replaced.
func (gs *GameState) ForNextTurn() *GameState {
	last, hasLast := gs.lastPlayer, gs.hasLast
	if gs.LastTurnBegins() {
		last, hasLast = gs.currentPlayer, true
	}
	return newGameState(gs.tickets, gs.cards, gs.currentPlayer.Next(), gs.players, last, hasLast)
}

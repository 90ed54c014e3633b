package game

import (
	"slices"
	"tchu/meta"
)

// PublicPlayerState is what the opponent knows about a player.
type PublicPlayerState struct {
	ticketCount int
	cardCount   int
	routes      []*Route
	carCount    int
	claimPoints int
}

func cloneRoutes(routes []*Route) []*Route {
	if len(routes) == 0 {
		return nil
	}
	return slices.Clone(routes)
}

func newPublicPlayerState(ticketCount, cardCount int, routes []*Route) PublicPlayerState {
	cars, points := meta.INITIAL_CAR_COUNT, 0
	for _, r := range routes {
		cars -= r.Length()
		points += r.ClaimPoints()
	}
	return PublicPlayerState{
		ticketCount: ticketCount,
		cardCount:   cardCount,
		routes:      cloneRoutes(routes),
		carCount:    cars,
		claimPoints: points,
	}
}

func NewPublicPlayerState(ticketCount, cardCount int, routes []*Route) (PublicPlayerState, error) {
	if ticketCount < 0 || cardCount < 0 {
		return PublicPlayerState{}, invalidArgument("negative counts (tickets %d, cards %d)", ticketCount, cardCount)
	}
	return newPublicPlayerState(ticketCount, cardCount, routes), nil
}

func (ps PublicPlayerState) TicketCount() int { return ps.ticketCount }
func (ps PublicPlayerState) CardCount() int   { return ps.cardCount }
func (ps PublicPlayerState) Routes() []*Route { return slices.Clone(ps.routes) }
func (ps PublicPlayerState) CarCount() int    { return ps.carCount }
func (ps PublicPlayerState) ClaimPoints() int { return ps.claimPoints }

// PlayerState is the full state of one player, including the hand and the
// tickets.
type PlayerState struct {
	PublicPlayerState
	tickets Bag[*Ticket]
	cards   Bag[Card]
}

func NewPlayerState(tickets Bag[*Ticket], cards Bag[Card], routes []*Route) PlayerState {
	return PlayerState{
		PublicPlayerState: newPublicPlayerState(tickets.Size(), cards.Size(), routes),
		tickets:           tickets,
		cards:             cards,
	}
}

// InitialPlayerState holds the initial cards and nothing else.
func InitialPlayerState(initialCards Bag[Card]) (PlayerState, error) {
	if initialCards.Size() != meta.INITIAL_CARDS_COUNT {
		return PlayerState{}, invalidArgument("expected %d initial cards, got %d", meta.INITIAL_CARDS_COUNT, initialCards.Size())
	}
	return NewPlayerState(Bag[*Ticket]{}, initialCards, nil), nil
}

func (ps PlayerState) Public() PublicPlayerState {
	return ps.PublicPlayerState
}

func (ps PlayerState) Tickets() Bag[*Ticket] { return ps.tickets }
func (ps PlayerState) Cards() Bag[Card]      { return ps.cards }

func (ps PlayerState) WithAddedTickets(tickets Bag[*Ticket]) PlayerState {
	return NewPlayerState(ps.tickets.Union(tickets), ps.cards, ps.routes)
}

func (ps PlayerState) WithAddedCard(card Card) PlayerState {
	return ps.WithAddedCards(BagOf(card))
}

func (ps PlayerState) WithAddedCards(cards Bag[Card]) PlayerState {
	return NewPlayerState(ps.tickets, ps.cards.Union(cards), ps.routes)
}

// CanClaimRoute reports whether the player has the cars and some set of cards
// able to claim r.
func (ps PlayerState) CanClaimRoute(r *Route) bool {
	if ps.carCount < r.Length() {
		return false
	}
	for _, claim := range r.PossibleClaimCards() {
		if ps.cards.Contains(claim) {
			return true
		}
	}
	return false
}

// PossibleClaimCards lists the claim options for r that the hand can pay.
func (ps PlayerState) PossibleClaimCards(r *Route) ([]Bag[Card], error) {
	if ps.carCount < r.Length() {
		return nil, invalidArgument("%d cars left, route %s needs %d", ps.carCount, r.ID(), r.Length())
	}
	var claims []Bag[Card]
	for _, claim := range r.PossibleClaimCards() {
		if ps.cards.Contains(claim) {
			claims = append(claims, claim)
		}
	}
	return claims, nil
}

// PossibleAdditionalCards lists the ways to pay additionalCount more cards
// for a tunnel claimed with initialCards, fewest locomotives first.
func (ps PlayerState) PossibleAdditionalCards(additionalCount int, initialCards Bag[Card]) ([]Bag[Card], error) {
	if additionalCount < 1 || additionalCount > meta.ADDITIONAL_TUNNEL_CARDS {
		return nil, invalidArgument("additional card count %d", additionalCount)
	}
	if initialCards.IsEmpty() {
		return nil, invalidArgument("no initial claim cards")
	}
	var color Color
	colored := false
	for _, c := range initialCards.Distinct() {
		if c == Locomotive {
			continue
		}
		cc, ok := c.Color()
		if !ok {
			return nil, invalidArgument("%s cannot claim a route", c)
		}
		if colored && cc != color {
			return nil, invalidArgument("initial cards mix %s and %s", color, cc)
		}
		color, colored = cc, true
	}

	var playable []Card
	for _, c := range ps.cards.Difference(initialCards).items {
		if cc, ok := c.Color(); c == Locomotive || (ok && colored && cc == color) {
			playable = append(playable, c)
		}
	}
	options := BagOf(playable...).SubsetsOfSize(additionalCount)
	slices.SortStableFunc(options, func(a, b Bag[Card]) int {
		return a.Count(Locomotive) - b.Count(Locomotive)
	})
	return options, nil
}

// WithClaimedRoute pays cards for r.
func (ps PlayerState) WithClaimedRoute(r *Route, cards Bag[Card]) (PlayerState, error) {
	if !ps.cards.Contains(cards) {
		return ps, invalidArgument("cards %s are not all in hand %s", cards, ps.cards)
	}
	if ps.carCount < r.Length() {
		return ps, invalidArgument("%d cars left, route %s needs %d", ps.carCount, r.ID(), r.Length())
	}
	routes := append(ps.Routes(), r)
	return NewPlayerState(ps.tickets, ps.cards.Difference(cards), routes), nil
}

// CanDestroyRoutes reports whether the player holds a bomb.
func (ps PlayerState) CanDestroyRoutes() bool {
	return ps.cards.Has(Bomb)
}

// WithoutCard removes one copy of card from the hand.
func (ps PlayerState) WithoutCard(card Card) (PlayerState, error) {
	if !ps.cards.Has(card) {
		return ps, invalidArgument("%s is not in hand", card)
	}
	return NewPlayerState(ps.tickets, ps.cards.Difference(BagOf(card)), ps.routes), nil
}

// WithDestroyedRoute forgets r; the cars it used come back.
func (ps PlayerState) WithDestroyedRoute(r *Route) (PlayerState, error) {
	i := slices.Index(ps.routes, r)
	if i < 0 {
		return ps, invalidArgument("route %s is not owned", r.ID())
	}
	routes := slices.Delete(ps.Routes(), i, i+1)
	return NewPlayerState(ps.tickets, ps.cards, routes), nil
}

// TicketPoints sums the tickets against the connectivity of the owned routes.
func (ps PlayerState) TicketPoints() int {
	maxID := 0
	for _, r := range ps.routes {
		maxID = max(maxID, r.Station1().ID, r.Station2().ID)
	}
	builder, _ := NewStationPartitionBuilder(maxID + 1)
	for _, r := range ps.routes {
		builder.Connect(r.Station1(), r.Station2())
	}
	partition := builder.Build()

	points := 0
	for _, t := range ps.tickets.items {
		points += t.Points(partition)
	}
	return points
}

func (ps PlayerState) FinalPoints() int {
	return ps.claimPoints + ps.TicketPoints()
}

package game

import (
	"cmp"
	"fmt"
	"tchu/meta"
)

type Station struct {
	ID   int
	Name string
}

func (s Station) String() string {
	return s.Name
}

type Level int

const (
	Overground Level = iota
	Underground
)

func (l Level) String() string {
	if l == Underground {
		return "UNDERGROUND"
	}
	return "OVERGROUND"
}

// Route connects two neighbouring stations. Routes are compared by identity:
// two routes between the same stations are still distinct.
type Route struct {
	id       string
	station1 Station
	station2 Station
	length   int
	level    Level
	paint    Paint
}

func NewRoute(id string, station1, station2 Station, length int, level Level, paint Paint) (*Route, error) {
	if station1 == station2 {
		return nil, invalidArgument("route %s connects %s to itself", id, station1)
	}
	if length < meta.MIN_ROUTE_LENGTH || length > meta.MAX_ROUTE_LENGTH {
		return nil, invalidArgument("route %s has length %d", id, length)
	}
	return &Route{id: id, station1: station1, station2: station2, length: length, level: level, paint: paint}, nil
}

func (r *Route) ID() string          { return r.id }
func (r *Route) Station1() Station   { return r.station1 }
func (r *Route) Station2() Station   { return r.station2 }
func (r *Route) Length() int         { return r.length }
func (r *Route) Level() Level        { return r.level }
func (r *Route) Paint() Paint        { return r.paint }
func (r *Route) Stations() []Station { return []Station{r.station1, r.station2} }

// StationOpposite returns the other end of the route.
func (r *Route) StationOpposite(s Station) (Station, error) {
	switch s {
	case r.station1:
		return r.station2, nil
	case r.station2:
		return r.station1, nil
	}
	return Station{}, invalidArgument("%s is not an end of route %s", s, r.id)
}

func (r *Route) opposite(s Station) Station {
	if s == r.station1 {
		return r.station2
	}
	return r.station1
}

// ParallelTo reports whether other is a distinct route between the same two
// stations.
func (r *Route) ParallelTo(other *Route) bool {
	if r == other {
		return false
	}
	return (r.station1 == other.station1 && r.station2 == other.station2) ||
		(r.station1 == other.station2 && r.station2 == other.station1)
}

// PossibleClaimCards lists the card sets that can claim the route, sorted by
// number of locomotives then by color.
func (r *Route) PossibleClaimCards() []Bag[Card] {
	options := CarCards
	if c, ok := r.paint.Color(); ok {
		options = []Card{CardOf(c)}
	}
	maxLocomotives := 0
	if r.level == Underground {
		maxLocomotives = r.length
	}

	var claims []Bag[Card]
	for locomotives := 0; locomotives <= maxLocomotives; locomotives++ {
		if locomotives == r.length {
			claims = append(claims, BagOfN(locomotives, Locomotive))
			continue
		}
		for _, card := range options {
			claims = append(claims, BagOfN(r.length-locomotives, card).Union(BagOfN(locomotives, Locomotive)))
		}
	}
	return claims
}

// AdditionalClaimCardsCount is the extra cost of a tunnel, given the cards
// played and the three cards drawn from the pile.
func (r *Route) AdditionalClaimCardsCount(claimCards, drawnCards Bag[Card]) (int, error) {
	if r.level != Underground {
		return 0, invalidArgument("route %s is not a tunnel", r.id)
	}
	if drawnCards.Size() != meta.ADDITIONAL_TUNNEL_CARDS {
		return 0, invalidArgument("expected %d drawn cards, got %d", meta.ADDITIONAL_TUNNEL_CARDS, drawnCards.Size())
	}
	return MatchingCardsCount(claimCards, drawnCards), nil
}

// MatchingCardsCount counts the drawn cards that are locomotives or that also
// appear among the claim cards.
func MatchingCardsCount(claimCards, drawnCards Bag[Card]) int {
	n := 0
	for _, c := range drawnCards.items {
		if c == Locomotive || claimCards.Has(c) {
			n++
		}
	}
	return n
}

func (r *Route) ClaimPoints() int {
	return meta.ROUTE_CLAIM_POINTS[r.length]
}

func (r *Route) Compare(other *Route) int {
	return cmp.Compare(r.id, other.id)
}

func (r *Route) String() string {
	return fmt.Sprintf("%s - %s", r.station1, r.station2)
}

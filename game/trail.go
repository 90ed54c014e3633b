package game

import (
	"fmt"
	"slices"
	"strings"
)

// Trail is a path through a player's routes that never reuses a route.
// Stations may repeat.
type Trail struct {
	station1 Station
	station2 Station
	routes   []*Route
	length   int
}

func newTrail(from, to Station, routes []*Route) Trail {
	length := 0
	for _, r := range routes {
		length += r.Length()
	}
	return Trail{station1: from, station2: to, routes: routes, length: length}
}

// Longest returns a trail of maximal length built from routes. Among equally
// long trails the first one found wins. No routes yields the empty trail.
func Longest(routes []*Route) Trail {
	var trails []Trail
	for _, r := range routes {
		trails = append(trails,
			newTrail(r.Station1(), r.Station2(), []*Route{r}),
			newTrail(r.Station2(), r.Station1(), []*Route{r}))
	}

	var longest Trail
	for len(trails) > 0 {
		var extended []Trail
		for _, t := range trails {
			if t.length > longest.length {
				longest = t
			}
			for _, r := range routes {
				if slices.Contains(t.routes, r) {
					continue
				}
				if r.Station1() != t.station2 && r.Station2() != t.station2 {
					continue
				}
				next := append(slices.Clone(t.routes), r)
				extended = append(extended, newTrail(t.station1, r.opposite(t.station2), next))
			}
		}
		trails = extended
	}
	return longest
}

func (t Trail) Length() int {
	return t.length
}

func (t Trail) Routes() []*Route {
	return slices.Clone(t.routes)
}

// Stations returns both ends; an empty trail has none.
func (t Trail) Stations() (Station, Station, bool) {
	if len(t.routes) == 0 {
		return Station{}, Station{}, false
	}
	return t.station1, t.station2, true
}

func (t Trail) String() string {
	if len(t.routes) == 0 {
		return "empty trail"
	}
	names := []string{t.station1.Name}
	at := t.station1
	for _, r := range t.routes {
		at = r.opposite(at)
		names = append(names, at.Name)
	}
	return fmt.Sprintf("%s (%d)", strings.Join(names, " - "), t.length)
}

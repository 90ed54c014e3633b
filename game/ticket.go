package game

import (
	"fmt"
	"slices"
	"strings"
)

// Trip is one way of fulfilling a ticket.
type Trip struct {
	From   Station
	To     Station
	Points int
}

func NewTrip(from, to Station, points int) (Trip, error) {
	if points <= 0 {
		return Trip{}, invalidArgument("trip %s - %s is worth %d points", from, to, points)
	}
	return Trip{From: from, To: to, Points: points}, nil
}

// AllTrips returns the trips from every station of from to every station of
// to, all worth the same points.
func AllTrips(from, to []Station, points int) ([]Trip, error) {
	if len(from) == 0 || len(to) == 0 {
		return nil, invalidArgument("trips need at least one origin and one destination")
	}
	if points <= 0 {
		return nil, invalidArgument("trips are worth %d points", points)
	}
	trips := make([]Trip, 0, len(from)*len(to))
	for _, f := range from {
		for _, t := range to {
			trips = append(trips, Trip{From: f, To: t, Points: points})
		}
	}
	return trips, nil
}

// StationConnectivity answers whether two stations are joined by a player's
// routes.
type StationConnectivity interface {
	Connected(s1, s2 Station) bool
}

func (t Trip) PointsFor(conn StationConnectivity) int {
	if conn.Connected(t.From, t.To) {
		return t.Points
	}
	return -t.Points
}

type Ticket struct {
	trips []Trip
	text  string
}

// NewTicket builds a ticket from trips sharing one origin name. Countries are
// several stations with the same name.
func NewTicket(trips []Trip) (*Ticket, error) {
	if len(trips) == 0 {
		return nil, invalidArgument("ticket without trips")
	}
	origin := trips[0].From.Name
	for _, t := range trips {
		if t.From.Name != origin {
			return nil, invalidArgument("ticket trips leave from %s and %s", origin, t.From.Name)
		}
	}
	return &Ticket{trips: slices.Clone(trips), text: ticketText(trips)}, nil
}

func NewSimpleTicket(from, to Station, points int) (*Ticket, error) {
	trip, err := NewTrip(from, to, points)
	if err != nil {
		return nil, err
	}
	return NewTicket([]Trip{trip})
}

func ticketText(trips []Trip) string {
	var destinations []string
	for _, t := range trips {
		d := fmt.Sprintf("%s (%d)", t.To.Name, t.Points)
		if !slices.Contains(destinations, d) {
			destinations = append(destinations, d)
		}
	}
	slices.Sort(destinations)
	if len(destinations) == 1 {
		return fmt.Sprintf("%s - %s", trips[0].From.Name, destinations[0])
	}
	return fmt.Sprintf("%s - {%s}", trips[0].From.Name, strings.Join(destinations, ", "))
}

func (t *Ticket) Trips() []Trip {
	return slices.Clone(t.trips)
}

func (t *Ticket) Text() string {
	return t.text
}

// Points is the best outcome among the ticket's trips.
func (t *Ticket) Points(conn StationConnectivity) int {
	best := t.trips[0].PointsFor(conn)
	for _, trip := range t.trips[1:] {
		best = max(best, trip.PointsFor(conn))
	}
	return best
}

func (t *Ticket) Compare(other *Ticket) int {
	return strings.Compare(t.text, other.text)
}

func (t *Ticket) String() string {
	return t.text
}

package game

import "slices"

// StationPartition groups stations into connected components. Each entry
// points directly at its component's representative.
type StationPartition struct {
	links []int
}

func (p StationPartition) representative(id int) int {
	return p.links[id]
}

// Connected reports whether s1 and s2 are in the same component. Stations
// outside the partition are connected only to themselves.
func (p StationPartition) Connected(s1, s2 Station) bool {
	if s1.ID >= len(p.links) || s2.ID >= len(p.links) {
		return s1.ID == s2.ID
	}
	return p.representative(s1.ID) == p.representative(s2.ID)
}

type StationPartitionBuilder struct {
	links []int
}

// NewStationPartitionBuilder starts with every station in its own component.
func NewStationPartitionBuilder(stationCount int) (*StationPartitionBuilder, error) {
	if stationCount < 0 {
		return nil, invalidArgument("negative station count %d", stationCount)
	}
	links := make([]int, stationCount)
	for i := range links {
		links[i] = i
	}
	return &StationPartitionBuilder{links: links}, nil
}

func (b *StationPartitionBuilder) representative(id int) int {
	for b.links[id] != id {
		id = b.links[id]
	}
	return id
}

// Connect merges the components of s1 and s2.
func (b *StationPartitionBuilder) Connect(s1, s2 Station) *StationPartitionBuilder {
	b.links[b.representative(s1.ID)] = b.representative(s2.ID)
	return b
}

// Build flattens every chain so that lookups in the partition are direct.
func (b *StationPartitionBuilder) Build() StationPartition {
	links := slices.Clone(b.links)
	for i := range links {
		links[i] = b.representative(i)
	}
	return StationPartition{links: links}
}

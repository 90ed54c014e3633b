package game

import (
	"testing"

	"tchu/utils"

	"github.com/stretchr/testify/require"
)

func TestCreateMap(t *testing.T) {
	m := CreateMap()

	require.Len(t, m.Stations, len(stationAbbreviations))
	for i, s := range m.Stations {
		require.Equal(t, i, s.ID, "Station ids are positions")
	}

	ids := map[string]bool{}
	for _, r := range m.Routes {
		require.False(t, ids[r.ID()], "Duplicate route id %s", r.ID())
		ids[r.ID()] = true
	}

	texts := map[string]bool{}
	for _, tk := range m.Tickets {
		require.False(t, texts[tk.Text()], "Duplicate ticket %s", tk.Text())
		texts[tk.Text()] = true
	}
	require.GreaterOrEqual(t, len(m.Tickets), 10, "Enough tickets for both initial draws")

	bern, ok := m.Station("BER")
	require.True(t, ok)
	require.Equal(t, "Bern", bern.Name)
	atBern := utils.CountFunc(m.Routes, func(r *Route) bool { return r.Station1() == bern || r.Station2() == bern })
	require.Equal(t, 8, atBern, "Bern has eight routes")

	r1, _ := m.Route("BER_FRI_1")
	r2, _ := m.Route("BER_FRI_2")
	require.True(t, r1.ParallelTo(r2))

	simple := m.Tickets[0]
	require.Equal(t, "Basel - Bern (5)", simple.Text())
	require.Len(t, simple.Trips(), 1, "Station to station rows hold one trip")

	countryTicket := m.Tickets[len(m.Tickets)-2]
	require.Equal(t, "Deutschland - {France (5), Italia (13), Österreich (5)}", countryTicket.Text())
}

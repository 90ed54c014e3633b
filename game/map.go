package game

import "fmt"

// Map holds the stations, routes and tickets of the board. Routes and tickets
// are pointers: every component of one game must share the same Map.
type Map struct {
	Stations []Station
	Routes   []*Route
	Tickets  []*Ticket

	stationsByAbbrev map[string]Station
	routesByID       map[string]*Route
}

// Station returns the station with the given abbreviation.
func (m *Map) Station(abbrev string) (Station, bool) {
	s, ok := m.stationsByAbbrev[abbrev]
	return s, ok
}

func (m *Map) Route(id string) (*Route, bool) {
	r, ok := m.routesByID[id]
	return r, ok
}

// AllTickets returns every ticket of the map as a bag.
func (m *Map) AllTickets() Bag[*Ticket] {
	return BagOf(m.Tickets...)
}

// CreateMap builds the Swiss map from the data tables below.
func CreateMap() *Map {
	m := &Map{
		stationsByAbbrev: make(map[string]Station),
		routesByID:       make(map[string]*Route),
	}
	for id, abbrev := range stationAbbreviations {
		s := Station{ID: id, Name: stationNames[abbrev]}
		m.Stations = append(m.Stations, s)
		m.stationsByAbbrev[abbrev] = s
	}

	for _, d := range routeData {
		r, err := NewRoute(d.id, m.mustStation(d.from), m.mustStation(d.to), d.length, d.level, d.paint)
		if err != nil {
			panic(err)
		}
		m.Routes = append(m.Routes, r)
		m.routesByID[r.ID()] = r
	}

	for _, d := range ticketData {
		t, err := m.ticket(d)
		if err != nil {
			panic(err)
		}
		m.Tickets = append(m.Tickets, t)
	}
	return m
}

// ticket builds a row; a row between two plain stations is a simple ticket.
func (m *Map) ticket(d ticketRow) (*Ticket, error) {
	if len(d.to) == 1 {
		from, to := m.group(d.from), m.group(d.to[0].group)
		if len(from) == 1 && len(to) == 1 {
			return NewSimpleTicket(from[0], to[0], d.to[0].points)
		}
	}
	var trips []Trip
	for _, dest := range d.to {
		more, err := AllTrips(m.group(d.from), m.group(dest.group), dest.points)
		if err != nil {
			return nil, err
		}
		trips = append(trips, more...)
	}
	return NewTicket(trips)
}

func (m *Map) mustStation(abbrev string) Station {
	s, ok := m.stationsByAbbrev[abbrev]
	if !ok {
		panic(fmt.Sprintf("unknown station %q", abbrev))
	}
	return s
}

// group expands a country name to its border stations; any other value is a
// single station abbreviation.
func (m *Map) group(name string) []Station {
	if abbrevs, ok := countries[name]; ok {
		stations := make([]Station, len(abbrevs))
		for i, a := range abbrevs {
			stations[i] = m.mustStation(a)
		}
		return stations
	}
	return []Station{m.mustStation(name)}
}

// GLOBAL DATA. Station ids are the index in stationAbbreviations.

var stationAbbreviations = []string{
	"BAD", "BAL", "BEL", "BER", "BRI", "BRU", "COI", "DAV", "DEL", "FRI",
	"GEN", "INT", "KRE", "LAU", "LCF", "LOC", "LUC", "LUG", "MAR", "NEU",
	"OLT", "PAY", "SAR", "SCE", "SCZ", "SIO", "SOL", "STG", "VAD", "WAS",
	"WIN", "YVE", "ZOU", "ZUR",
	"DE1", "DE2", "DE3", "DE4", "DE5",
	"AT1", "AT2", "AT3",
	"IT1", "IT2", "IT3", "IT4", "IT5",
	"FR1", "FR2", "FR3", "FR4",
}

var stationNames = map[string]string{
	"BAD": "Baden", "BAL": "Basel", "BEL": "Bellinzona", "BER": "Bern",
	"BRI": "Brig", "BRU": "Brusio", "COI": "Chur", "DAV": "Davos",
	"DEL": "Delémont", "FRI": "Fribourg", "GEN": "Genève", "INT": "Interlaken",
	"KRE": "Kreuzlingen", "LAU": "Lausanne", "LCF": "La Chaux-de-Fonds",
	"LOC": "Locarno", "LUC": "Luzern", "LUG": "Lugano", "MAR": "Martigny",
	"NEU": "Neuchâtel", "OLT": "Olten", "PAY": "Payerne", "SAR": "Sargans",
	"SCE": "Schaffhausen", "SCZ": "Schwyz", "SIO": "Sion", "SOL": "Solothurn",
	"STG": "St. Gallen", "VAD": "Vaduz", "WAS": "Wassen", "WIN": "Winterthur",
	"YVE": "Yverdon", "ZOU": "Zug", "ZUR": "Zürich",
	"DE1": "Deutschland", "DE2": "Deutschland", "DE3": "Deutschland", "DE4": "Deutschland", "DE5": "Deutschland",
	"AT1": "Österreich", "AT2": "Österreich", "AT3": "Österreich",
	"IT1": "Italia", "IT2": "Italia", "IT3": "Italia", "IT4": "Italia", "IT5": "Italia",
	"FR1": "France", "FR2": "France", "FR3": "France", "FR4": "France",
}

var countries = map[string][]string{
	"DE": {"DE1", "DE2", "DE3", "DE4", "DE5"},
	"AT": {"AT1", "AT2", "AT3"},
	"IT": {"IT1", "IT2", "IT3", "IT4", "IT5"},
	"FR": {"FR1", "FR2", "FR3", "FR4"},
}

type routeRow struct {
	id       string
	from, to string
	length   int
	level    Level
	paint    Paint
}

const (
	og = Overground
	ug = Underground
)

var routeData = []routeRow{
	{"AT1_STG_1", "AT1", "STG", 4, ug, AnyColor()},
	{"BAD_BAL_1", "BAD", "BAL", 3, ug, Painted(Red)},
	{"BAD_OLT_1", "BAD", "OLT", 2, og, Painted(Violet)},
	{"BAD_ZUR_1", "BAD", "ZUR", 1, og, Painted(Yellow)},
	{"BAL_DE1_1", "BAL", "DE1", 1, ug, Painted(Blue)},
	{"BAL_DEL_1", "BAL", "DEL", 2, ug, Painted(Yellow)},
	{"BAL_OLT_1", "BAL", "OLT", 2, ug, Painted(Orange)},
	{"BEL_LOC_1", "BEL", "LOC", 1, ug, Painted(Black)},
	{"BEL_LUG_1", "BEL", "LUG", 1, ug, Painted(Red)},
	{"BEL_LUG_2", "BEL", "LUG", 1, ug, Painted(Yellow)},
	{"BEL_WAS_1", "BEL", "WAS", 4, ug, AnyColor()},
	{"BEL_WAS_2", "BEL", "WAS", 4, ug, AnyColor()},
	{"BER_BRI_1", "BER", "BRI", 4, ug, AnyColor()},
	{"BER_FRI_1", "BER", "FRI", 1, og, Painted(Orange)},
	{"BER_FRI_2", "BER", "FRI", 1, og, Painted(Yellow)},
	{"BER_INT_1", "BER", "INT", 3, og, Painted(Blue)},
	{"BER_LUC_1", "BER", "LUC", 4, og, AnyColor()},
	{"BER_LUC_2", "BER", "LUC", 4, og, AnyColor()},
	{"BER_NEU_1", "BER", "NEU", 2, og, Painted(Red)},
	{"BER_SOL_1", "BER", "SOL", 2, og, Painted(Black)},
	{"BRI_INT_1", "BRI", "INT", 2, ug, Painted(White)},
	{"BRI_IT5_1", "BRI", "IT5", 3, ug, Painted(Green)},
	{"BRI_LOC_1", "BRI", "LOC", 6, ug, AnyColor()},
	{"BRI_SIO_1", "BRI", "SIO", 3, ug, Painted(Black)},
	{"BRI_WAS_1", "BRI", "WAS", 4, ug, Painted(Red)},
	{"BRU_COI_1", "BRU", "COI", 5, ug, Painted(Blue)},
	{"BRU_DAV_1", "BRU", "DAV", 4, ug, Painted(Blue)},
	{"BRU_IT2_1", "BRU", "IT2", 2, og, Painted(Green)},
	{"COI_DAV_1", "COI", "DAV", 2, ug, Painted(Violet)},
	{"COI_SAR_1", "COI", "SAR", 1, ug, Painted(White)},
	{"COI_WAS_1", "COI", "WAS", 5, ug, AnyColor()},
	{"DAV_AT3_1", "DAV", "AT3", 3, ug, AnyColor()},
	{"DAV_IT1_1", "DAV", "IT1", 3, ug, AnyColor()},
	{"DAV_SAR_1", "DAV", "SAR", 3, ug, Painted(Black)},
	{"DE2_SCE_1", "DE2", "SCE", 1, og, Painted(Yellow)},
	{"DE3_KRE_1", "DE3", "KRE", 1, og, Painted(Orange)},
	{"DE4_SCE_1", "DE4", "SCE", 1, og, Painted(White)},
	{"DE5_STG_1", "DE5", "STG", 2, og, AnyColor()},
	{"DEL_FR4_1", "DEL", "FR4", 2, og, Painted(Black)},
	{"DEL_LCF_1", "DEL", "LCF", 3, ug, Painted(White)},
	{"DEL_SOL_1", "DEL", "SOL", 1, ug, Painted(Violet)},
	{"FR1_MAR_1", "FR1", "MAR", 2, ug, AnyColor()},
	{"FR2_GEN_1", "FR2", "GEN", 1, og, Painted(Yellow)},
	{"FR3_LCF_1", "FR3", "LCF", 2, ug, Painted(Green)},
	{"FRI_LAU_1", "FRI", "LAU", 3, og, Painted(Red)},
	{"FRI_LAU_2", "FRI", "LAU", 3, og, Painted(Violet)},
	{"FRI_PAY_1", "FRI", "PAY", 1, og, Painted(Yellow)},
	{"GEN_LAU_1", "GEN", "LAU", 4, og, Painted(Blue)},
	{"GEN_LAU_2", "GEN", "LAU", 4, og, Painted(White)},
	{"GEN_YVE_1", "GEN", "YVE", 6, og, AnyColor()},
	{"INT_LUC_1", "INT", "LUC", 4, og, Painted(Violet)},
	{"IT3_LUG_1", "IT3", "LUG", 2, ug, Painted(White)},
	{"IT4_LOC_1", "IT4", "LOC", 2, ug, Painted(Orange)},
	{"KRE_SCE_1", "KRE", "SCE", 3, ug, Painted(Violet)},
	{"KRE_STG_1", "KRE", "STG", 1, og, Painted(Green)},
	{"KRE_WIN_1", "KRE", "WIN", 2, og, Painted(White)},
	{"LAU_MAR_1", "LAU", "MAR", 4, ug, Painted(Orange)},
	{"LAU_NEU_1", "LAU", "NEU", 4, og, AnyColor()},
	{"LCF_NEU_1", "LCF", "NEU", 1, ug, Painted(Orange)},
	{"LCF_YVE_1", "LCF", "YVE", 3, ug, Painted(Yellow)},
	{"LOC_LUG_1", "LOC", "LUG", 1, ug, Painted(Violet)},
	{"LUC_OLT_1", "LUC", "OLT", 3, og, Painted(Green)},
	{"LUC_SCZ_1", "LUC", "SCZ", 1, og, Painted(Blue)},
	{"LUC_ZOU_1", "LUC", "ZOU", 1, og, Painted(Orange)},
	{"LUC_ZOU_2", "LUC", "ZOU", 1, og, Painted(Yellow)},
	{"MAR_SIO_1", "MAR", "SIO", 2, ug, Painted(Green)},
	{"NEU_PAY_1", "NEU", "PAY", 2, og, Painted(Yellow)},
	{"NEU_SOL_1", "NEU", "SOL", 4, og, Painted(Green)},
	{"NEU_YVE_1", "NEU", "YVE", 2, og, Painted(Black)},
	{"OLT_SOL_1", "OLT", "SOL", 1, og, Painted(Blue)},
	{"OLT_ZUR_1", "OLT", "ZUR", 3, og, Painted(White)},
	{"PAY_YVE_1", "PAY", "YVE", 2, og, Painted(Violet)},
	{"SAR_VAD_1", "SAR", "VAD", 1, ug, Painted(Orange)},
	{"SCE_WIN_1", "SCE", "WIN", 1, og, Painted(Black)},
	{"SCE_ZUR_1", "SCE", "ZUR", 3, og, Painted(Orange)},
	{"SCZ_WAS_1", "SCZ", "WAS", 2, ug, Painted(Green)},
	{"SCZ_WAS_2", "SCZ", "WAS", 2, ug, Painted(Yellow)},
	{"SCZ_ZOU_1", "SCZ", "ZOU", 1, og, Painted(Black)},
	{"SCZ_ZOU_2", "SCZ", "ZOU", 1, og, Painted(White)},
	{"STG_VAD_1", "STG", "VAD", 2, ug, Painted(Blue)},
	{"STG_WIN_1", "STG", "WIN", 4, og, Painted(Red)},
	{"STG_ZUR_1", "STG", "ZUR", 4, og, Painted(Black)},
	{"VAD_AT2_1", "VAD", "AT2", 1, ug, Painted(Red)},
	{"WIN_ZUR_1", "WIN", "ZUR", 1, og, Painted(Blue)},
	{"WIN_ZUR_2", "WIN", "ZUR", 1, og, Painted(Violet)},
	{"ZOU_ZUR_1", "ZOU", "ZUR", 1, og, Painted(Green)},
	{"ZOU_ZUR_2", "ZOU", "ZUR", 1, og, Painted(Red)},
}

type destination struct {
	group  string
	points int
}

type ticketRow struct {
	from string
	to   []destination
}

func single(from, to string, points int) ticketRow {
	return ticketRow{from: from, to: []destination{{to, points}}}
}

var ticketData = []ticketRow{
	single("BAL", "BER", 5),
	single("BAL", "BRI", 10),
	single("BAL", "STG", 8),
	single("BER", "COI", 10),
	single("BER", "LUG", 12),
	single("BER", "SCE", 8),
	single("BER", "ZUR", 6),
	single("FRI", "LUC", 8),
	single("GEN", "BAL", 13),
	single("GEN", "BER", 8),
	single("GEN", "SIO", 10),
	single("GEN", "ZUR", 14),
	single("INT", "WIN", 7),
	single("KRE", "ZOU", 5),
	single("LAU", "INT", 7),
	single("LAU", "SCE", 13),
	single("LCF", "LUC", 8),
	single("LCF", "ZUR", 10),
	single("LUC", "VAD", 6),
	single("LUG", "COI", 10),
	single("LUG", "DAV", 8),
	single("MAR", "ZUR", 13),
	single("NEU", "WIN", 9),
	single("OLT", "SCZ", 5),
	single("SIO", "DAV", 11),
	single("SOL", "BEL", 11),
	single("YVE", "ZUR", 11),
	single("ZUR", "BRI", 11),
	single("ZUR", "LUG", 9),
	single("ZUR", "VAD", 6),
	{from: "BAL", to: []destination{{"DE", 5}, {"AT", 14}, {"IT", 11}}},
	{from: "BER", to: []destination{{"DE", 6}, {"AT", 11}, {"IT", 8}, {"FR", 5}}},
	{from: "ZUR", to: []destination{{"DE", 3}, {"AT", 7}, {"IT", 11}, {"FR", 10}}},
	{from: "DE", to: []destination{{"AT", 5}, {"IT", 13}, {"FR", 5}}},
	{from: "FR", to: []destination{{"DE", 5}, {"AT", 14}, {"IT", 11}}},
}

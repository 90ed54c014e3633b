package metrics

import (
	"sync/atomic"
	"time"

	"tchu/player"
)

// GameMetric describes how a game was played, turn kind by turn kind.
type GameMetric struct {
	StartTime    time.Time
	Duration     time.Duration
	TicketDraws  int
	CardDraws    int
	Claims       int
	Destructions int
}

type Collector interface {
	Start()
	AddTurn(kind player.TurnKind)
	Complete() GameMetric
}

type collector struct {
	startTime time.Time
	turns     [4]atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	for i := range m.turns {
		m.turns[i].Store(0)
	}
}

func (m *collector) AddTurn(kind player.TurnKind) {
	if kind < 0 || int(kind) >= len(m.turns) {
		return
	}
	m.turns[kind].Add(1)
}

func (m *collector) Complete() GameMetric {
	return GameMetric{
		StartTime:    m.startTime,
		Duration:     time.Since(m.startTime),
		TicketDraws:  int(m.turns[player.DrawTickets].Load()),
		CardDraws:    int(m.turns[player.DrawCards].Load()),
		Claims:       int(m.turns[player.ClaimRoute].Load()),
		Destructions: int(m.turns[player.DestroyRoute].Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                  {}
func (m *dummyCollector) AddTurn(player.TurnKind) {}
func (m *dummyCollector) Complete() GameMetric    { return GameMetric{} }

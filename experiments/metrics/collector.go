package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric describes the work a strategy did to pick one move.
type SearchMetric struct {
	Goroutines int
	Duration   time.Duration
	Candidates int
	Rollouts   int
	Wins       int
}

type MoveMetric struct {
	Step     int
	Player   string // Disc name
	Strategy string
	Play     string // Transcript token
	Flips    int
	SearchMetric
}

type GameMetric struct {
	Dark       string // Strategy name
	Light      string // Strategy name
	Winner     string // Disc name, "none" on a tie
	DarkScore  int
	LightScore int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	Transcript string
}

// Collector gathers search statistics. Add methods are safe to call from
// concurrent rollout workers.
type Collector interface {
	Start(goroutines, candidates int)
	AddRollout()
	AddWin()
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	candidates int
	startTime  time.Time
	rollouts   atomic.Int32
	wins       atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, candidates int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.candidates = candidates
	m.rollouts.Store(0)
	m.wins.Store(0)
}

func (m *collector) AddRollout() {
	m.rollouts.Add(1)
}

func (m *collector) AddWin() {
	m.wins.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Candidates: m.candidates,
		Rollouts:   int(m.rollouts.Load()),
		Wins:       int(m.wins.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, candidates int) {}
func (m *dummyCollector) AddRollout()                      {}
func (m *dummyCollector) AddWin()                          {}
func (m *dummyCollector) Complete() SearchMetric           { return SearchMetric{} }

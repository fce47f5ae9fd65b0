package engine

import (
	"time"

	"othello/experiments/metrics"
	"othello/game"
	"othello/strategy"

	"github.com/rs/zerolog/log"
)

// Searcher is a strategy that reports what its choice cost.
type Searcher interface {
	Search(g *game.Game) (game.ValidMove, metrics.SearchMetric, bool)
}

// Local plays two strategies against each other in process.
type Local struct {
	Game  *game.Game
	Dark  strategy.Strategy
	Light strategy.Strategy
}

var _ Engine = (*Local)(nil)

func LocalEngine(dark, light strategy.Strategy) *Local {
	if dark == nil || light == nil {
		panic("need a strategy for both players")
	}
	return &Local{
		Game:  game.NewGame(),
		Dark:  dark,
		Light: light,
	}
}

// Run executes the game loop until the game is complete.
func (e *Local) Run() (game.Disc, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		Dark:      e.Dark.Name(),
		Light:     e.Light.Name(),
		StartTime: time.Now(),
	}
	log.Debug().Msgf("%s (dark) against %s (light)", gameMetric.Dark, gameMetric.Light)

	var moveMetrics []metrics.MoveMetric
	for step := 1; !e.Game.Complete; step++ {
		if step > MaxMoves {
			log.Warn().Msgf("stopped after %d moves without completing", MaxMoves)
			break
		}

		current := e.player(e.Game.Turn)
		vm, searchMetric, ok := e.choose(current)
		moveMetric := metrics.MoveMetric{
			Step:         step,
			Player:       e.Game.Turn.Name(),
			Strategy:     current.Name(),
			SearchMetric: searchMetric,
		}

		if ok {
			moveMetric.Play = game.MovePlay(vm.Position).String()
			moveMetric.Flips = vm.Score()
			e.Game.Play(vm)
		} else {
			moveMetric.Play = game.PassPlay().String()
			e.Game.Pass()
		}
		moveMetrics = append(moveMetrics, moveMetric)
	}

	winner := e.Game.Winner()
	gameMetric.Winner = winner.Name()
	gameMetric.DarkScore, gameMetric.LightScore = e.Game.Score()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(e.Game.Transcript)
	gameMetric.Transcript = game.FormatTranscript(e.Game.Transcript, ",")

	log.Debug().Msgf("game complete with winner %s (%d-%d)", gameMetric.Winner, gameMetric.DarkScore, gameMetric.LightScore)
	return winner, gameMetric, moveMetrics
}

func (e *Local) player(turn game.Disc) strategy.Strategy {
	if turn == game.Dark {
		return e.Dark
	}
	return e.Light
}

func (e *Local) choose(s strategy.Strategy) (game.ValidMove, metrics.SearchMetric, bool) {
	if searcher, ok := s.(Searcher); ok {
		return searcher.Search(e.Game)
	}

	start := time.Now()
	vm, ok := s.NextPlay(e.Game)
	return vm, metrics.SearchMetric{Goroutines: 1, Duration: time.Since(start)}, ok
}

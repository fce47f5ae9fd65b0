package engine

import (
	"othello/experiments/metrics"
	"othello/game"
)

// MaxMoves bounds a game loop. A game of Othello ends well before it: at most
// 60 placements plus the passes between them.
const MaxMoves = 2 * game.BoardCells

type Engine interface {
	// Run plays the game to completion and returns the winner, None on a tie
	Run() (winner game.Disc, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

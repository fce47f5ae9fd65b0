// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines to use.
const GO_ROUTINES = 8

// ROLLOUTS defines the number of random playouts Monte runs per candidate move.
const ROLLOUTS = 100

// GAMES defines the number of games in a versus experiment.
const GAMES = 100

// STRESS_GAMES defines the number of random games the replay grinder checks.
const STRESS_GAMES = 1000

// OUTPUT_DIR is where experiment records are written.
const OUTPUT_DIR = "experiments/results"

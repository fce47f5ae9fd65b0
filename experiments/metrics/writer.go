package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// AgentConfig identifies one side of a matchup.
type AgentConfig struct {
	ID         int
	Strategy   string
	Rollouts   int
	Goroutines int
}

type GameRecord struct {
	ID    int
	Dark  int // AgentConfig.ID
	Light int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// Tally is the aggregate result of a series of games between two agents.
type Tally struct {
	Dark        string
	Light       string
	Games       int
	DarkWins    int
	LightWins   int
	Ties        int
	DarkPoints  int
	LightPoints int
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped directory for one experiment run under
// root/name.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir is the directory the writer stores its files in.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "strategy", "rollouts", "goroutines"}
	rows := make([][]string, len(configs))
	for i, config := range configs {
		rows[i] = []string{
			strconv.Itoa(config.ID),
			config.Strategy,
			strconv.Itoa(config.Rollouts),
			strconv.Itoa(config.Goroutines),
		}
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "dark", "light", "winner", "dark_score", "light_score", "total_moves", "start_time", "end_time", "duration", "transcript"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Dark),
			strconv.Itoa(record.Light),
			record.Winner,
			strconv.Itoa(record.DarkScore),
			strconv.Itoa(record.LightScore),
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			record.Transcript,
		}
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "strategy", "play", "flips", "duration", "candidates", "rollouts", "wins"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			record.Strategy,
			record.Play,
			strconv.Itoa(record.Flips),
			record.Duration.String(),
			strconv.Itoa(record.Candidates),
			strconv.Itoa(record.Rollouts),
			strconv.Itoa(record.Wins),
		}
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) WriteTallies(tallies []Tally) error {
	header := []string{"dark", "light", "games", "dark_wins", "light_wins", "ties", "dark_points", "light_points"}
	rows := make([][]string, len(tallies))
	for i, t := range tallies {
		rows[i] = []string{
			t.Dark,
			t.Light,
			strconv.Itoa(t.Games),
			strconv.Itoa(t.DarkWins),
			strconv.Itoa(t.LightWins),
			strconv.Itoa(t.Ties),
			strconv.Itoa(t.DarkPoints),
			strconv.Itoa(t.LightPoints),
		}
	}
	return w.write("tallies.csv", header, rows)
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	return nil
}

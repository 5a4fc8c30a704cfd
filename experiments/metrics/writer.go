package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	KindMinimax = "minimax"
	KindRandom  = "random"
	KindRemote  = "remote"
)

// AgentConfig describes one player taking part in an experiment.
type AgentConfig struct {
	ID        int    `yaml:"id"`
	Kind      string `yaml:"kind"`       // KindMinimax, KindRandom or KindRemote
	Depth     int    `yaml:"depth"`      // Search depth, minimax and remote
	NoPruning bool   `yaml:"no_pruning"` // Plain minimax, minimax only
	Seed      uint64 `yaml:"seed"`       // Random only, offset by the game ID
	URL       string `yaml:"url"`        // Agent server, remote only
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID of the agent playing player one
	Agent2 int // AgentConfig.ID of the agent playing player two
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a fresh <outDir>/<name>/<timestamp>-<suffix> directory to
// hold the CSV files of one experiment run. Runs started in the same second
// get different directories.
func NewWriter(outDir, name string) (*Writer, error) {
	parent := filepath.Join(outDir, name)
	err := os.MkdirAll(parent, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir, err := os.MkdirTemp(parent, timestamp+"-")
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "depth", "pruning", "seed", "url"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Depth),
			strconv.FormatBool(!config.NoPruning),
			strconv.FormatUint(config.Seed, 10),
			config.URL,
		})
	}

	err := w.write("agent_configs.csv", header, rows)
	if err != nil {
		return fmt.Errorf("failed to write agent configs: %w", err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			strconv.Itoa(record.StartingPlayer),
			strconv.Itoa(record.Winner),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}

	err := w.write("game_records.csv", header, rows)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	return nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "column", "value", "depth", "pruning", "duration", "nodes", "leaves", "terminals", "cutoffs"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			strconv.Itoa(record.Column),
			strconv.Itoa(record.Value),
			strconv.Itoa(record.Depth),
			strconv.FormatBool(record.Pruning),
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.Terminals),
			strconv.Itoa(record.Cutoffs),
		})
	}

	err := w.write("move_records.csv", header, rows)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	return nil
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.baseDir, file))
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return err
	}
	err = writer.WriteAll(rows) // Flushes
	if err != nil {
		return err
	}
	return f.Close()
}

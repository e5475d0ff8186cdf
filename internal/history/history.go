// Package history exports finished games as transcripts: a readable text log
// and a JSON document of the round records.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lox/warforbots/internal/game"
)

// Transcript is the exported form of one game
type Transcript struct {
	ID      string             `json:"id"`
	Seed    int64              `json:"seed"`
	Started time.Time          `json:"started"`
	Rounds  int                `json:"rounds"`
	Over    bool               `json:"over"`
	Winner  game.Side          `json:"winner"`
	Records []game.RoundRecord `json:"records"`
}

// NewTranscript captures the current state of g
func NewTranscript(g *game.Game, started time.Time) Transcript {
	return Transcript{
		ID:      g.ID(),
		Seed:    g.Seed(),
		Started: started,
		Rounds:  g.Round(),
		Over:    g.IsOver(),
		Winner:  g.Winner(),
		Records: g.Log(),
	}
}

// Writer stores transcripts
type Writer interface {
	Write(t Transcript) error
}

// FileWriter writes each transcript as war_<id>.txt and war_<id>.json
type FileWriter struct {
	directory string
	formatter *game.Formatter
}

// NewFileWriter creates a writer storing transcripts in directory
func NewFileWriter(directory string) *FileWriter {
	return &FileWriter{
		directory: directory,
		formatter: game.NewFormatter(game.FormattingOptions{ShowPile: true}),
	}
}

// Write stores t, creating the directory if needed
func (w *FileWriter) Write(t Transcript) error {
	if err := os.MkdirAll(w.directory, 0o755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode transcript %s: %w", t.ID, err)
	}
	if err := writeFileAtomic(w.path(t.ID, "json"), append(data, '\n'), 0o644); err != nil {
		return err
	}

	if err := writeFileAtomic(w.path(t.ID, "txt"), []byte(w.Text(t)), 0o644); err != nil {
		return err
	}
	return nil
}

// Text renders the readable form of a transcript
func (w *FileWriter) Text(t Transcript) string {
	header := fmt.Sprintf("Game %s (seed %d) started %s\n\n", t.ID, t.Seed, t.Started.Format(time.RFC3339))
	body := w.formatter.FormatLog(t.Records)

	var footer string
	switch {
	case !t.Over:
		footer = fmt.Sprintf("Unfinished after %d rounds", t.Rounds)
	case t.Winner == game.NoSide:
		footer = fmt.Sprintf("Drawn after %d rounds", t.Rounds)
	default:
		footer = fmt.Sprintf("%s wins after %d rounds", t.Winner, t.Rounds)
	}
	return header + body + "\n\n" + footer + "\n"
}

func (w *FileWriter) path(id, ext string) string {
	return filepath.Join(w.directory, fmt.Sprintf("war_%s.%s", id, ext))
}

// NoOpWriter discards transcripts
type NoOpWriter struct{}

// Write does nothing
func (NoOpWriter) Write(Transcript) error { return nil }

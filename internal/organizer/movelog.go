package organizer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alejandrosb8/Smart-Desktop/internal/model"
)

// LogPath returns the movement log location for a target directory.
func LogPath(targetDir string) string {
	return filepath.Join(targetDir, model.MovementLogFile)
}

// readMovementLog loads the movement log of a target directory. A missing
// log returns os.ErrNotExist.
func readMovementLog(targetDir string) ([]model.MovementLogEntry, error) {
	data, err := os.ReadFile(LogPath(targetDir))
	if err != nil {
		return nil, err
	}

	var entries []model.MovementLogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("movement log is corrupted: %w", err)
	}

	return entries, nil
}

// writeMovementLog persists the log atomically: write a temp file in the
// same directory, then rename over the destination.
func writeMovementLog(targetDir string, entries []model.MovementLogEntry) error {
	if entries == nil {
		entries = []model.MovementLogEntry{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode movement log: %w", err)
	}

	tmp, err := os.CreateTemp(targetDir, model.MovementLogFile+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp log: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write movement log: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp log: %w", err)
	}

	if err := os.Rename(tmp.Name(), LogPath(targetDir)); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace movement log: %w", err)
	}

	return nil
}

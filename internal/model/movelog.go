package model

import "time"

// MovementLogFile is the name of the per-directory movement log. Only one
// log exists per target directory at a time; a new apply run replaces it.
const MovementLogFile = "movement_log.json"

// MovementLogEntry records one executed move. The log is the single
// source of truth for undo: revert never reconstructs original paths by
// any other means.
type MovementLogEntry struct {
	MovedAt      time.Time `json:"moved_at"`
	OriginalPath string    `json:"original_path"`
	NewPath      string    `json:"new_path"`
	Category     string    `json:"category"`
}

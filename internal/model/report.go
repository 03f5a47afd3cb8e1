package model

// MoveResult records one completed relocation (or restoration).
type MoveResult struct {
	Source      string
	Destination string
	Category    string
}

// OperationFailure records a per-file failure with enough detail to act on.
type OperationFailure struct {
	Path   string
	Reason string
}

// ApplyReport enumerates the outcome of applying a plan.
type ApplyReport struct {
	Moved    []MoveResult
	Failures []OperationFailure
	Skipped  []string
	Excluded []string
}

// RevertReport enumerates the outcome of replaying a movement log in
// reverse.
type RevertReport struct {
	Restored []MoveResult
	Failures []OperationFailure
}

// CleanReport enumerates what cleanup removed.
type CleanReport struct {
	RemovedDirs []string
	Failures    []OperationFailure
	LogRemoved  bool
}

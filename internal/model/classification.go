package model

// ClassificationMode selects which enrichment step runs before the AI call.
type ClassificationMode string

// Classification mode constants.
const (
	// ModeByName classifies from file name and metadata alone.
	ModeByName ClassificationMode = "by-name"
	// ModeByContent additionally supplies a bounded content excerpt for
	// supported formats; unsupported formats fall back to by-name.
	ModeByContent ClassificationMode = "by-content"
)

// SkipLabel is the pseudo-category the AI may answer with when a file must
// not be moved. It is never a folder and causes no move.
const SkipLabel = "SKIP"

// ClassificationResult is the verdict for a single eligible file: a
// category from the permitted set, SKIP, or a per-file failure. Failures
// are collected, never thrown, so one bad file cannot abort the batch.
type ClassificationResult struct {
	Err       error
	Category  string
	Reasoning string
	File      FileEntry
}

// Skipped reports whether the file was classified as SKIP.
func (r ClassificationResult) Skipped() bool {
	return r.Err == nil && r.Category == SkipLabel
}

// Failed reports whether classification of this file failed.
func (r ClassificationResult) Failed() bool {
	return r.Err != nil
}

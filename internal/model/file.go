// Package model defines the core domain models used throughout the application.
package model

import (
	"strings"
	"time"
)

// FileEntry is an immutable snapshot of a single file in the target
// directory, taken once per run. Later filesystem changes are not
// reflected in it.
type FileEntry struct {
	ModifiedAt time.Time
	Path       string
	Name       string
	Ext        string
	MIMEType   string
	Excerpt    string
	ExcludedBy string
	Size       int64
	Excluded   bool
}

// IsShortcut reports whether the entry is a Windows shortcut. Shortcuts
// are classified by their base name rather than as a format of their own.
func (f FileEntry) IsShortcut() bool {
	return f.Ext == ".lnk"
}

// Stem returns the file name without its extension.
func (f FileEntry) Stem() string {
	return strings.TrimSuffix(f.Name, f.Ext)
}

package scan

import (
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alejandrosb8/Smart-Desktop/internal/extract"
	"github.com/alejandrosb8/Smart-Desktop/internal/model"
)

// Names the organizer itself writes into the target directory. They never
// enter classification.
var reservedNames = map[string]struct{}{
	model.MovementLogFile: {},
	"organizer.log":       {},
	"config.json":         {},
	".env":                {},
}

// Scanner produces immutable directory snapshots.
type Scanner struct {
	logger *slog.Logger
	rules  *Rules
}

// NewScanner creates a scanner with the given compiled exclusion rules.
func NewScanner(rules *Rules, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{rules: rules, logger: logger}
}

// Snapshot lists the regular files of dir in deterministic name order and
// applies the exclusion rules. In by-content mode it also attaches a
// bounded content excerpt for supported formats; extraction failures
// degrade that file to by-name classification rather than failing the
// snapshot.
func (s *Scanner) Snapshot(dir string, mode model.ClassificationMode) ([]model.FileEntry, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve target directory: %w", err)
	}

	dirEntries, err := os.ReadDir(absDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read target directory: %w", err)
	}

	sort.Slice(dirEntries, func(i, j int) bool {
		return dirEntries[i].Name() < dirEntries[j].Name()
	})

	var entries []model.FileEntry
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		name := de.Name()
		if _, reserved := reservedNames[name]; reserved {
			continue
		}

		info, infoErr := de.Info()
		if infoErr != nil {
			s.logger.Warn("skipping unreadable file", "file", name, "error", infoErr)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}

		entry := model.FileEntry{
			Path:       filepath.Join(absDir, name),
			Name:       name,
			Ext:        strings.ToLower(filepath.Ext(name)),
			Size:       info.Size(),
			ModifiedAt: info.ModTime().UTC(),
			MIMEType:   mimeType(name),
		}

		if reason, excluded := s.rules.Excluded(entry.Name, entry.Ext); excluded {
			entry.Excluded = true
			entry.ExcludedBy = reason
			s.logger.Info("excluded from classification", "file", name, "reason", reason)
			entries = append(entries, entry)
			continue
		}

		if mode == model.ModeByContent {
			excerpt, exErr := extract.Excerpt(entry.Path, entry.Ext, entry.MIMEType)
			if exErr != nil {
				s.logger.Warn("content extraction failed, falling back to by-name",
					"file", name, "error", exErr)
			}
			entry.Excerpt = excerpt
		}

		entries = append(entries, entry)
	}

	s.logger.Info("directory snapshot taken",
		"dir", absDir,
		"files", len(entries))

	return entries, nil
}

// mimeType guesses a MIME type from the file name, with sensible defaults
// for shortcuts and unknown formats.
func mimeType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".lnk" {
		return "application/x-ms-shortcut"
	}
	if mt := mime.TypeByExtension(ext); mt != "" {
		return mt
	}
	return "application/octet-stream"
}

package organizer

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alejandrosb8/Smart-Desktop/internal/model"
)

// Clean removes now-empty category folders and the movement log. Only
// folders whose name matches a configured category are candidates; empty
// folders that pre-existed the run under other names are never touched,
// and a folder still containing any file is left alone.
func (o *Organizer) Clean(ctx context.Context, targetDir string, categories []string) (model.CleanReport, error) {
	var report model.CleanReport

	known := make(map[string]struct{}, len(categories))
	for _, cat := range categories {
		known[cat] = struct{}{}
	}

	dirEntries, err := os.ReadDir(targetDir)
	if err != nil {
		return report, err
	}

	for _, de := range dirEntries {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if !de.IsDir() {
			continue
		}
		if _, ok := known[de.Name()]; !ok {
			continue
		}

		path := filepath.Join(targetDir, de.Name())
		empty, err := emptyTree(path)
		if err != nil {
			report.Failures = append(report.Failures, model.OperationFailure{
				Path:   path,
				Reason: err.Error(),
			})
			continue
		}
		if !empty {
			o.logger.Info("category folder not empty, keeping", "dir", path)
			continue
		}

		if err := os.RemoveAll(path); err != nil {
			report.Failures = append(report.Failures, model.OperationFailure{
				Path:   path,
				Reason: err.Error(),
			})
			continue
		}
		report.RemovedDirs = append(report.RemovedDirs, path)
		o.logger.Info("removed empty category folder", "dir", path)
	}

	switch err := os.Remove(LogPath(targetDir)); {
	case err == nil:
		report.LogRemoved = true
		o.logger.Info("movement log removed", "dir", targetDir)
	case errors.Is(err, os.ErrNotExist):
		// Nothing to delete.
	default:
		report.Failures = append(report.Failures, model.OperationFailure{
			Path:   LogPath(targetDir),
			Reason: err.Error(),
		})
	}

	return report, nil
}

// emptyTree reports whether a directory contains no files at any depth.
// Empty subdirectories do not count as content.
func emptyTree(root string) (bool, error) {
	empty := true
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			empty = false
			return fs.SkipAll
		}
		return nil
	})
	return empty, err
}

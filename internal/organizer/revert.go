package organizer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alejandrosb8/Smart-Desktop/internal/common"
	"github.com/alejandrosb8/Smart-Desktop/internal/model"
)

// Revert replays the movement log in reverse of the order its entries
// were appended, restoring every moved file to its original path. Entries
// that fail to restore stay in the log so a later retry can attempt them
// again; the log itself is deleted only by Clean.
func (o *Organizer) Revert(ctx context.Context, targetDir string) (model.RevertReport, error) {
	var report model.RevertReport

	entries, err := readMovementLog(targetDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return report, common.ErrNoMovementLog
		}
		return report, err
	}

	if len(entries) == 0 {
		o.logger.Info("no recorded movements to revert", "dir", targetDir)
		return report, nil
	}

	remaining := make(map[int]struct{})

	for i := len(entries) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			// Keep everything not yet restored revertable.
			for j := i; j >= 0; j-- {
				remaining[j] = struct{}{}
			}
			return report, errors.Join(err, rewriteLog(targetDir, entries, remaining))
		}

		entry := entries[i]
		if err := o.restoreFile(entry); err != nil {
			o.logger.Warn("revert failed for file",
				"file", filepath.Base(entry.NewPath), "error", err)
			report.Failures = append(report.Failures, model.OperationFailure{
				Path:   entry.NewPath,
				Reason: err.Error(),
			})
			remaining[i] = struct{}{}
			continue
		}

		report.Restored = append(report.Restored, model.MoveResult{
			Source:      entry.NewPath,
			Destination: entry.OriginalPath,
			Category:    entry.Category,
		})
		o.logger.Info("reverted",
			"file", filepath.Base(entry.NewPath))
	}

	if err := rewriteLog(targetDir, entries, remaining); err != nil {
		return report, err
	}

	o.logger.Info("revert finished",
		"restored", len(report.Restored),
		"failed", len(report.Failures))

	return report, nil
}

// restoreFile moves one file back to its original location without ever
// overwriting an unrelated file that now occupies it.
func (o *Organizer) restoreFile(entry model.MovementLogEntry) error {
	if _, err := os.Lstat(entry.NewPath); err != nil {
		return fmt.Errorf("moved file is missing: %w", err)
	}

	if _, err := os.Lstat(entry.OriginalPath); err == nil {
		return fmt.Errorf("original location is occupied: %s", entry.OriginalPath)
	}

	if err := os.MkdirAll(filepath.Dir(entry.OriginalPath), 0o755); err != nil {
		return fmt.Errorf("failed to recreate original folder: %w", err)
	}

	if err := os.Rename(entry.NewPath, entry.OriginalPath); err != nil {
		return fmt.Errorf("failed to move file back: %w", err)
	}

	return nil
}

// rewriteLog persists only the entries whose indices are still pending,
// preserving their original append order.
func rewriteLog(targetDir string, entries []model.MovementLogEntry, pending map[int]struct{}) error {
	kept := []model.MovementLogEntry{}
	for i, entry := range entries {
		if _, ok := pending[i]; ok {
			kept = append(kept, entry)
		}
	}
	return writeMovementLog(targetDir, kept)
}

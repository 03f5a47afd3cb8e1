package organizer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alejandrosb8/Smart-Desktop/internal/common"
	"github.com/alejandrosb8/Smart-Desktop/internal/model"
)

// ApplyOptions tunes plan execution.
type ApplyOptions struct {
	// Progress, when set, is invoked after every processed plan item.
	Progress func(done, total int)
	// Force discards an unconsumed movement log from a previous run.
	Force bool
}

// Apply executes a plan in order. Each successful move is appended to the
// movement log and the log is persisted after every append, so a mid-run
// crash loses at most the move in flight. Per-file failures are recorded
// and the batch continues. Cancellation takes effect only at plan item
// boundaries, never mid-move.
func (o *Organizer) Apply(ctx context.Context, plan model.Plan, opts ApplyOptions) (model.ApplyReport, error) {
	var report model.ApplyReport

	if prior, err := readMovementLog(plan.TargetDir); err == nil && len(prior) > 0 {
		if !opts.Force {
			return report, fmt.Errorf("%w: revert or clean it first, or force a fresh run", common.ErrUnconsumedLog)
		}
		o.logger.Warn("discarding movement log from previous run",
			"dir", plan.TargetDir, "entries", len(prior))
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return report, err
	}

	// Created empty up front so the log exists for the whole run.
	log := []model.MovementLogEntry{}
	if err := writeMovementLog(plan.TargetDir, log); err != nil {
		return report, err
	}

	total := len(plan.Items)
	for i, item := range plan.Items {
		if err := ctx.Err(); err != nil {
			o.logger.Warn("apply canceled at item boundary",
				"done", i, "total", total)
			return report, err
		}

		switch item.Action {
		case model.ActionExcluded:
			report.Excluded = append(report.Excluded, item.Source)
		case model.ActionSkip:
			report.Skipped = append(report.Skipped, item.Source)
		case model.ActionFailed:
			report.Failures = append(report.Failures, model.OperationFailure{
				Path:   item.Source,
				Reason: item.Reason,
			})
		case model.ActionMove:
			entry, err := o.moveFile(item)
			if err != nil {
				o.logger.Warn("move failed",
					"file", item.Name, "error", err)
				report.Failures = append(report.Failures, model.OperationFailure{
					Path:   item.Source,
					Reason: err.Error(),
				})
				break
			}

			log = append(log, entry)
			if err := writeMovementLog(plan.TargetDir, log); err != nil {
				// The file already moved; losing the log entry would make
				// the move unrevertable, so this failure is fatal.
				return report, err
			}

			report.Moved = append(report.Moved, model.MoveResult{
				Source:      item.Source,
				Destination: item.Destination,
				Category:    item.Category,
			})
			o.logger.Info("moved",
				"file", item.Name, "category", item.Category)
		}

		if opts.Progress != nil {
			opts.Progress(i+1, total)
		}
	}

	o.logger.Info("apply finished",
		"moved", len(report.Moved),
		"failed", len(report.Failures),
		"skipped", len(report.Skipped),
		"excluded", len(report.Excluded))

	return report, nil
}

// moveFile relocates one file, refusing to overwrite anything. A source
// that vanished since the snapshot (including one already relocated by an
// earlier partial run) is a per-file failure, not a double move.
func (o *Organizer) moveFile(item model.PlanItem) (model.MovementLogEntry, error) {
	if _, err := os.Lstat(item.Source); err != nil {
		return model.MovementLogEntry{}, fmt.Errorf("source no longer exists: %w", err)
	}

	if _, err := os.Lstat(item.Destination); err == nil {
		return model.MovementLogEntry{}, fmt.Errorf("destination already occupied: %s", item.Destination)
	}

	if err := os.MkdirAll(filepath.Dir(item.Destination), 0o755); err != nil {
		return model.MovementLogEntry{}, fmt.Errorf("failed to create category folder: %w", err)
	}

	if err := os.Rename(item.Source, item.Destination); err != nil {
		return model.MovementLogEntry{}, fmt.Errorf("failed to move file: %w", err)
	}

	return model.MovementLogEntry{
		MovedAt:      time.Now().UTC(),
		OriginalPath: item.Source,
		NewPath:      item.Destination,
		Category:     item.Category,
	}, nil
}

// Package planner turns classification results into a concrete,
// collision-free move plan.
package planner

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alejandrosb8/Smart-Desktop/internal/common"
	"github.com/alejandrosb8/Smart-Desktop/internal/model"
)

// Disambiguation gives up after this many numeric suffixes; the item
// becomes a per-item failure, never a silent overwrite.
const maxSuffixAttempts = 10000

// Planner computes plans. Beyond destination existence checks it never
// touches the filesystem, so planning the same snapshot twice yields an
// identical plan.
type Planner struct {
	logger *slog.Logger
	exists func(string) bool
}

// New creates a planner that checks destination existence on disk.
func New(logger *slog.Logger) *Planner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Planner{
		logger: logger,
		exists: func(path string) bool {
			_, err := os.Lstat(path)
			return err == nil
		},
	}
}

// Build produces the ordered plan for one run. entries is the full
// snapshot in directory order; results carries one verdict per eligible
// (non-excluded) entry, in the same order.
func (p *Planner) Build(targetDir string, entries []model.FileEntry, results []model.ClassificationResult) (model.Plan, error) {
	plan := model.Plan{TargetDir: targetDir}
	taken := make(map[string]struct{})

	next := 0
	for _, entry := range entries {
		if entry.Excluded {
			plan.Items = append(plan.Items, model.PlanItem{
				Source: entry.Path,
				Name:   entry.Name,
				Action: model.ActionExcluded,
				Reason: entry.ExcludedBy,
			})
			continue
		}

		if next >= len(results) {
			return model.Plan{}, fmt.Errorf("missing classification result for %s", entry.Name)
		}
		result := results[next]
		next++
		if result.File.Path != entry.Path {
			return model.Plan{}, fmt.Errorf("classification results out of order: got %s, want %s",
				result.File.Path, entry.Path)
		}

		plan.Items = append(plan.Items, p.buildItem(targetDir, entry, result, taken))
	}

	if next != len(results) {
		return model.Plan{}, fmt.Errorf("unexpected extra classification results: %d", len(results)-next)
	}

	return plan, nil
}

func (p *Planner) buildItem(targetDir string, entry model.FileEntry, result model.ClassificationResult, taken map[string]struct{}) model.PlanItem {
	switch {
	case result.Failed():
		return model.PlanItem{
			Source: entry.Path,
			Name:   entry.Name,
			Action: model.ActionFailed,
			Reason: result.Err.Error(),
		}
	case result.Skipped():
		reason := result.Reasoning
		if reason == "" {
			reason = "classified as SKIP"
		}
		return model.PlanItem{
			Source:   entry.Path,
			Name:     entry.Name,
			Action:   model.ActionSkip,
			Category: model.SkipLabel,
			Reason:   reason,
		}
	}

	destination, err := p.uniqueDestination(filepath.Join(targetDir, result.Category), entry.Name, taken)
	if err != nil {
		return model.PlanItem{
			Source:   entry.Path,
			Name:     entry.Name,
			Action:   model.ActionFailed,
			Category: result.Category,
			Reason:   err.Error(),
		}
	}
	taken[destination] = struct{}{}

	reason := result.Reasoning
	if reason == "" {
		reason = fmt.Sprintf("classified as %s", result.Category)
	}

	return model.PlanItem{
		Source:      entry.Path,
		Name:        entry.Name,
		Action:      model.ActionMove,
		Category:    result.Category,
		Destination: destination,
		Reason:      reason,
	}
}

// uniqueDestination disambiguates deterministically: the plain name first,
// then "name (N).ext" with N incrementing, against both on-disk state and
// destinations already planned in this run.
func (p *Planner) uniqueDestination(dir, name string, taken map[string]struct{}) (string, error) {
	candidate := filepath.Join(dir, name)
	if p.available(candidate, taken) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	stem := name[:len(name)-len(ext)]

	for n := 1; n <= maxSuffixAttempts; n++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, n, ext))
		if p.available(candidate, taken) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s in %s", common.ErrCollisionUnresolved, name, dir)
}

func (p *Planner) available(path string, taken map[string]struct{}) bool {
	if _, planned := taken[path]; planned {
		return false
	}
	return !p.exists(path)
}

// Package organizer wires the classification pipeline together and owns
// every filesystem mutation: applying plans, reverting them from the
// movement log, and cleaning up afterwards.
package organizer

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/alejandrosb8/Smart-Desktop/internal/common"
	"github.com/alejandrosb8/Smart-Desktop/internal/model"
	"github.com/alejandrosb8/Smart-Desktop/internal/planner"
	"github.com/alejandrosb8/Smart-Desktop/internal/scan"
)

// Engine is the classification stage as the organizer sees it.
type Engine interface {
	Classify(ctx context.Context, entries []model.FileEntry, cfg model.Config) ([]model.ClassificationResult, error)
}

// Organizer exposes the caller-facing pipeline operations:
// Preview, Apply, Revert and Clean.
type Organizer struct {
	engine  Engine
	planner *planner.Planner
	logger  *slog.Logger
}

// New creates an organizer around a classification engine.
func New(engine Engine, logger *slog.Logger) *Organizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Organizer{
		engine:  engine,
		planner: planner.New(logger),
		logger:  logger,
	}
}

// Preview snapshots the target directory, classifies the eligible files
// and returns the resulting plan without touching the filesystem.
// Classification failures surface as explicit FAILED plan entries so they
// can be reviewed before any mutation happens. The target directory is
// resolved to an absolute path once here, so plan destinations and
// movement log entries stay valid from any working directory.
func (o *Organizer) Preview(ctx context.Context, targetDir string, cfg model.Config) (model.Plan, error) {
	if err := cfg.Validate(); err != nil {
		return model.Plan{}, fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}

	absDir, err := filepath.Abs(targetDir)
	if err != nil {
		return model.Plan{}, fmt.Errorf("failed to resolve target directory: %w", err)
	}

	rules, err := scan.CompileRules(cfg.ExcludeExtensions, cfg.ExcludeFiles)
	if err != nil {
		return model.Plan{}, err
	}

	entries, err := scan.NewScanner(rules, o.logger).Snapshot(absDir, cfg.Mode)
	if err != nil {
		return model.Plan{}, err
	}

	var eligible []model.FileEntry
	for _, entry := range entries {
		if !entry.Excluded {
			eligible = append(eligible, entry)
		}
	}

	results, err := o.engine.Classify(ctx, eligible, cfg)
	if err != nil {
		return model.Plan{}, fmt.Errorf("classification run canceled: %w", err)
	}

	plan, err := o.planner.Build(absDir, entries, results)
	if err != nil {
		return model.Plan{}, err
	}

	o.logger.Info("plan computed",
		"dir", absDir,
		"moves", plan.Count(model.ActionMove),
		"skips", plan.Count(model.ActionSkip),
		"excluded", plan.Count(model.ActionExcluded),
		"failed", plan.Count(model.ActionFailed))

	return plan, nil
}

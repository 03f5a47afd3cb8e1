// Package engine turns directory snapshots into classification results by
// way of the external AI collaborator.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/alejandrosb8/Smart-Desktop/internal/common"
	"github.com/alejandrosb8/Smart-Desktop/internal/llm"
	"github.com/alejandrosb8/Smart-Desktop/internal/model"
)

// Classifier is the AI collaborator as the engine sees it: one
// rate-limited call per file.
type Classifier interface {
	Classify(ctx context.Context, req llm.Request) (llm.Response, error)
}

// Engine classifies eligible files independently with bounded concurrency.
// A failure for one file never aborts classification of the others.
type Engine struct {
	classifier Classifier
	logger     *slog.Logger
	maxWorkers int
}

// New creates a classification engine.
func New(classifier Classifier, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		classifier: classifier,
		logger:     logger,
		maxWorkers: 5,
	}
}

// Classify produces exactly one result per eligible entry, in input order.
// Per-file failures are recorded on the result; the returned error is
// non-nil only when the whole run is canceled.
func (e *Engine) Classify(ctx context.Context, entries []model.FileEntry, cfg model.Config) ([]model.ClassificationResult, error) {
	results := make([]model.ClassificationResult, len(entries))

	system := buildSystemPrompt(cfg)

	// One slot per input index keeps result collection append-safe under
	// concurrent workers.
	sem := make(chan struct{}, e.maxWorkers)
	var wg sync.WaitGroup

	for i, entry := range entries {
		wg.Add(1)
		go func(idx int, file model.FileEntry) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[idx] = model.ClassificationResult{File: file, Err: ctx.Err()}
				return
			}

			results[idx] = e.classifyOne(ctx, file, system, cfg)
		}(i, entry)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return results, err
	}

	failures := 0
	for _, r := range results {
		if r.Failed() {
			failures++
		}
	}
	e.logger.Info("classification finished",
		"files", len(entries),
		"failures", failures)

	return results, nil
}

// classifyOne runs a single AI call and sanitizes the returned label.
func (e *Engine) classifyOne(ctx context.Context, file model.FileEntry, system string, cfg model.Config) model.ClassificationResult {
	req := llm.Request{
		System:          system,
		Prompt:          buildFilePrompt(file),
		ThinkingEnabled: cfg.ThinkingEnabled,
	}

	resp, err := e.classifier.Classify(ctx, req)
	if err != nil {
		e.logger.Warn("file classification failed",
			"file", file.Name,
			"error", err)
		return model.ClassificationResult{
			File: file,
			Err:  fmt.Errorf("%w: %v", common.ErrClassificationFailed, err),
		}
	}

	category, reasoning, err := sanitizeLabel(resp, cfg)
	if err != nil {
		e.logger.Warn("rejected collaborator label",
			"file", file.Name,
			"label", resp.Category,
			"error", err)
		return model.ClassificationResult{File: file, Err: err}
	}

	e.logger.Info("file classified",
		"file", file.Name,
		"category", category)

	return model.ClassificationResult{
		File:      file,
		Category:  category,
		Reasoning: reasoning,
	}
}

// sanitizeLabel enforces the permitted vocabulary. Out-of-vocabulary
// labels become SKIP when skipping is allowed and a failure otherwise; a
// SKIP answer when skipping is disallowed is also a failure.
func sanitizeLabel(resp llm.Response, cfg model.Config) (string, string, error) {
	label := strings.TrimSpace(resp.Category)

	if strings.EqualFold(label, model.SkipLabel) {
		if !cfg.AllowAISkip {
			return "", "", fmt.Errorf("%w: collaborator answered %s but skipping is not allowed",
				common.ErrClassificationFailed, model.SkipLabel)
		}
		return model.SkipLabel, resp.Reasoning, nil
	}

	if canonical, ok := cfg.HasCategory(label); ok {
		return canonical, resp.Reasoning, nil
	}

	if cfg.AllowAISkip {
		reason := fmt.Sprintf("collaborator answered %q, which is not a permitted category", label)
		if resp.Reasoning != "" {
			reason = fmt.Sprintf("%s (%s)", reason, resp.Reasoning)
		}
		return model.SkipLabel, reason, nil
	}

	return "", "", fmt.Errorf("%w: %q", common.ErrLabelOutOfVocabulary, label)
}

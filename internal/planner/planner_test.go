package planner

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandrosb8/Smart-Desktop/internal/model"
)

const target = "/desktop"

// testPlanner plans against a fixed set of pre-existing paths instead of
// the real filesystem.
func testPlanner(existing ...string) *Planner {
	onDisk := make(map[string]struct{}, len(existing))
	for _, path := range existing {
		onDisk[path] = struct{}{}
	}
	p := New(nil)
	p.exists = func(path string) bool {
		_, ok := onDisk[path]
		return ok
	}
	return p
}

func entry(name string) model.FileEntry {
	return model.FileEntry{Name: name, Path: filepath.Join(target, name)}
}

func moveResult(name, category string) model.ClassificationResult {
	return model.ClassificationResult{File: entry(name), Category: category}
}

func TestBuildMapsVerdictsToActions(t *testing.T) {
	excluded := entry("setup.exe")
	excluded.Excluded = true
	excluded.ExcludedBy = "extension .exe"

	entries := []model.FileEntry{
		excluded,
		entry("report.pdf"),
		entry("wallpaper.png"),
		entry("mystery.dat"),
	}
	results := []model.ClassificationResult{
		moveResult("report.pdf", "Documents"),
		{File: entry("wallpaper.png"), Category: model.SkipLabel, Reasoning: "background set by the OS"},
		{File: entry("mystery.dat"), Err: errors.New("model unavailable")},
	}

	plan, err := testPlanner().Build(target, entries, results)
	require.NoError(t, err)
	require.Len(t, plan.Items, 4)

	assert.Equal(t, model.ActionExcluded, plan.Items[0].Action)
	assert.Equal(t, "extension .exe", plan.Items[0].Reason)

	assert.Equal(t, model.ActionMove, plan.Items[1].Action)
	assert.Equal(t, "Documents", plan.Items[1].Category)
	assert.Equal(t, filepath.Join(target, "Documents", "report.pdf"), plan.Items[1].Destination)

	assert.Equal(t, model.ActionSkip, plan.Items[2].Action)
	assert.Equal(t, "background set by the OS", plan.Items[2].Reason)

	assert.Equal(t, model.ActionFailed, plan.Items[3].Action)
	assert.Contains(t, plan.Items[3].Reason, "model unavailable")

	assert.Equal(t, 1, plan.Count(model.ActionMove))
	require.Len(t, plan.Moves(), 1)
}

func TestBuildIsDeterministic(t *testing.T) {
	entries := []model.FileEntry{entry("a.pdf"), entry("b.pdf")}
	results := []model.ClassificationResult{
		moveResult("a.pdf", "Documents"),
		moveResult("b.pdf", "Documents"),
	}

	p := testPlanner(filepath.Join(target, "Documents", "a.pdf"))

	first, err := p.Build(target, entries, results)
	require.NoError(t, err)
	second, err := p.Build(target, entries, results)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildDisambiguatesOnDiskCollision(t *testing.T) {
	p := testPlanner(
		filepath.Join(target, "Documents", "report.pdf"),
		filepath.Join(target, "Documents", "report (1).pdf"),
	)

	plan, err := p.Build(target,
		[]model.FileEntry{entry("report.pdf")},
		[]model.ClassificationResult{moveResult("report.pdf", "Documents")})
	require.NoError(t, err)

	require.Len(t, plan.Items, 1)
	assert.Equal(t, filepath.Join(target, "Documents", "report (2).pdf"), plan.Items[0].Destination)
}

func TestBuildDisambiguatesIntraPlanCollision(t *testing.T) {
	// Two distinct sources that classify into the same category under the
	// same name must not share a destination.
	a := model.FileEntry{Name: "notes.txt", Path: filepath.Join(target, "notes.txt")}
	b := model.FileEntry{Name: "notes.txt", Path: filepath.Join(target, "other", "notes.txt")}

	plan, err := testPlanner().Build(target,
		[]model.FileEntry{a, b},
		[]model.ClassificationResult{
			{File: a, Category: "Documents"},
			{File: b, Category: "Documents"},
		})
	require.NoError(t, err)

	require.Len(t, plan.Items, 2)
	assert.Equal(t, filepath.Join(target, "Documents", "notes.txt"), plan.Items[0].Destination)
	assert.Equal(t, filepath.Join(target, "Documents", "notes (1).txt"), plan.Items[1].Destination)
}

func TestBuildSuffixKeepsExtension(t *testing.T) {
	p := testPlanner(filepath.Join(target, "Archives", "photos.tar.gz"))

	plan, err := p.Build(target,
		[]model.FileEntry{entry("photos.tar.gz")},
		[]model.ClassificationResult{moveResult("photos.tar.gz", "Archives")})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(target, "Archives", "photos.tar (1).gz"), plan.Items[0].Destination)
}

func TestBuildRejectsMismatchedResults(t *testing.T) {
	t.Run("missing result", func(t *testing.T) {
		_, err := testPlanner().Build(target,
			[]model.FileEntry{entry("a.pdf")},
			nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing classification result")
	})

	t.Run("out of order result", func(t *testing.T) {
		_, err := testPlanner().Build(target,
			[]model.FileEntry{entry("a.pdf")},
			[]model.ClassificationResult{moveResult("b.pdf", "Documents")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "out of order")
	})

	t.Run("extra results", func(t *testing.T) {
		_, err := testPlanner().Build(target,
			[]model.FileEntry{entry("a.pdf")},
			[]model.ClassificationResult{
				moveResult("a.pdf", "Documents"),
				moveResult("b.pdf", "Documents"),
			})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "extra classification results")
	})
}

func TestBuildSkipsExcludedWithoutConsumingResults(t *testing.T) {
	excluded := entry("ignore.tmp")
	excluded.Excluded = true
	excluded.ExcludedBy = "pattern *.tmp"

	plan, err := testPlanner().Build(target,
		[]model.FileEntry{excluded, entry("keep.pdf")},
		[]model.ClassificationResult{moveResult("keep.pdf", "Documents")})
	require.NoError(t, err)

	require.Len(t, plan.Items, 2)
	assert.Equal(t, model.ActionExcluded, plan.Items[0].Action)
	assert.Equal(t, model.ActionMove, plan.Items[1].Action)
}

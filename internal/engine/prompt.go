package engine

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/alejandrosb8/Smart-Desktop/internal/model"
)

// buildSystemPrompt describes the task, the permitted vocabulary and the
// response contract. It is shared by every call in a run.
func buildSystemPrompt(cfg model.Config) string {
	categoryList := ""
	for _, cat := range cfg.Categories {
		categoryList += fmt.Sprintf("- %s\n", cat)
	}

	skipInstruction := "Do not skip files; always choose one of the provided categories."
	if cfg.AllowAISkip {
		skipInstruction = fmt.Sprintf(
			"If the context or rules imply a file must NOT be moved, answer %q exactly.", model.SkipLabel)
	}

	miscHint := ""
	if _, ok := cfg.HasCategory("Misc"); ok {
		miscHint = "\n- If a file does not fit any category, use \"Misc\"."
	}

	userContext := strings.TrimSpace(cfg.AIContext)
	if userContext == "" {
		userContext = "(none)"
	}

	return fmt.Sprintf(`You are an expert file organizer. Classify each file into one of the provided categories.
User instructions/context (high priority, apply first): %s

Current date: %s

Rules:
- Respond with a single JSON object: {"category": "...", "reasoning": "..."}. No markdown fences, no extra text.
- The category must be chosen EXACTLY from the list below. Do not invent new categories.
- %s%s
- For Windows shortcuts (.lnk), classify based on the base name (field "shortcut_base"), not as a format of their own.
- Consider metadata such as file_type_extension, mime_type, file_size, modified_at, and any content_snippet.

Available Categories:
%s`,
		userContext,
		time.Now().Format("2006-01-02"),
		skipInstruction,
		miscHint,
		categoryList)
}

// buildFilePrompt serializes one file's metadata for the collaborator.
func buildFilePrompt(file model.FileEntry) string {
	meta := map[string]any{
		"filename":            file.Name,
		"object_file_type":    "file",
		"file_size":           file.Size,
		"file_type_extension": strings.TrimPrefix(file.Ext, "."),
		"mime_type":           file.MIMEType,
	}

	if !file.ModifiedAt.IsZero() {
		meta["modified_at"] = file.ModifiedAt.Format(time.RFC3339)
	}

	if file.IsShortcut() {
		meta["object_file_type"] = "shortcut"
		meta["is_shortcut"] = true
		meta["shortcut_base"] = file.Stem()
	}

	if file.Excerpt != "" {
		meta["content_snippet"] = file.Excerpt
	}

	encoded, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		// Metadata is built from plain values; this cannot realistically
		// fail, but a name-only prompt still classifies.
		return fmt.Sprintf("File to classify: %s", file.Name)
	}

	return fmt.Sprintf("File to classify:\n%s", string(encoded))
}

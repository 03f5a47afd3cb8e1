package model

import (
	"fmt"
	"strings"
)

// Config is the full configuration for one organization run. It is passed
// explicitly into every pipeline entry point so repeated or concurrent runs
// against different directories cannot interfere through ambient state.
type Config struct {
	Mode              ClassificationMode
	AIContext         string
	Categories        []string
	ExcludeExtensions []string
	ExcludeFiles      []string
	AllowAISkip       bool
	ThinkingEnabled   bool
}

// Validate checks the category set and mode. Exclusion rule syntax is
// validated separately when the rules are compiled.
func (c Config) Validate() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("at least one category is required")
	}

	seen := make(map[string]struct{}, len(c.Categories))
	for _, cat := range c.Categories {
		name := strings.TrimSpace(cat)
		if name == "" {
			return fmt.Errorf("empty category name")
		}
		if strings.EqualFold(name, SkipLabel) {
			return fmt.Errorf("%q is reserved and cannot be used as a category", SkipLabel)
		}
		if strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("category %q must not contain path separators", name)
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("duplicate category %q", name)
		}
		seen[key] = struct{}{}
	}

	switch c.Mode {
	case ModeByName, ModeByContent:
	case "":
		return fmt.Errorf("classification mode is required")
	default:
		return fmt.Errorf("unknown classification mode: %s", c.Mode)
	}

	return nil
}

// HasCategory reports whether name matches a configured category,
// ignoring case, and returns the configured spelling.
func (c Config) HasCategory(name string) (string, bool) {
	for _, cat := range c.Categories {
		if strings.EqualFold(strings.TrimSpace(name), cat) {
			return cat, true
		}
	}
	return "", false
}

// Package scan takes a one-time snapshot of a target directory and decides
// which files are eligible for classification.
package scan

import (
	"fmt"
	"path"
	"strings"

	"github.com/alejandrosb8/Smart-Desktop/internal/common"
)

// Rules is a compiled set of exclusion rules. A file matching either an
// excluded extension or a name pattern is never classified or moved.
// Matching is case-insensitive and side-effect-free, and is applied
// identically during preview and apply.
type Rules struct {
	extensions map[string]struct{}
	patterns   []string
}

// CompileRules normalizes and validates exclusion rules. Extensions are
// lowercased and get a leading dot; patterns use shell-style wildcards
// matched against the base name only. Malformed patterns abort before any
// classification begins.
func CompileRules(extensions, patterns []string) (*Rules, error) {
	r := &Rules{extensions: make(map[string]struct{}, len(extensions))}

	for _, ext := range extensions {
		e := strings.ToLower(strings.TrimSpace(ext))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		r.extensions[e] = struct{}{}
	}

	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		lowered := strings.ToLower(p)
		if _, err := path.Match(lowered, "probe"); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", common.ErrInvalidExclusion, p, err)
		}
		r.patterns = append(r.patterns, lowered)
	}

	return r, nil
}

// Excluded reports whether a file with the given base name and normalized
// extension matches any exclusion rule, and which rule matched.
func (r *Rules) Excluded(name, ext string) (string, bool) {
	if _, ok := r.extensions[strings.ToLower(ext)]; ok {
		return fmt.Sprintf("extension %s excluded", strings.ToLower(ext)), true
	}

	lowered := strings.ToLower(name)
	for _, p := range r.patterns {
		// Pattern syntax was validated at compile time.
		if ok, _ := path.Match(p, lowered); ok || lowered == p {
			return fmt.Sprintf("name matches pattern %q", p), true
		}
	}

	return "", false
}

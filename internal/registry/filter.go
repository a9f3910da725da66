package registry

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter returns the entries whose name matches the glob pattern. An empty
// pattern keeps every entry.
func Filter(entries []Entry, pattern string) ([]Entry, error) {
	if pattern == "" {
		return entries, nil
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	var matched []Entry
	for _, e := range entries {
		ok, err := doublestar.Match(pattern, e.Name)
		if err != nil {
			return nil, fmt.Errorf("matching %q: %w", pattern, err)
		}
		if ok {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

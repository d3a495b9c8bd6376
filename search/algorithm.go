package search

import (
	"fmt"
	"strings"
)

// NewAlgorithm resolves an algorithm name to an instance. Recognized names
// are "pathsearch" (or "path") and "tspinsearch" (or "tspin"). TSpinSearch
// is created with all T-spin options on.
func NewAlgorithm(name string, cfg Config) (Algorithm, error) {
	switch strings.ToLower(name) {
	case "path", "pathsearch":
		return NewPathSearch(cfg), nil
	case "tspin", "tspinsearch":
		return NewTSpinSearch(cfg, TSpinConfig{
			RequireLastRotation: true,
			AllowMiniTSpins:     true,
			PrioritizeTSpins:    true,
		}), nil
	}
	return nil, fmt.Errorf("unknown search algorithm %q", name)
}

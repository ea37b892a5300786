package background

import (
	"fmt"
	"strings"
)

// Strategy selects how the reference background color is derived and which
// alpha band table is applied.
type Strategy int

const (
	// FixedThreshold treats near-white and light-gray pixels as background.
	FixedThreshold Strategy = iota
	// EdgeSampled uses the most frequent color sampled along the borders.
	EdgeSampled
	// CornerMode uses the most frequent of the four corner colors.
	CornerMode
)

var strategyNames = map[Strategy]string{
	FixedThreshold: "fixed-threshold",
	EdgeSampled:    "edge-sampled",
	CornerMode:     "corner-mode",
}

// Strategies returns every known strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{FixedThreshold, EdgeSampled, CornerMode}
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Valid reports whether s is one of the declared strategies.
func (s Strategy) Valid() bool {
	_, ok := strategyNames[s]
	return ok
}

// ParseStrategy converts a strategy name such as "edge-sampled" into a
// Strategy. Matching is case-insensitive and ignores surrounding spaces;
// "simple" and "advanced" are accepted as aliases for fixed-threshold and
// edge-sampled.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fixed-threshold", "fixed", "simple":
		return FixedThreshold, nil
	case "edge-sampled", "edge", "advanced":
		return EdgeSampled, nil
	case "corner-mode", "corner":
		return CornerMode, nil
	default:
		return 0, fmt.Errorf("unknown strategy: %q", name)
	}
}

// ParseStrategyList parses a comma-separated list of strategy names,
// preserving order. Empty entries are skipped; duplicates are an error.
func ParseStrategyList(list string) ([]Strategy, error) {
	var out []Strategy
	seen := make(map[Strategy]bool)
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		s, err := ParseStrategy(part)
		if err != nil {
			return nil, err
		}
		if seen[s] {
			return nil, fmt.Errorf("strategy %s listed twice", s)
		}
		seen[s] = true
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no strategies in %q", list)
	}
	return out, nil
}

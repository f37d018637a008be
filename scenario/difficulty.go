package scenario

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// Difficulty selects how generated travel costs are derived.
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
)

var difficultyNames = map[string]Difficulty{
	"easy":   Easy,
	"normal": Normal,
	"hard":   Hard,
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Normal:
		return "normal"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// ParseDifficulty resolves a difficulty name (case-insensitive).
func ParseDifficulty(name string) (Difficulty, error) {
	if d, ok := difficultyNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return d, nil
	}

	return 0, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownDifficulty, name, strings.Join(DifficultyNames(), ", "))
}

// DifficultyNames lists the accepted names in sorted order.
func DifficultyNames() []string {
	names := maps.Keys(difficultyNames)
	slices.Sort(names)

	return names
}

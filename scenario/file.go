package scenario

import (
	"cmp"
	"fmt"
	"math"
	"os"
	"slices"

	"sigs.k8s.io/yaml"
)

// File is the on-disk form of a Scenario. Exactly one of Costs or Points is
// set. A null cost means the edge does not exist.
//
//	difficulty: hard
//	seed: 7
//	points:
//	- [0.1, 0.5, 0.3]   # x, y, elevation
//	- {x: 0.7, y: 0.2, elevation: 0.9}
//	removed:
//	- {from: 0, to: 1}
//
// or
//
//	costs:
//	- [null, 10, 15]
//	- [5, null, 9]
//	- [6, 13, null]
type File struct {
	Difficulty string       `json:"difficulty,omitempty"`
	Seed       int64        `json:"seed,omitempty"`
	Points     []Point      `json:"points,omitempty"`
	Removed    []Edge       `json:"removed,omitempty"`
	Costs      [][]*float64 `json:"costs,omitempty"`
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	return sc, nil
}

// Parse decodes a YAML (or JSON) scenario.
func Parse(data []byte) (*Scenario, error) {
	f := &File{}
	if err := yaml.UnmarshalStrict(data, f); err != nil {
		return nil, err
	}

	return f.Scenario()
}

// Scenario validates f and builds the scenario it describes.
func (f *File) Scenario() (*Scenario, error) {
	switch {
	case f.Costs != nil && f.Points != nil:
		return nil, ErrAmbiguousScenario
	case f.Costs != nil:
		if f.Difficulty != "" || f.Removed != nil {
			return nil, fmt.Errorf("%w: difficulty and removed apply to points only", ErrAmbiguousScenario)
		}
		table := make([][]float64, len(f.Costs))
		for i, row := range f.Costs {
			table[i] = make([]float64, len(row))
			for j, c := range row {
				if c == nil {
					table[i][j] = math.Inf(1)
				} else {
					table[i][j] = *c
				}
			}
		}

		return FromCosts(table)
	case f.Points != nil:
		d := Easy
		if f.Difficulty != "" {
			var err error
			if d, err = ParseDifficulty(f.Difficulty); err != nil {
				return nil, err
			}
		}
		sc, err := fromPoints(f.Points, d, f.Removed)
		if err != nil {
			return nil, err
		}
		sc.seed = f.Seed

		return sc, nil
	default:
		return nil, ErrEmptyScenario
	}
}

// File returns the on-disk form of s.
func (s *Scenario) File() *File {
	if s.costs != nil {
		f := &File{Costs: make([][]*float64, len(s.costs))}
		for i, row := range s.costs {
			f.Costs[i] = make([]*float64, len(row))
			for j := range row {
				if !math.IsInf(row[j], 1) {
					c := row[j]
					f.Costs[i][j] = &c
				}
			}
		}

		return f
	}

	f := &File{
		Difficulty: s.difficulty.String(),
		Seed:       s.seed,
		Points:     append([]Point(nil), s.points...),
	}
	for e := range s.removed {
		f.Removed = append(f.Removed, e)
	}
	slices.SortFunc(f.Removed, func(a, b Edge) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}

		return cmp.Compare(a.To, b.To)
	})

	return f
}

// Marshal encodes s as YAML.
func (s *Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(s.File())
}

// Save writes s to path as YAML.
func (s *Scenario) Save(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0660)
}

package scenario

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/bnbtsp/tsp"
)

const (
	// Scale converts unit-square distances into integer travel costs.
	Scale = 1000

	// HardRemoval is the fraction of directed edges a Hard scenario drops.
	HardRemoval = 0.2
)

// Edge is a directed edge From→To.
type Edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Scenario is a fixed set of cities and the travel costs between them.
// It is either geometric (points, difficulty, removed edges) or explicit
// (a cost table). A Scenario is immutable once built.
type Scenario struct {
	difficulty Difficulty
	seed       int64
	points     []Point
	removed    map[Edge]struct{}
	costs      [][]float64
	cities     []tsp.City
}

var _ tsp.Scenario = (*Scenario)(nil)

// City is one city of a Scenario.
type City struct {
	index int
	sc    *Scenario
}

var _ tsp.City = (*City)(nil)

// Index implements tsp.City.
func (c *City) Index() int { return c.index }

// CostTo implements tsp.City. other must come from the same scenario.
func (c *City) CostTo(other tsp.City) (float64, error) {
	o, ok := other.(*City)
	if !ok || o.sc != c.sc {
		return 0, ErrForeignCity
	}

	return c.sc.cost(c.index, o.index), nil
}

// Point returns the city location; ok is false for explicit scenarios.
func (c *City) Point() (p Point, ok bool) {
	if c.sc.points == nil {
		return Point{}, false
	}

	return c.sc.points[c.index], true
}

// Generate builds a random geometric scenario with n cities.
func Generate(n int, d Difficulty, seed int64) (*Scenario, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	if _, ok := difficultyNames[d.String()]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDifficulty, d)
	}

	rng := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{X: rng.Float64(), Y: rng.Float64(), Elevation: rng.Float64()}
	}

	var removed []Edge
	if d == Hard {
		removed = removeEdges(n, rng)
	}
	sc, err := fromPoints(points, d, removed)
	if err != nil {
		return nil, err
	}
	sc.seed = seed

	return sc, nil
}

// removeEdges picks HardRemoval of the directed edges at random, skipping
// the edges of one random Hamiltonian cycle.
func removeEdges(n int, rng *rand.Rand) []Edge {
	var (
		cycle   = rng.Perm(n)
		keep    = make(map[Edge]struct{}, n)
		removed []Edge
	)
	for i := range cycle {
		keep[Edge{From: cycle[i], To: cycle[(i+1)%n]}] = struct{}{}
	}
	for from := 0; from < n; from++ {
		for to := 0; to < n; to++ {
			if from == to {
				continue
			}
			e := Edge{From: from, To: to}
			if _, ok := keep[e]; ok {
				continue
			}
			if rng.Float64() < HardRemoval {
				removed = append(removed, e)
			}
		}
	}

	return removed
}

// FromCosts builds an explicit scenario. costs[i][j] is the cost i→j;
// math.Inf(1) marks a missing edge. The table is copied.
func FromCosts(costs [][]float64) (*Scenario, error) {
	n := len(costs)
	table := make([][]float64, n)
	for i, row := range costs {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrNonSquare, i, len(row), n)
		}
		for j, c := range row {
			if math.IsNaN(c) || c < 0 {
				return nil, fmt.Errorf("%w: %d→%d = %v", ErrInvalidCost, i, j, c)
			}
		}
		table[i] = append([]float64(nil), row...)
	}

	sc := &Scenario{costs: table}
	sc.initCities(n)

	return sc, nil
}

func fromPoints(points []Point, d Difficulty, removed []Edge) (*Scenario, error) {
	n := len(points)
	sc := &Scenario{
		difficulty: d,
		points:     append([]Point(nil), points...),
		removed:    make(map[Edge]struct{}, len(removed)),
	}
	for _, e := range removed {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("%w: %d→%d", ErrInvalidEdge, e.From, e.To)
		}
		sc.removed[e] = struct{}{}
	}
	sc.initCities(n)

	return sc, nil
}

func (s *Scenario) initCities(n int) {
	s.cities = make([]tsp.City, n)
	for i := range s.cities {
		s.cities[i] = &City{index: i, sc: s}
	}
}

// cost returns the travel cost i→j.
func (s *Scenario) cost(i, j int) float64 {
	if s.costs != nil {
		return s.costs[i][j]
	}
	if i == j {
		return math.Inf(1)
	}
	if _, ok := s.removed[Edge{From: i, To: j}]; ok {
		return math.Inf(1)
	}

	var (
		a    = s.points[i]
		b    = s.points[j]
		dist = math.Hypot(b.X-a.X, b.Y-a.Y)
	)
	if s.difficulty != Easy && b.Elevation > a.Elevation {
		dist += b.Elevation - a.Elevation
	}

	return math.Ceil(dist * Scale)
}

// Cities implements tsp.Scenario.
func (s *Scenario) Cities() []tsp.City { return s.cities }

// Size is the number of cities.
func (s *Scenario) Size() int { return len(s.cities) }

// Difficulty of a generated scenario; Easy for explicit ones.
func (s *Scenario) Difficulty() Difficulty { return s.difficulty }

// Seed the scenario was generated from; 0 when unknown.
func (s *Scenario) Seed() int64 { return s.seed }

// Explicit reports whether the scenario is backed by a cost table.
func (s *Scenario) Explicit() bool { return s.costs != nil }

// Costs returns the full travel-cost table, diagonal included.
func (s *Scenario) Costs() [][]float64 {
	n := len(s.cities)
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		for j := range out[i] {
			out[i][j] = s.cost(i, j)
		}
	}

	return out
}

package tsp

import "math/rand"

// zeroSeed replaces a zero seed so that "no seed given" still yields a
// fixed, reproducible stream.
const zeroSeed int64 = 1

// rngFromSeed returns the private random stream of one invocation.
// math/rand.Rand is not goroutine-safe; it is never shared.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = zeroSeed
	}

	return rand.New(rand.NewSource(seed))
}

// permInto overwrites p with a uniform permutation of 0..len(p)-1 drawn
// from rng (inside-out Fisher–Yates). Reusing p keeps the baseline's draw
// loop allocation-free.
//
// Complexity: O(n).
func permInto(p []int, rng *rand.Rand) {
	var i, j int
	for i = range p {
		j = rng.Intn(i + 1)
		p[i] = p[j]
		p[j] = i
	}
}

// Package scenario provides the City and Scenario collaborators consumed by
// package tsp: generated geometric instances at three difficulty levels,
// explicit cost tables, and a YAML file format for both.
//
// Generated scenarios place n cities uniformly in the unit square with a
// random elevation in [0, 1). Travel costs are ceil(distance × Scale):
//
//   - Easy:   plain Euclidean distance, symmetric;
//   - Normal: climbing costs the elevation gain on top of the distance, so
//     costs are asymmetric;
//   - Hard:   Normal plus a fraction of the directed edges removed (+Inf).
//     One random Hamiltonian cycle is protected, so a tour always exists.
//
// The same (n, difficulty, seed) always yields the same scenario.
package scenario

// Package build constructs directed hydrogen-bond lists for well-known
// small water-cluster topologies: chains, rings, the fused-quadrilateral
// "book", and the hexamer "prism".
//
// These are deterministic fixtures for tests, benchmarks, and demos — real
// datasets come from package dataset. Orientations are fixed so that every
// molecule donates and accepts a water-plausible number of bonds, which
// makes the constructors equally useful for exercising package motif.
//
// Error policy follows the repository convention: only sentinel errors,
// branch with errors.Is.
package build

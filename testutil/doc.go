// Package testutil provides testing utilities for Hypergo.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source and builders for populating
// hypergraphs with reproducible random structure.
//
// # Random Graph Generation
//
//	rng := testutil.NewRNG(seed)
//	g := hyper.New[int]()
//	ids, err := testutil.Populate(rng, g, testutil.Shape{Nodes: 64, Edges: 32})
package testutil

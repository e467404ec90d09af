// SPDX-License-Identifier: MIT

// Package config loads and validates the YAML description of a generation
// run: the seed, the retry budget, the wall-clock timeout and the
// builder.Params handed to the degree-constrained generator.
//
// A file only needs the keys it overrides; everything else keeps the value
// from Default:
//
//	seed: 42
//	attempts: 10
//	timeout: 2s
//	graph:
//	  min_vertices: 5
//	  max_vertices: 10
//	  first_vertex_degree: 3
//	  min_degree_per_vertex: 2
//	  max_degree_per_vertex: 4
//
// Every failure (unreadable file, malformed YAML, unknown key, violated
// constraint) is reported as ErrInvalidConfig.
package config

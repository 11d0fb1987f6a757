// Package msa orchestrates the external MMseqs2 binary to produce a multiple
// sequence alignment for a protein query.
//
// A run is a strictly sequential pipeline of four external stages, createdb,
// search, result2msa and unpackdb, followed by concatenation of the unpacked
// per-hit fragments into a single a3m artifact. The package performs no
// sequence search or alignment itself; it validates the request, lays out a
// working directory, drives the stages in order with captured output, stops
// on the first non-zero exit, and guarantees removal of ephemeral working
// directories on every exit path.
//
// Run observers (see pkg/msa/model) can follow a run to record per-stage
// timings or render the stage graph.
package msa

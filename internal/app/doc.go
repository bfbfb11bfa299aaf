// Package app wires the digest engine to the CLI.
//
// It builds the input opener and logger from Config and exposes the
// operations commands run: hashing a set of inputs in parallel (Sum) and
// verifying a parsed checksum manifest (Check). Each input gets its own
// digest.State, so inputs never share hash state.
package app

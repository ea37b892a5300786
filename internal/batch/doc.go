// Package batch drives background removal over a fixed list of sprites.
//
// A Runner walks its jobs in order, one image at a time. For each job it
// tries the configured strategies in sequence and keeps the first one that
// loads, classifies and saves without error. Per-image failures never stop
// the run: they are logged, recorded in the job's Result, and the runner
// moves on. The returned Summary is the only aggregate state.
package batch

// SPDX-License-Identifier: MIT

// Package workload describes, generates and replays operation scripts
// against any dyntree.Forest.
//
// What:
//
//   - Script: a vertex count and a list of Ops (link, cut, connected,
//     snapshot, clear), with a YAML encoding.
//   - Generators: Path, Star, RandomTree and RandomOps build deterministic
//     scripts from functional options (WithSeed, WithCutRatio, ...).
//   - Replay: drives a Forest through a Script and records a Trace; Diff
//     compares two traces. Engines and Run dispatch by engine name.
//
// Why:
//
//	Differential testing of the engines against the naive oracle, and a
//	file format the dyntree command can replay and benchmark.
//
// Errors:
//
//	ErrTooFewVertices   - generator size below its minimum.
//	ErrInvalidOp        - unknown op kind or malformed script.
//	ErrVertexOutOfRange - op names a vertex outside 0..n-1.
//	ErrUnknownEdge      - cut of a pair that is not a live edge.
//	ErrSizeMismatch     - forest size differs from the script's n.
//	ErrUnknownEngine    - Run with an unregistered engine name.
//	ErrMismatch         - Diff found diverging traces.
//
// Replay validates every op before it reaches the engine, so a bad script
// yields an error rather than an engine panic.
package workload

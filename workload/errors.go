// SPDX-License-Identifier: MIT

package workload

import "errors"

var (
	// ErrTooFewVertices indicates a generator size below its minimum.
	ErrTooFewVertices = errors.New("workload: too few vertices")

	// ErrInvalidOp indicates an unknown op kind or a malformed script.
	ErrInvalidOp = errors.New("workload: invalid op")

	// ErrVertexOutOfRange indicates an op naming a vertex outside 0..n-1.
	ErrVertexOutOfRange = errors.New("workload: vertex out of range")

	// ErrUnknownEdge indicates a cut of a pair that is not a live edge.
	ErrUnknownEdge = errors.New("workload: cut of unknown edge")

	// ErrSizeMismatch indicates a forest whose size differs from the script.
	ErrSizeMismatch = errors.New("workload: forest size does not match script")

	// ErrUnknownEngine indicates an unregistered engine name.
	ErrUnknownEngine = errors.New("workload: unknown engine")

	// ErrMismatch indicates two traces that disagree.
	ErrMismatch = errors.New("workload: traces differ")
)

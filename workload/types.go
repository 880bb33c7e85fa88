// SPDX-License-Identifier: MIT

package workload

import "fmt"

// OpKind names a script operation.
type OpKind string

// Supported operations.
const (
	OpLink      OpKind = "link"      // link(u, v)
	OpCut       OpKind = "cut"       // cut the live edge {u, v}
	OpConnected OpKind = "connected" // record connected(u, v)
	OpSnapshot  OpKind = "snapshot"  // record the component labelling
	OpClear     OpKind = "clear"     // reset to isolated vertices
)

// Op is one script step. U and V are ignored by snapshot and clear.
type Op struct {
	Kind OpKind `yaml:"op"`
	U    int    `yaml:"u,omitempty"`
	V    int    `yaml:"v,omitempty"`
}

// String renders the op the way the dyntree command prints it.
func (op Op) String() string {
	switch op.Kind {
	case OpSnapshot, OpClear:
		return string(op.Kind)
	default:
		return fmt.Sprintf("%s(%d,%d)", op.Kind, op.U, op.V)
	}
}

// Script is a replayable sequence of operations over n vertices.
type Script struct {
	Name string `yaml:"name,omitempty"`
	N    int    `yaml:"n"`
	Ops  []Op   `yaml:"ops"`
}

// Counts tallies the ops of s by kind.
func (s *Script) Counts() map[OpKind]int {
	c := make(map[OpKind]int, 5)
	for _, op := range s.Ops {
		c[op.Kind]++
	}

	return c
}

// Validate checks op kinds and vertex ranges. It cannot know which cuts
// are valid; Replay reports those.
func (s *Script) Validate() error {
	if s.N < 0 {
		return fmt.Errorf("workload: n=%d: %w", s.N, ErrInvalidOp)
	}
	for i, op := range s.Ops {
		switch op.Kind {
		case OpLink, OpCut, OpConnected:
			if op.U < 0 || op.U >= s.N || op.V < 0 || op.V >= s.N {
				return fmt.Errorf("workload: op %d %s with n=%d: %w", i, op, s.N, ErrVertexOutOfRange)
			}
		case OpSnapshot, OpClear:
		default:
			return fmt.Errorf("workload: op %d kind %q: %w", i, op.Kind, ErrInvalidOp)
		}
	}

	return nil
}

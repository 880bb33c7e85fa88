// SPDX-License-Identifier: MIT

package workload

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadScript decodes and validates a YAML script:
//
//	name: square
//	n: 4
//	ops:
//	  - {op: link, u: 0, v: 1}
//	  - {op: connected, u: 1, v: 0}
//	  - {op: snapshot}
func LoadScript(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Script
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("workload: decode script: %w: %w", ErrInvalidOp, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Write encodes s as YAML.
func (s *Script) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("workload: encode script: %w", err)
	}

	return enc.Close()
}

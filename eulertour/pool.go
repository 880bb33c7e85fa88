// SPDX-License-Identifier: MIT

package eulertour

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/malbarbo/fera-sub000/dyntree"
)

func newPool(name string, size int) pool {
	p := pool{
		name:  name,
		stack: make([]int, 0, size),
		free:  bitset.New(uint(size)),
	}
	p.reset(size)

	return p
}

// reset puts every id back on the free-list; the lowest id is handed out
// first.
func (p *pool) reset(size int) {
	p.stack = p.stack[:0]
	for id := size - 1; id >= 0; id-- {
		p.stack = append(p.stack, id)
	}
	p.free.ClearAll()
	for id := 0; id < size; id++ {
		p.free.Set(uint(id))
	}
}

func (p *pool) acquire() int {
	if len(p.stack) == 0 {
		panic(fmt.Errorf("eulertour: %s pool exhausted: %w", p.name, dyntree.ErrCorrupted))
	}
	id := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	if !p.free.Test(uint(id)) {
		panic(fmt.Errorf("eulertour: %s %d handed out twice: %w", p.name, id, dyntree.ErrCorrupted))
	}
	p.free.Clear(uint(id))

	return id
}

func (p *pool) release(id int) {
	if p.free.Test(uint(id)) {
		panic(fmt.Errorf("eulertour: %s %d released twice: %w", p.name, id, dyntree.ErrCorrupted))
	}
	p.free.Set(uint(id))
	p.stack = append(p.stack, id)
}

// live reports whether id is currently handed out.
func (p *pool) live(id int) bool {
	return !p.free.Test(uint(id))
}

// size returns the number of ids the pool manages.
func (p *pool) size() int {
	return int(p.free.Len())
}

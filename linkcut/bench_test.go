// SPDX-License-Identifier: MIT

package linkcut_test

import (
	"math/rand"
	"testing"

	"github.com/malbarbo/fera-sub000/linkcut"
)

// BenchmarkLinkCut_Path measures linking and cutting the middle edge of a
// long path, the worst case for naive re-rooting.
func BenchmarkLinkCut_Path(b *testing.B) {
	const n = 100_000
	t := linkcut.New(n)
	for v := 1; v < n; v++ {
		t.Link(v-1, v)
	}
	mid := linkcut.Edge{U: n/2 - 1, V: n / 2}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.Cut(mid)
		t.Link(mid.U, mid.V)
	}
}

// BenchmarkIsConnected_Random measures queries on a random spanning tree.
func BenchmarkIsConnected_Random(b *testing.B) {
	const n = 100_000
	rng := rand.New(rand.NewSource(1))
	t := linkcut.New(n)
	for v := 1; v < n; v++ {
		t.Link(v, rng.Intn(v))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.IsConnected(rng.Intn(n), rng.Intn(n))
	}
}

// SPDX-License-Identifier: MIT

package linkcut

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// verifyArena checks that splay child links are mirrored by parent links and
// that following parent pointers from any node terminates.
func verifyArena(t *testing.T, tr *Tree) {
	t.Helper()
	n := len(tr.nodes)
	for x := 0; x < n; x++ {
		nd := tr.nodes[x]
		if nd.left != none {
			require.Equal(t, x, tr.nodes[nd.left].parent, "left child of %d", x)
		}
		if nd.right != none {
			require.Equal(t, x, tr.nodes[nd.right].parent, "right child of %d", x)
		}
		if nd.left != none && nd.left == nd.right {
			t.Fatalf("node %d has the same left and right child", x)
		}
		steps := 0
		for y := x; y != none; y = tr.nodes[y].parent {
			steps++
			require.LessOrEqual(t, steps, n, "parent cycle through %d", x)
		}
	}
}

// inorder lists the splay subtree of x in represented (depth) order,
// honouring pending flips without pushing them.
func inorder(tr *Tree, x int, flipped bool, out []int) []int {
	if x == none {
		return out
	}
	nd := tr.nodes[x]
	flipped = flipped != nd.rev
	l, r := nd.left, nd.right
	if flipped {
		l, r = r, l
	}
	out = inorder(tr, l, flipped, out)
	out = append(out, x)

	return inorder(tr, r, flipped, out)
}

func TestExpose_PathOrder(t *testing.T) {
	tr := New(6)
	// Path 0-1-2-3-4-5 rooted at 0.
	for v := 1; v < 6; v++ {
		_, ok := tr.Link(v, v-1)
		require.True(t, ok)
	}
	tr.MakeRoot(0)

	for _, x := range []int{5, 2, 4, 0, 3} {
		tr.expose(x)
		verifyArena(t, tr)
		assert.True(t, tr.isRoot(x))
		tr.push(x)
		assert.Equal(t, none, tr.nodes[x].right, "expose(%d) leaves a right child", x)

		want := make([]int, 0, x+1)
		for v := 0; v <= x; v++ {
			want = append(want, v)
		}
		assert.Equal(t, want, inorder(tr, x, false, nil), "path to %d", x)
	}
}

func TestPush_TogglesChildren(t *testing.T) {
	tr := New(3)
	tr.nodes[1].left, tr.nodes[1].right = 0, 2
	tr.nodes[0].parent, tr.nodes[2].parent = 1, 1
	tr.nodes[1].rev = true
	tr.nodes[2].rev = true

	tr.push(1)
	assert.False(t, tr.nodes[1].rev)
	assert.Equal(t, 2, tr.nodes[1].left)
	assert.Equal(t, 0, tr.nodes[1].right)
	assert.True(t, tr.nodes[0].rev)
	assert.False(t, tr.nodes[2].rev, "a second flip cancels the first")
}

func TestArena_StaysConsistent(t *testing.T) {
	const n = 30
	rng := rand.New(rand.NewSource(99))
	tr := New(n)
	var live []Edge
	for step := 0; step < 2000; step++ {
		u, v := rng.Intn(n), rng.Intn(n)
		switch {
		case !tr.IsConnected(u, v):
			e, ok := tr.Link(u, v)
			require.True(t, ok)
			live = append(live, e)
		case len(live) > 0:
			i := rng.Intn(len(live))
			tr.Cut(live[i])
			live[i] = live[len(live)-1]
			live = live[:len(live)-1]
		}
		if step%50 == 0 {
			tr.MakeRoot(rng.Intn(n))
		}
		verifyArena(t, tr)
	}
}

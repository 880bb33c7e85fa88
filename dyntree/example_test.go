// SPDX-License-Identifier: MIT

package dyntree_test

import (
	"fmt"

	"github.com/malbarbo/fera-sub000/dyntree"
	"github.com/malbarbo/fera-sub000/linkcut"
)

// Feeding pairs in weight order yields a minimum spanning forest that can
// still be edited afterwards.
func ExampleSpanningForest() {
	pairs := []dyntree.Pair{{U: 0, V: 1}, {U: 2, V: 3}, {U: 1, V: 2}, {U: 0, V: 3}}

	f := linkcut.New(4)
	tree := dyntree.SpanningForest[linkcut.Edge](f, pairs)
	fmt.Println(len(tree), dyntree.CountComponents[linkcut.Edge](f))

	f.Cut(tree[2])
	fmt.Println(dyntree.Components[linkcut.Edge](f))
	// Output:
	// 3 1
	// [0 0 2 2]
}

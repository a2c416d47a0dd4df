// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avl

import "iter"

// All returns an iterator over the elements in ascending order.
func (tree *Tree[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		walk(tree.root, yield)
	}
}

func walk[E any](n *node[E], yield func(E) bool) bool {
	if n == nil {
		return true
	}
	return walk(n.left, yield) && yield(n.item) && walk(n.right, yield)
}

// InOrder returns the elements in ascending order.
func (tree *Tree[E]) InOrder() []E {
	items := make([]E, 0, tree.size)
	for item := range tree.All() {
		items = append(items, item)
	}
	return items
}

// Between returns, in ascending order, every element e with low <= e < high.
func (tree *Tree[E]) Between(low, high E) []E {
	var results []E
	tree.rangeSearch(tree.root, low, high, &results)
	return results
}

func (tree *Tree[E]) rangeSearch(n *node[E], low, high E, results *[]E) {
	if n == nil {
		return
	}

	aboveLow := tree.cmp(n.item, low) >= 0
	belowHigh := tree.cmp(n.item, high) < 0

	// Smaller elements can only satisfy the bound if this one is not below it
	if aboveLow {
		tree.rangeSearch(n.left, low, high, results)
	}
	if aboveLow && belowHigh {
		*results = append(*results, n.item)
	}
	if belowHigh {
		tree.rangeSearch(n.right, low, high, results)
	}
}

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

import (
	"errors"
	"math"
)

// IsBalanced reports whether the heights of the two subtrees of every node
// differ by at most one. The heights are measured, not read from the cache.
func (tree *Tree[E]) IsBalanced() bool {
	_, ok := checkBalance(tree.root)
	return ok
}

func checkBalance[E any](n *node[E]) (int, bool) {
	if n == nil {
		return 0, true
	}
	lh, ok := checkBalance(n.left)
	if !ok {
		return 0, false
	}
	rh, ok := checkBalance(n.right)
	if !ok {
		return 0, false
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, false
	}
	return max(lh, rh) + 1, true
}

// IsBSTProperty reports whether an in-order walk yields a non-decreasing
// sequence.
func (tree *Tree[E]) IsBSTProperty() bool {
	first := true
	var prev E
	for item := range tree.All() {
		if !first && tree.cmp(prev, item) > 0 {
			return false
		}
		prev, first = item, false
	}
	return true
}

// CheckHeights reports whether every cached node height equals one plus the
// larger of its children's heights.
func (tree *Tree[E]) CheckHeights() bool {
	return checkHeights(tree.root)
}

func checkHeights[E any](n *node[E]) bool {
	if n == nil {
		return true
	}
	if n.height != max(height(n.left), height(n.right))+1 {
		return false
	}
	return checkHeights(n.left) && checkHeights(n.right)
}

func countNodes[E any](n *node[E]) int {
	if n == nil {
		return 0
	}
	return 1 + countNodes(n.left) + countNodes(n.right)
}

// HeightBound returns the worst-case height of an AVL tree holding n
// elements, 1.4405·log2(n+2) − 0.3277. It returns 0 when n < 1.
func HeightBound(n int) float64 {
	if n < 1 {
		return 0
	}
	return 1.4405*math.Log2(float64(n+2)) - 0.3277
}

// Validate checks every structural invariant and returns the violations
// joined together, or nil.
func (tree *Tree[E]) Validate() error {
	var errs []error
	if !tree.IsBalanced() {
		errs = append(errs, ErrUnbalanced)
	}
	if !tree.IsBSTProperty() {
		errs = append(errs, ErrOrdering)
	}
	if !tree.CheckHeights() {
		errs = append(errs, ErrHeightCache)
	}
	if countNodes(tree.root) != tree.size {
		errs = append(errs, ErrSizeMismatch)
	}
	if tree.size > 0 && float64(tree.Height()) > HeightBound(tree.size) {
		errs = append(errs, ErrHeightBound)
	}
	return errors.Join(errs...)
}

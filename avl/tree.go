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

// Package avl implements a height-balanced binary search tree holding a set
// of unique elements.
//
// After every Add and Remove the tree keeps three invariants: elements in a
// left subtree compare strictly less than their parent and elements in a right
// subtree strictly greater, the heights of the two subtrees of any node differ
// by at most one, and every cached node height equals one plus the larger of
// its children's heights. Lookups, insertions and deletions are therefore
// O(log n), and recursion never goes deeper than about 1.44·log2(n+2).
//
// A Tree is not safe for concurrent use. Callers that share a tree between
// goroutines must serialize every call, reads included.
package avl

import (
	"cmp"
)

// Tree is an AVL tree of unique elements of type E ordered by a three-way
// comparison function.
//
// Elements must not be mutated in a way that changes their ordering while they
// are stored in the tree.
type Tree[E any] struct {
	root *node[E]
	size int
	cmp  func(a, b E) int
}

// New returns an empty tree ordered by cmp, which must return a negative
// number when a < b, zero when a == b and a positive number when a > b.
// New panics if cmp is nil.
func New[E any](cmp func(a, b E) int) *Tree[E] {
	if cmp == nil {
		panic("avl: nil comparison function")
	}
	return &Tree[E]{cmp: cmp}
}

// NewOrdered returns an empty tree using the natural ordering of E.
func NewOrdered[E cmp.Ordered]() *Tree[E] {
	return New(cmp.Compare[E])
}

// Size returns the number of elements in the tree.
func (tree *Tree[E]) Size() int {
	return tree.size
}

// IsEmpty reports whether the tree holds no elements.
func (tree *Tree[E]) IsEmpty() bool {
	return tree.size == 0
}

// Height returns the height of the root, 0 for an empty tree.
func (tree *Tree[E]) Height() int {
	return height(tree.root)
}

// Clear removes every element.
func (tree *Tree[E]) Clear() {
	tree.root = nil
	tree.size = 0
}

// Contains reports whether item is stored in the tree.
func (tree *Tree[E]) Contains(item E) bool {
	n := tree.root
	for n != nil {
		switch c := tree.cmp(item, n.item); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Minimum returns the smallest element, or ErrEmptyTree.
func (tree *Tree[E]) Minimum() (E, error) {
	if tree.root == nil {
		var zero E
		return zero, ErrEmptyTree
	}
	return minNode(tree.root).item, nil
}

// Maximum returns the largest element, or ErrEmptyTree.
func (tree *Tree[E]) Maximum() (E, error) {
	if tree.root == nil {
		var zero E
		return zero, ErrEmptyTree
	}
	return maxNode(tree.root).item, nil
}

// Add inserts item and reports whether it was inserted. Adding an element
// that is already present leaves the tree untouched and returns false.
func (tree *Tree[E]) Add(item E) bool {
	var added bool
	tree.root = tree.insertRecursive(tree.root, item, &added)
	if added {
		tree.size++
	}
	return added
}

func (tree *Tree[E]) insertRecursive(n *node[E], item E, added *bool) *node[E] {
	if n == nil {
		*added = true
		return newNode(item)
	}

	switch c := tree.cmp(item, n.item); {
	case c < 0:
		n.left = tree.insertRecursive(n.left, item, added)
	case c > 0:
		n.right = tree.insertRecursive(n.right, item, added)
	default:
		// duplicate, nothing below changed
		return n
	}

	updateHeight(n)
	return rebalance(n)
}

// Remove deletes item and reports whether it was present. Removing an
// element that is not in the tree is a no-op.
func (tree *Tree[E]) Remove(item E) bool {
	var removed bool
	tree.root = tree.deleteRecursive(tree.root, item, &removed)
	if removed {
		tree.size--
	}
	return removed
}

func (tree *Tree[E]) deleteRecursive(n *node[E], item E, removed *bool) *node[E] {
	if n == nil {
		return nil
	}

	switch c := tree.cmp(item, n.item); {
	case c < 0:
		n.left = tree.deleteRecursive(n.left, item, removed)
	case c > 0:
		n.right = tree.deleteRecursive(n.right, item, removed)
	default:
		*removed = true
		if n.left == nil {
			right := n.right
			n.right = nil
			return right
		}
		if n.right == nil {
			left := n.left
			n.left = nil
			return left
		}

		// Two children: the successor takes n's place.
		successor := minNode(n.right)
		successor.right = removeMin(n.right)
		successor.left = n.left
		n.left, n.right = nil, nil
		n = successor
	}

	updateHeight(n)
	return rebalance(n)
}

// removeMin detaches the leftmost node of the subtree rooted at n and returns
// the rebalanced remainder. The detached node keeps its item but loses its
// right child, which is spliced into its parent.
func removeMin[E any](n *node[E]) *node[E] {
	if n.left == nil {
		right := n.right
		n.right = nil
		return right
	}
	n.left = removeMin(n.left)
	updateHeight(n)
	return rebalance(n)
}

func rotateLeft[E any](n *node[E]) *node[E] {
	pivot := n.right

	n.right = pivot.left
	pivot.left = n

	updateHeight(n)
	updateHeight(pivot)

	return pivot
}

func rotateRight[E any](n *node[E]) *node[E] {
	pivot := n.left

	n.left = pivot.right
	pivot.right = n

	updateHeight(n)
	updateHeight(pivot)

	return pivot
}

// rebalance expects n's height to be current. A child with a balance factor
// of exactly zero takes the single-rotation path; deletions rely on that.
func rebalance[E any](n *node[E]) *node[E] {
	bf := balanceFactor(n)

	// Left-heavy
	if bf > 1 {
		if balanceFactor(n.left) >= 0 {
			return rotateRight(n)
		}
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	}

	// Right-heavy
	if bf < -1 {
		if balanceFactor(n.right) <= 0 {
			return rotateLeft(n)
		}
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}

	return n
}

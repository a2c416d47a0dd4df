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

type node[E any] struct {
	item   E
	height int // 1 for a leaf, 0 is reserved for an absent subtree
	left   *node[E]
	right  *node[E]
}

func newNode[E any](item E) *node[E] {
	return &node[E]{item: item, height: 1}
}

func height[E any](n *node[E]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func updateHeight[E any](n *node[E]) {
	n.height = max(height(n.left), height(n.right)) + 1
}

func balanceFactor[E any](n *node[E]) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

func minNode[E any](n *node[E]) *node[E] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func maxNode[E any](n *node[E]) *node[E] {
	for n.right != nil {
		n = n.right
	}
	return n
}

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
	"fmt"
	"io"
)

// The drawing layout (branch kinds, edge glyphs and indentation) follows
// bitmarkd's avl/print.go, Copyright (c) 2014-2019 Bitmark Inc., ISC license.

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Fprint writes a sideways ASCII drawing of the tree to w, the right subtree
// above each node and the left subtree below it. Every node shows its element
// and cached height.
func (tree *Tree[E]) Fprint(w io.Writer) error {
	if tree.root == nil {
		_, err := fmt.Fprintln(w, "<empty>")
		return err
	}
	return printTree(w, tree.root, "", rootBranch)
}

func printTree[E any](w io.Writer, n *node[E], prefix string, br branch) error {
	if n.right != nil {
		t := "       "
		if br == leftBranch {
			t = "|      "
		}
		if err := printTree(w, n.right, prefix+t, rightBranch); err != nil {
			return err
		}
	}

	var edge string
	switch br {
	case rootBranch:
		edge = "|------+ "
	case leftBranch:
		edge = "\\------+ "
	case rightBranch:
		edge = "/------+ "
	}
	if _, err := fmt.Fprintf(w, "%s%s%v (h=%d)\n", prefix, edge, n.item, n.height); err != nil {
		return err
	}

	if n.left != nil {
		t := "       "
		if br == rightBranch {
			t = "|      "
		}
		return printTree(w, n.left, prefix+t, leftBranch)
	}
	return nil
}

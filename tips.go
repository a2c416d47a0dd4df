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

package main

import (
	"math/rand"
)

var tips = []string{
	"Sorted input turns a plain BST into a linked list; an AVL tree stays about log2(n) deep",
	"A single rotation fixes left-left and right-right imbalance",
	"Left-right and right-left imbalance need two rotations",
	"Only the two nodes moved by a rotation need their heights recomputed",
	"Deleting can leave a child exactly balanced; that case takes a single rotation",
	"A node with two children is replaced by the smallest key of its right subtree",
	"The sparsest AVL trees grow like Fibonacci numbers",
	"Try 'add 1 2 3 4 5 6 7' and watch the root move",
	"Use 'range LO HI' to list keys in [LO, HI)",
	"Press ctrl+y to copy the drawing to the clipboard",
}

// pickRandomString returns a random string from the provided slice.
// If the slice is empty, it returns an empty string.
func pickRandomString(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[rand.Intn(len(list))]
}

func GetRandomTip() string {
	return pickRandomString(tips)
}

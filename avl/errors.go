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

import "errors"

// ErrEmptyTree is returned when reading the minimum or maximum of a tree
// without elements.
var ErrEmptyTree = errors.New("avl: tree is empty")

// Invariant violations reported by Validate.
var (
	ErrUnbalanced   = errors.New("avl: subtree heights differ by more than one")
	ErrOrdering     = errors.New("avl: in-order sequence is not ascending")
	ErrHeightCache  = errors.New("avl: cached node height is stale")
	ErrSizeMismatch = errors.New("avl: size does not match node count")
	ErrHeightBound  = errors.New("avl: height exceeds the AVL bound")
)

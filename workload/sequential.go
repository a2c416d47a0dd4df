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

package workload

import "math/rand"

// AscendingStrategy yields 0, 1, ..., n-1. Sorted input is the worst case for
// an unbalanced search tree.
type AscendingStrategy struct{}

func (AscendingStrategy) Name() string { return "ascending" }

func (AscendingStrategy) Description() string { return "sorted keys 0..n-1" }

func (AscendingStrategy) Keys(n int, _ *rand.Rand) []int {
	keys := make([]int, 0, max(n, 0))
	for i := 0; i < n; i++ {
		keys = append(keys, i)
	}
	return keys
}

// DescendingStrategy yields n-1, n-2, ..., 0.
type DescendingStrategy struct{}

func (DescendingStrategy) Name() string { return "descending" }

func (DescendingStrategy) Description() string { return "reverse-sorted keys n-1..0" }

func (DescendingStrategy) Keys(n int, _ *rand.Rand) []int {
	keys := make([]int, 0, max(n, 0))
	for i := n - 1; i >= 0; i-- {
		keys = append(keys, i)
	}
	return keys
}

// ZigzagStrategy alternates between the lowest and highest remaining key:
// 0, n-1, 1, n-2, ...
type ZigzagStrategy struct{}

func (ZigzagStrategy) Name() string { return "zigzag" }

func (ZigzagStrategy) Description() string { return "alternating low/high keys 0, n-1, 1, n-2, ..." }

func (ZigzagStrategy) Keys(n int, _ *rand.Rand) []int {
	keys := make([]int, 0, max(n, 0))
	lo, hi := 0, n-1
	for lo <= hi {
		keys = append(keys, lo)
		if lo != hi {
			keys = append(keys, hi)
		}
		lo++
		hi--
	}
	return keys
}

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

// RandomStrategy draws n keys uniformly from [0, n). Duplicates are expected,
// so a set built from it holds roughly 63% of n distinct keys.
type RandomStrategy struct{}

func (RandomStrategy) Name() string { return "random" }

func (RandomStrategy) Description() string { return "n uniform draws from [0, n), duplicates allowed" }

func (RandomStrategy) Keys(n int, rng *rand.Rand) []int {
	if n <= 0 {
		return []int{}
	}
	keys := make([]int, n)
	for i := range keys {
		keys[i] = rng.Intn(n)
	}
	return keys
}

// PermutationStrategy yields every key of [0, n) exactly once in random order.
type PermutationStrategy struct{}

func (PermutationStrategy) Name() string { return "permutation" }

func (PermutationStrategy) Description() string { return "shuffled distinct keys 0..n-1" }

func (PermutationStrategy) Keys(n int, rng *rand.Rand) []int {
	if n <= 0 {
		return []int{}
	}
	return rng.Perm(n)
}

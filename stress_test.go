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
	"bytes"
	"math"
	"testing"

	"github.com/cybrota/avlkit/avl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStress(t *testing.T) {
	result, err := runStress(StressOptions{Operations: 5000, KeyRange: 300, Seed: 11})
	require.NoError(t, err)

	assert.Equal(t, 5000, result.Adds+result.Duplicates+result.Removes+result.Misses)
	assert.Equal(t, result.Adds-result.Removes, result.FinalSize)
	assert.Positive(t, result.Removes)
	assert.LessOrEqual(t, result.FinalSize, 300)
}

func TestRunStressWithProgress(t *testing.T) {
	var progress bytes.Buffer
	_, err := runStress(StressOptions{Operations: 200, KeyRange: 50, Seed: 2, Progress: &progress})
	require.NoError(t, err)

	assert.Contains(t, progress.String(), "Stress run completed")
}

func TestRunStressWithHugeKeyRange(t *testing.T) {
	result, err := runStress(StressOptions{Operations: 200, KeyRange: math.MaxInt, Seed: 5})
	require.NoError(t, err)

	assert.Equal(t, 200, result.Adds+result.Duplicates+result.Removes+result.Misses)
	assert.LessOrEqual(t, result.FinalSize, 200)
}

func TestRunStressRejectsBadOptions(t *testing.T) {
	_, err := runStress(StressOptions{Operations: 10, KeyRange: 0})
	assert.Error(t, err)

	_, err = runStress(StressOptions{Operations: -1, KeyRange: 10})
	assert.Error(t, err)
}

func TestCheckExtremes(t *testing.T) {
	tree := avl.NewOrdered[int]()
	assert.NoError(t, checkExtremes(tree, map[int]struct{}{}))

	tree.Add(3)
	tree.Add(9)
	assert.NoError(t, checkExtremes(tree, map[int]struct{}{3: {}, 9: {}}))
	assert.Error(t, checkExtremes(tree, map[int]struct{}{3: {}, 10: {}}))
	assert.Error(t, checkExtremes(tree, map[int]struct{}{}))
}

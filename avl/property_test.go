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
	"math/rand"
	"slices"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

// opKeys is the key domain of generated workloads. It is small so that
// removals often hit present keys, many of them with two children.
const opKeys = 48

// op is a single step of a generated workload: even values add a key, odd
// values remove one.
type op uint8

func (o op) key() int { return int(o/2) % opKeys }
func (o op) isRemove() bool { return o%2 == 1 }

func TestInvariantsHoldAfterEveryOperation(t *testing.T) {
	removedPresent := 0

	f := func(ops []op) bool {
		tree := NewOrdered[int]()
		reference := make(map[int]struct{})

		for _, o := range ops {
			key := o.key()
			_, present := reference[key]

			if o.isRemove() {
				if tree.Remove(key) != present {
					t.Errorf("remove %d disagreed with reference (present=%v)", key, present)
					return false
				}
				if present {
					removedPresent++
				}
				delete(reference, key)
			} else {
				if tree.Add(key) == present {
					t.Errorf("add %d disagreed with reference (present=%v)", key, present)
					return false
				}
				reference[key] = struct{}{}
			}

			if err := tree.Validate(); err != nil {
				t.Errorf("after %v: %v", o, err)
				return false
			}
			if tree.Size() != len(reference) {
				t.Errorf("size: got=%d want=%d", tree.Size(), len(reference))
				return false
			}
		}

		for key := range opKeys {
			if _, present := reference[key]; tree.Contains(key) != present {
				t.Errorf("contains %d: got=%v want=%v", key, !present, present)
				return false
			}
		}

		want := make([]int, 0, len(reference))
		for key := range reference {
			want = append(want, key)
		}
		slices.Sort(want)
		return slices.Equal(want, tree.InOrder())
	}

	if err := quick.Check(f, &quick.Config{MaxCount: 200}); err != nil {
		t.Error(err)
	}
	require.Positive(t, removedPresent, "no generated removal hit a stored key")
}

func findNode[E any](tree *Tree[E], item E) *node[E] {
	n := tree.root
	for n != nil {
		switch c := tree.cmp(item, n.item); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Removing every key of a full tree in a scrambled order deletes plenty of
// nodes with two children.
func TestRemoveInteriorNodes(t *testing.T) {
	f := func(seed int64) bool {
		tree := NewOrdered[int]()
		for k := range 127 {
			tree.Add(k)
		}

		twoChildren := 0
		for i, k := range rand.New(rand.NewSource(seed)).Perm(127) {
			if n := findNode(tree, k); n != nil && n.left != nil && n.right != nil {
				twoChildren++
			}
			if !tree.Remove(k) {
				t.Errorf("remove %d reported absent", k)
				return false
			}
			if err := tree.Validate(); err != nil {
				t.Errorf("after removing %d: %v", k, err)
				return false
			}
			if tree.Size() != 126-i {
				t.Errorf("size after %d removals: %d", i+1, tree.Size())
				return false
			}
		}
		return tree.IsEmpty() && twoChildren > 0
	}

	if err := quick.Check(f, &quick.Config{MaxCount: 50}); err != nil {
		t.Error(err)
	}
}

func TestMinimumMaximumMatchReference(t *testing.T) {
	f := func(keys []int32) bool {
		tree := NewOrdered[int32]()
		for _, k := range keys {
			tree.Add(k)
		}
		if len(keys) == 0 {
			_, err := tree.Minimum()
			return err == ErrEmptyTree
		}
		lo, err := tree.Minimum()
		if err != nil || lo != slices.Min(keys) {
			return false
		}
		hi, err := tree.Maximum()
		return err == nil && hi == slices.Max(keys)
	}

	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestDuplicateInsertIsIdempotent(t *testing.T) {
	f := func(keys []uint8) bool {
		once := NewOrdered[uint8]()
		twice := NewOrdered[uint8]()
		for _, k := range keys {
			once.Add(k)
			twice.Add(k)
			twice.Add(k)
		}
		return once.Size() == twice.Size() && slices.Equal(once.InOrder(), twice.InOrder())
	}

	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestHeightStaysWithinBound(t *testing.T) {
	tree := NewOrdered[int]()
	for k := range 1 << 12 {
		tree.Add(k)
		require.LessOrEqual(t, float64(tree.Height()), HeightBound(tree.Size()), "after adding %d", k)
	}
	for k := 0; k < 1<<12; k += 3 {
		tree.Remove(k)
		require.LessOrEqual(t, float64(tree.Height()), HeightBound(tree.Size()), "after removing %d", k)
	}
}

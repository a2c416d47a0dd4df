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
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/cybrota/avlkit/avl"
	"github.com/cybrota/avlkit/workload"
)

type DemoOptions struct {
	Size     int
	Rounds   int
	Seed     int64
	Strategy workload.Strategy
}

// DemoStage is a snapshot of the tree taken between demo phases
type DemoStage struct {
	Label    string
	Size     int
	Height   int
	Bound    float64
	Balanced bool
	BST      bool
}

type DemoReport struct {
	Strategy string
	Keys     int
	Removed  int
	Stages   []DemoStage
}

func snapshot(label string, tree *avl.Tree[int]) DemoStage {
	return DemoStage{
		Label:    label,
		Size:     tree.Size(),
		Height:   tree.Height(),
		Bound:    avl.HeightBound(tree.Size()),
		Balanced: tree.IsBalanced(),
		BST:      tree.IsBSTProperty(),
	}
}

// runDemo builds a tree from the strategy's keys, then removes the current
// maximum and minimum Rounds times each, stopping early if the tree empties.
func runDemo(opts DemoOptions) (*DemoReport, error) {
	if opts.Strategy == nil {
		return nil, errors.New("demo: no key strategy")
	}
	if opts.Size < 0 || opts.Rounds < 0 {
		return nil, fmt.Errorf("demo: size and rounds must not be negative (size=%d rounds=%d)", opts.Size, opts.Rounds)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	keys := opts.Strategy.Keys(opts.Size, rng)

	tree := avl.NewOrdered[int]()
	for _, k := range keys {
		tree.Add(k)
	}

	report := &DemoReport{Strategy: opts.Strategy.Name(), Keys: len(keys)}
	report.Stages = append(report.Stages, snapshot("after insertion", tree))

	for i := 0; i < opts.Rounds; i++ {
		hi, err := tree.Maximum()
		if errors.Is(err, avl.ErrEmptyTree) {
			break
		}
		tree.Remove(hi)
		report.Removed++

		lo, err := tree.Minimum()
		if errors.Is(err, avl.ErrEmptyTree) {
			break
		}
		tree.Remove(lo)
		report.Removed++
	}

	report.Stages = append(report.Stages, snapshot("after removing extremes", tree))

	if err := tree.Validate(); err != nil {
		return report, fmt.Errorf("demo: invariants broken: %w", err)
	}
	return report, nil
}

func yesNo(ok bool) string {
	if ok {
		return Green + "yes" + Reset
	}
	return Red + "no" + Reset
}

func (r *DemoReport) Write(w io.Writer) {
	fmt.Fprintf(w, "Inserted %d %s key(s), removed %d extreme key(s)\n\n", r.Keys, r.Strategy, r.Removed)
	for _, st := range r.Stages {
		fmt.Fprintf(w, "%s:\n", st.Label)
		fmt.Fprintf(w, "  is current tree balanced? %s\n", yesNo(st.Balanced))
		fmt.Fprintf(w, "  is current tree binary search tree? %s\n", yesNo(st.BST))
		fmt.Fprintf(w, "  size=%d height=%d (bound %.2f)\n\n", st.Size, st.Height, st.Bound)
	}
}

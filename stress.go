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
	"log"
	"math/rand"

	"github.com/cybrota/avlkit/avl"
	"github.com/schollz/progressbar/v3"
)

// extremes are compared against the reference set this often, since that
// scan is linear in the key range
const extremesCheckInterval = 1000

type StressOptions struct {
	Operations int
	KeyRange   int
	Seed       int64
	Progress   io.Writer // nil disables the progress bar
}

type StressResult struct {
	Adds       int
	Duplicates int
	Removes    int
	Misses     int
	MaxHeight  int
	FinalSize  int
}

// runStress applies a random mix of adds and removes over [0, KeyRange) and
// checks the tree against a reference set after every operation.
func runStress(opts StressOptions) (*StressResult, error) {
	if opts.Operations < 0 || opts.KeyRange <= 0 {
		return nil, fmt.Errorf("stress: need operations >= 0 and key range > 0 (operations=%d key_range=%d)",
			opts.Operations, opts.KeyRange)
	}

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = progressbar.NewOptions(opts.Operations,
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription("🌲 Stressing tree..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(opts.Progress, "\n✅ Stress run completed!\n")
			}),
		)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	tree := avl.NewOrdered[int]()
	// the set never holds more keys than operations applied
	reference := make(map[int]struct{}, min(opts.KeyRange, opts.Operations))
	result := &StressResult{}

	for i := 0; i < opts.Operations; i++ {
		key := rng.Intn(opts.KeyRange)
		_, present := reference[key]

		if rng.Intn(2) == 0 {
			if tree.Add(key) == present {
				return result, fmt.Errorf("op %d: add(%d) disagrees with reference (present=%t)", i, key, present)
			}
			if present {
				result.Duplicates++
			} else {
				result.Adds++
				reference[key] = struct{}{}
			}
		} else {
			if tree.Remove(key) != present {
				return result, fmt.Errorf("op %d: remove(%d) disagrees with reference (present=%t)", i, key, present)
			}
			if present {
				result.Removes++
				delete(reference, key)
			} else {
				result.Misses++
			}
		}

		if err := tree.Validate(); err != nil {
			return result, fmt.Errorf("op %d: %w", i, err)
		}
		if tree.Size() != len(reference) {
			return result, fmt.Errorf("op %d: size %d, reference holds %d", i, tree.Size(), len(reference))
		}
		if i%extremesCheckInterval == 0 || i == opts.Operations-1 {
			if err := checkExtremes(tree, reference); err != nil {
				return result, fmt.Errorf("op %d: %w", i, err)
			}
		}

		result.MaxHeight = max(result.MaxHeight, tree.Height())

		if bar != nil {
			bar.Add(1)
		}
	}

	if bar != nil {
		bar.Finish()
	}

	result.FinalSize = tree.Size()
	log.Printf("Stress run completed: %d operations, final size %d, max height %d",
		opts.Operations, result.FinalSize, result.MaxHeight)
	return result, nil
}

func checkExtremes(tree *avl.Tree[int], reference map[int]struct{}) error {
	lo, loErr := tree.Minimum()
	hi, hiErr := tree.Maximum()

	if len(reference) == 0 {
		if !errors.Is(loErr, avl.ErrEmptyTree) || !errors.Is(hiErr, avl.ErrEmptyTree) {
			return errors.New("empty tree did not report ErrEmptyTree")
		}
		return nil
	}
	if loErr != nil || hiErr != nil {
		return errors.Join(loErr, hiErr)
	}

	first := true
	var wantLo, wantHi int
	for k := range reference {
		if first || k < wantLo {
			wantLo = k
		}
		if first || k > wantHi {
			wantHi = k
		}
		first = false
	}
	if lo != wantLo || hi != wantHi {
		return fmt.Errorf("extremes [%d, %d], reference holds [%d, %d]", lo, hi, wantLo, wantHi)
	}
	return nil
}

func (r *StressResult) Write(w io.Writer) {
	fmt.Fprintf(w, "adds=%d duplicates=%d removes=%d misses=%d\n", r.Adds, r.Duplicates, r.Removes, r.Misses)
	fmt.Fprintf(w, "final size=%d max height=%d (bound for final size %.2f)\n",
		r.FinalSize, r.MaxHeight, avl.HeightBound(r.FinalSize))
	fmt.Fprintf(w, "%sall invariants held after every operation%s\n", Green, Reset)
}

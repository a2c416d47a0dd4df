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

package avl_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/cybrota/avlkit/avl"
)

func ExampleTree() {
	tree := avl.NewOrdered[int]()
	for k := 1; k <= 7; k++ {
		tree.Add(k)
	}
	tree.Remove(4)

	lo, _ := tree.Minimum()
	hi, _ := tree.Maximum()
	fmt.Println(tree.InOrder(), tree.Size(), tree.Height())
	fmt.Println(lo, hi, tree.Contains(4), tree.IsBalanced())
	// Output:
	// [1 2 3 5 6 7] 6 3
	// 1 7 false true
}

func ExampleNew() {
	byLength := avl.New(func(a, b string) int {
		if c := len(a) - len(b); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	for _, w := range []string{"pear", "fig", "banana", "kiwi"} {
		byLength.Add(w)
	}
	fmt.Println(byLength.InOrder())
	// Output: [fig kiwi pear banana]
}

func ExampleTree_Minimum() {
	tree := avl.NewOrdered[string]()
	if _, err := tree.Minimum(); err != nil {
		fmt.Println(err)
	}
	// Output: avl: tree is empty
}

func ExampleTree_Between() {
	tree := avl.NewOrdered[int]()
	for _, k := range []int{10, 20, 30, 40, 50} {
		tree.Add(k)
	}
	fmt.Println(tree.Between(15, 40))
	// Output: [20 30]
}

func ExampleTree_Fprint() {
	tree := avl.NewOrdered[int]()
	for _, k := range []int{2, 1, 3} {
		tree.Add(k)
	}
	tree.Fprint(os.Stdout)
	// Output:
	//        /------+ 3 (h=1)
	// |------+ 2 (h=2)
	//        \------+ 1 (h=1)
}

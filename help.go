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
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func usageMarkdown() string {
	return fmt.Sprintf(`
**avlkit %s**

A height-balanced binary search tree (AVL tree) with tools to watch it work.
Every insert and delete rebalances the tree with at most two rotations per
level, so lookups stay logarithmic even for sorted input.

Built with Go %s

# 1. Commands
* **demo**: build a tree from 10000 keys, strip the max and min 1000 times each, report invariants
* **stress**: random adds and removes, every invariant checked after each step
* **print**: draw the tree for the keys given on the command line
* **repl**: type commands such as *add 5 3 8*, *remove 3*, *contains 8*, *print*
* **tui**: the same commands with a live drawing of the tree
* **settings**: show or create ~/.avlkit.yaml

# 2. Key strategies
* ascending, descending, zigzag, random, permutation

# 3. Invariants
* every left subtree holds smaller keys, every right subtree larger ones
* subtree heights differ by at most one at every node
* height never exceeds 1.4405·log2(n+2) − 0.3277

# Please be aware
* Copy to clipboard on Linux requires 'xclip' or 'xsel' to be installed

# License
Licensed under the Apache License, Version 2.0
`, version, runtime.Version())
}

func getHelpMessage() string {
	result := markdown.Render(usageMarkdown(), 80, 3)
	return string(result)
}

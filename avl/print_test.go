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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewOrdered[int]().Fprint(&buf))
	assert.Equal(t, "<empty>\n", buf.String())

	buf.Reset()
	require.NoError(t, buildTree(2, 1, 3).Fprint(&buf))
	want := "" +
		"       /------+ 3 (h=1)\n" +
		"|------+ 2 (h=2)\n" +
		"       \\------+ 1 (h=1)\n"
	assert.Equal(t, want, buf.String())
}

func TestFprintDeeperTree(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, buildTree(4, 2, 6, 1, 3).Fprint(&buf))
	want := "" +
		"       /------+ 6 (h=1)\n" +
		"|------+ 4 (h=3)\n" +
		"       |      /------+ 3 (h=1)\n" +
		"       \\------+ 2 (h=2)\n" +
		"              \\------+ 1 (h=1)\n"
	assert.Equal(t, want, buf.String())
}

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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadKeys(t *testing.T) {
	input := "# seed keys\n5\n  3 \n\n-2\n5\n"

	keys, err := readKeys(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []int{5, 3, -2, 5}, keys)
}

func TestReadKeysReportsLine(t *testing.T) {
	_, err := readKeys(strings.NewReader("1\n2\nthree\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), "three")
}

func TestReadKeysFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.txt")
	require.NoError(t, os.WriteFile(path, []byte("10\n20\n"), 0644))

	keys, err := readKeysFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20}, keys)

	_, err = readKeysFromFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestParseKeys(t *testing.T) {
	keys, err := parseKeys([]string{"4", "-1", "0"})
	require.NoError(t, err)
	assert.Equal(t, []int{4, -1, 0}, keys)

	_, err = parseKeys([]string{"4", "x"})
	assert.EqualError(t, err, `invalid key "x": expected an integer`)
}

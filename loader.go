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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// readKeys parses one integer key per line. Blank lines and lines starting
// with '#' are skipped.
func readKeys(r io.Reader) ([]int, error) {
	var keys []int

	scanner := bufio.NewScanner(r)
	// Increase buffer size for better performance with large key files
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid key %q: %w", lineNo, line, err)
		}
		keys = append(keys, key)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return keys, nil
}

// readKeysFromFile reads keys from the file at path.
func readKeysFromFile(path string) ([]int, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("key file %s not found", path)
		}
		return nil, err
	}
	defer file.Close()

	keys, err := readKeys(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return keys, nil
}

// parseKeys converts command arguments to integer keys
func parseKeys(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	for _, arg := range args {
		key, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid key %q: expected an integer", arg)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

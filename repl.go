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
	"errors"
	"fmt"
	"io"
)

const replPrompt = "avl> "

// runREPL reads commands from in until EOF or quit, writing answers to out.
// Command errors are reported and the loop continues.
func runREPL(in io.Reader, out io.Writer, s *Session, interactive bool) error {
	scanner := bufio.NewScanner(in)
	prompt := func() {
		if interactive {
			fmt.Fprint(out, replPrompt)
		}
	}

	prompt()
	for scanner.Scan() {
		result, err := s.Execute(scanner.Text())
		switch {
		case errors.Is(err, errQuit):
			return nil
		case err != nil:
			fmt.Fprintf(out, "%serror:%s %v\n", Red, Reset, err)
		case result != "":
			fmt.Fprintln(out, result)
		}
		prompt()
	}
	return scanner.Err()
}

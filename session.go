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
	"strings"

	"github.com/cybrota/avlkit/avl"
	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"
)

// errQuit is returned by Execute when the user asks to leave the session.
var errQuit = errors.New("quit")

// SessionStats counts how contains queries were answered
type SessionStats struct {
	Queries       int
	BloomRejected int
	CacheHits     int
	TreeLookups   int
}

// Session is an interactive tree of integers driven by text commands.
type Session struct {
	tree  *avl.Tree[int]
	seen  *bloom.BloomFilter // every key ever added since the last clear
	memo  *cache.Cache
	stats SessionStats
}

func NewSession(config SessionConfig) *Session {
	return &Session{
		tree: avl.NewOrdered[int](),
		seen: bloom.NewWithEstimates(config.BloomCapacity, config.BloomFalsePositive),
		memo: NewMembershipCache(config.CacheTTL),
	}
}

// Tree exposes the session's tree for rendering
func (s *Session) Tree() *avl.Tree[int] {
	return s.tree
}

func (s *Session) Stats() SessionStats {
	return s.stats
}

// Add inserts keys and returns how many were new
func (s *Session) Add(keys ...int) int {
	added := 0
	for _, key := range keys {
		s.seen.AddString(membershipKey(key))
		if s.tree.Add(key) {
			added++
		}
	}
	if added > 0 {
		s.memo.Flush()
	}
	return added
}

// Remove deletes keys and returns how many were present
func (s *Session) Remove(keys ...int) int {
	removed := 0
	for _, key := range keys {
		if s.tree.Remove(key) {
			removed++
		}
	}
	if removed > 0 {
		s.memo.Flush()
	}
	return removed
}

// Contains answers from the bloom filter when the key was never added, then
// from the memo, and only then from the tree.
func (s *Session) Contains(key int) bool {
	s.stats.Queries++

	if !s.seen.TestString(membershipKey(key)) {
		s.stats.BloomRejected++
		return false
	}
	if present, ok := GetMembership(s.memo, key); ok {
		s.stats.CacheHits++
		return present
	}

	s.stats.TreeLookups++
	present := s.tree.Contains(key)
	CacheMembership(s.memo, key, present)
	return present
}

func (s *Session) Clear() {
	s.tree.Clear()
	s.seen.ClearAll()
	s.memo.Flush()
}

// Load adds every key read from r and returns how many were new
func (s *Session) Load(r io.Reader) (int, error) {
	keys, err := readKeys(r)
	if err != nil {
		return 0, err
	}
	return s.Add(keys...), nil
}

// Render draws the tree as Fprint does
func (s *Session) Render() string {
	var b strings.Builder
	s.tree.Fprint(&b)
	return b.String()
}

// Summary is a one-line description of the tree shape
func (s *Session) Summary() string {
	validity := "valid"
	if err := s.tree.Validate(); err != nil {
		validity = "INVALID"
	}
	return fmt.Sprintf("size=%d height=%d bound=%.2f %s",
		s.tree.Size(), s.tree.Height(), avl.HeightBound(s.tree.Size()), validity)
}

// splitCommand splits a command line into words.
func splitCommand(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %v", line, err)
	}
	return args, nil
}

// Execute runs one command line and returns the text to show the user.
func (s *Session) Execute(line string) (string, error) {
	words, err := splitCommand(line)
	if err != nil {
		return "", err
	}
	if len(words) == 0 {
		return "", nil
	}

	name, args := strings.ToLower(words[0]), words[1:]
	switch name {
	case "add", "insert":
		keys, err := requireKeys(name, args, 1, -1)
		if err != nil {
			return "", err
		}
		added := s.Add(keys...)
		return fmt.Sprintf("added %d of %d key(s); %s", added, len(keys), s.Summary()), nil

	case "remove", "delete", "rm":
		keys, err := requireKeys(name, args, 1, -1)
		if err != nil {
			return "", err
		}
		removed := s.Remove(keys...)
		return fmt.Sprintf("removed %d of %d key(s); %s", removed, len(keys), s.Summary()), nil

	case "contains", "has":
		keys, err := requireKeys(name, args, 1, 1)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%t", s.Contains(keys[0])), nil

	case "min", "max":
		var (
			key int
			err error
		)
		if name == "min" {
			key, err = s.tree.Minimum()
		} else {
			key, err = s.tree.Maximum()
		}
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d", key), nil

	case "range":
		keys, err := requireKeys(name, args, 2, 2)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%v", s.tree.Between(keys[0], keys[1])), nil

	case "size":
		return fmt.Sprintf("%d", s.tree.Size()), nil

	case "height":
		return fmt.Sprintf("%d", s.tree.Height()), nil

	case "list", "inorder":
		return fmt.Sprintf("%v", s.tree.InOrder()), nil

	case "print", "show":
		return strings.TrimRight(s.Render(), "\n"), nil

	case "check", "validate":
		if err := s.tree.Validate(); err != nil {
			return "", err
		}
		return fmt.Sprintf("balanced=%t bst=%t; %s", s.tree.IsBalanced(), s.tree.IsBSTProperty(), s.Summary()), nil

	case "stats":
		st := s.stats
		return fmt.Sprintf("queries=%d bloom_rejected=%d cache_hits=%d tree_lookups=%d",
			st.Queries, st.BloomRejected, st.CacheHits, st.TreeLookups), nil

	case "clear":
		s.Clear()
		return "cleared", nil

	case "help", "?":
		return sessionHelp, nil

	case "quit", "exit", "q":
		return "", errQuit
	}

	return "", fmt.Errorf("unknown command %q (try \"help\")", words[0])
}

// requireKeys parses args as integer keys, checking the count is within
// [minArgs, maxArgs]; maxArgs < 0 means unlimited.
func requireKeys(name string, args []string, minArgs, maxArgs int) ([]int, error) {
	if len(args) < minArgs || (maxArgs >= 0 && len(args) > maxArgs) {
		return nil, fmt.Errorf("%s: wrong number of keys (%d)", name, len(args))
	}
	return parseKeys(args)
}

const sessionHelp = `commands:
  add K...        insert keys
  remove K...     delete keys
  contains K      membership test
  min | max       smallest / largest key
  range LO HI     keys in [LO, HI)
  size | height   tree size / height
  list            keys in order
  print           draw the tree
  check           verify invariants
  stats           contains query statistics
  clear           drop every key
  quit            leave`

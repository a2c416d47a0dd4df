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

package workload

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownStrategy is returned by Manager.Get for unregistered names.
var ErrUnknownStrategy = errors.New("workload: unknown strategy")

// Manager keeps the registered key generation strategies by name
type Manager struct {
	strategies map[string]Strategy
}

// NewManager creates a manager with all built-in strategies registered
func NewManager() *Manager {
	manager := &Manager{strategies: make(map[string]Strategy)}

	manager.Register(AscendingStrategy{})
	manager.Register(DescendingStrategy{})
	manager.Register(ZigzagStrategy{})
	manager.Register(RandomStrategy{})
	manager.Register(PermutationStrategy{})

	return manager
}

// Register adds a strategy, replacing any strategy with the same name
func (m *Manager) Register(strategy Strategy) {
	m.strategies[strategy.Name()] = strategy
}

// Get looks a strategy up by name
func (m *Manager) Get(name string) (Strategy, error) {
	strategy, ok := m.strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownStrategy, name, m.Names())
	}
	return strategy, nil
}

// Names returns the registered strategy names in sorted order
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.strategies))
	for name := range m.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

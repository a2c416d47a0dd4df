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
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	updated, _ := InitialModel(newTestSession()).Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func typeAndEnter(t *testing.T, m Model, line string) (Model, tea.Cmd) {
	t.Helper()
	m.input.SetValue(line)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model), cmd
}

func TestModelExecutesCommands(t *testing.T) {
	m := newTestModel(t)
	require.True(t, m.ready)

	m, _ = typeAndEnter(t, m, "add 4 2 6")
	assert.Equal(t, 3, m.session.Tree().Size())
	assert.False(t, m.isError)
	assert.Contains(t, m.message, "added 3 of 3")
	assert.Empty(t, m.input.Value())
	assert.Contains(t, m.treeView.View(), "4 (h=2)")

	m, _ = typeAndEnter(t, m, "remove nine")
	assert.True(t, m.isError)
	assert.Contains(t, m.message, "invalid key")

	assert.Contains(t, m.View(), "size=3 height=2")
}

func TestModelQuitCommand(t *testing.T) {
	m := newTestModel(t)

	_, cmd := typeAndEnter(t, m, "quit")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelToggleHelp(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyF1})
	m = updated.(Model)
	assert.True(t, m.showHelp)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyF1})
	assert.False(t, updated.(Model).showHelp)
}

func TestModelClipboardResult(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(clipboardMsg{err: errors.New("no clipboard utilities available")})
	m = updated.(Model)
	assert.True(t, m.isError)
	assert.Contains(t, m.message, "copy failed")

	updated, _ = m.Update(clipboardMsg{})
	m = updated.(Model)
	assert.False(t, m.isError)
	assert.Contains(t, m.message, "Copied")
}

func TestModelViewBeforeResize(t *testing.T) {
	m := InitialModel(newTestSession())
	assert.Contains(t, m.View(), "Initializing")
}

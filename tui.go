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
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	input    textinput.Model
	treeView viewport.Model
	helpView viewport.Model

	session *Session

	// State
	showHelp bool
	message  string
	isError  bool
	tip      string

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	Border         lipgloss.Style
	Title          lipgloss.Style
	Status         lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the styles for a color scheme
func NewStyles(scheme *ColorScheme) *Styles {
	return &Styles{
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.BorderFocus),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Padding(0, 1).
			Bold(true),
		Status: lipgloss.NewStyle().
			Foreground(scheme.Text),
		HelpKey: lipgloss.NewStyle().
			Foreground(scheme.TextMuted).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(scheme.Success).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(scheme.Error).
			Bold(true),
	}
}

// clipboardMsg reports the outcome of a copy request
type clipboardMsg struct {
	err error
}

func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{err: clipboard.WriteAll(text)}
	}
}

// InitialModel creates the initial model
func InitialModel(session *Session) Model {
	ti := textinput.New()
	ti.Placeholder = "add 5 3 8 | remove 3 | contains 8 | range 1 9 ..."
	ti.Prompt = replPrompt
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	treeView := viewport.New(0, 0)
	helpView := viewport.New(0, 0)

	// Initialize glamour renderer with auto-detection
	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	m := Model{
		input:           ti,
		treeView:        treeView,
		helpView:        helpView,
		session:         session,
		tip:             GetRandomTip(),
		styles:          NewStyles(colorSchemeFor(detectTerminalMode())),
		glamourRenderer: glamourRenderer,
	}
	m.refreshTree()
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "f1":
			m.showHelp = !m.showHelp
			if m.showHelp {
				m.helpView.SetContent(m.renderHelp())
				m.helpView.GotoTop()
			}
			return m, nil
		case "ctrl+y":
			return m, copyToClipboard(m.session.Render())
		case "pgup", "pgdown":
			if m.showHelp {
				m.helpView, cmd = m.helpView.Update(msg)
			} else {
				m.treeView, cmd = m.treeView.Update(msg)
			}
			return m, cmd
		case "enter":
			return m.execute()
		}

	case clipboardMsg:
		if msg.err != nil {
			m.setMessage(fmt.Sprintf("copy failed: %v", msg.err), true)
		} else {
			m.setMessage("📋 Copied tree drawing to clipboard", false)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) execute() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if line == "" {
		return m, nil
	}

	result, err := m.session.Execute(line)
	switch {
	case errors.Is(err, errQuit):
		return m, tea.Quit
	case err != nil:
		m.setMessage(err.Error(), true)
	default:
		// multi-line answers (print, help) belong in the tree pane
		if strings.Contains(result, "\n") {
			m.setMessage(line, false)
			m.treeView.SetContent(result)
			return m, nil
		}
		m.setMessage(result, false)
	}

	m.refreshTree()
	m.tip = GetRandomTip()
	return m, nil
}

func (m *Model) setMessage(text string, isError bool) {
	m.message = text
	m.isError = isError
}

func (m *Model) refreshTree() {
	m.treeView.SetContent(m.session.Render())
}

func (m *Model) updateLayout() {
	// title, input, status, tip and key help take 6 lines; borders take 2
	paneHeight := max(m.height-8, 3)
	paneWidth := max(m.width-2, 20)

	m.treeView.Width = paneWidth
	m.treeView.Height = paneHeight
	m.helpView.Width = paneWidth
	m.helpView.Height = paneHeight
	m.input.Width = max(paneWidth-len(replPrompt)-2, 10)
}

func (m Model) renderHelp() string {
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(usageMarkdown()); err == nil {
			return rendered
		}
	}
	return usageMarkdown()
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	title := m.styles.Title.Render("🌲 avlkit")

	pane := m.treeView.View()
	if m.showHelp {
		pane = m.helpView.View()
	}
	pane = m.styles.Border.Width(m.treeView.Width).Render(pane)

	status := m.styles.Status.Render(m.session.Summary())
	if m.message != "" {
		style := m.styles.SuccessMessage
		if m.isError {
			style = m.styles.ErrorMessage
		}
		status += "  " + style.Render(m.message)
	}

	keys := []string{
		m.styles.HelpKey.Render("enter") + m.styles.HelpDesc.Render(" run"),
		m.styles.HelpKey.Render("pgup/pgdown") + m.styles.HelpDesc.Render(" scroll"),
		m.styles.HelpKey.Render("ctrl+y") + m.styles.HelpDesc.Render(" copy"),
		m.styles.HelpKey.Render("f1") + m.styles.HelpDesc.Render(" help"),
		m.styles.HelpKey.Render("esc") + m.styles.HelpDesc.Render(" quit"),
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.input.View(),
		pane,
		status,
		m.styles.HelpDesc.Render("💡 "+m.tip),
		strings.Join(keys, "  "),
	)
}

func runTUI(session *Session) error {
	p := tea.NewProgram(InitialModel(session), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

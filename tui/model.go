// SPDX-License-Identifier: MIT
package tui

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/graphsolve/puzzle"
	"github.com/katalvlaran/graphsolve/render"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	matrixStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// stepMsg carries one traced assignment into the Bubble Tea event loop.
type stepMsg struct {
	i, j int
	v    puzzle.Color
	matrix string
}

// doneMsg signals that the solve goroutine finished.
type doneMsg struct {
	ok bool
}

// Model is a Bubble Tea program that renders a live puzzle.Solve run.
type Model struct {
	viewport viewport.Model
	steps    int
	done     bool
	ok       bool

	events <-chan tea.Msg
}

// New wires a Model to the channel a Run call feeds trace/done events
// into. Callers normally use Run rather than constructing a Model
// directly.
func New(events <-chan tea.Msg) Model {
	vp := viewport.New(80, 20)
	return Model{viewport: vp, events: events}
}

func (m Model) Init() tea.Cmd {
	return m.waitForEvent
}

func (m Model) waitForEvent() tea.Msg {
	return <-m.events
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 4
	case stepMsg:
		m.steps++
		m.viewport.SetContent(msg.matrix)
		return m, m.waitForEvent
	case doneMsg:
		m.done = true
		m.ok = msg.ok
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	header := headerStyle.Render(fmt.Sprintf("graphsolve — step %d", m.steps))
	body := matrixStyle.Render(m.viewport.View())
	footer := footerStyle.Render("q to quit")
	if m.done {
		result := "no solution"
		if m.ok {
			result = "solved"
		}
		footer = footerStyle.Render(fmt.Sprintf("%s — press q to exit", result))
	}
	return header + "\n" + body + "\n" + footer
}

// Run solves g with tracing wired to a Bubble Tea program, blocking
// until the program exits and, unless the program failed, until the
// solve finishes. Events traced after the program exits are dropped. It
// returns the same (ok) Solve would.
func Run(g *puzzle.Graph, settings puzzle.Settings) (bool, error) {
	events := make(chan tea.Msg, 64)
	result := make(chan bool, 1)
	quit := make(chan struct{})

	send := func(msg tea.Msg) {
		select {
		case events <- msg:
		case <-quit:
		}
	}

	trace := func(g *puzzle.Graph, i, j int, v puzzle.Color) {
		var buf bytes.Buffer
		render.Print(&buf, g)
		send(stepMsg{i: i, j: j, v: v, matrix: buf.String()})
	}
	settings = settings.WithTrace(trace)

	go func() {
		_, ok := puzzle.Solve(g, settings)
		send(doneMsg{ok: ok})
		result <- ok
	}()

	p := tea.NewProgram(New(events))
	_, err := p.Run()
	close(quit)
	if err != nil {
		return false, err
	}
	return <-result, nil
}

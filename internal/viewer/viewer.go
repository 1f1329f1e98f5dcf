// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package viewer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/dustin/go-humanize"
	"github.com/fsnotify/fsnotify"

	"github.com/lff/lff/internal/filter"
	"github.com/lff/lff/internal/focus"
	"github.com/lff/lff/internal/highlight"
	"github.com/lff/lff/internal/match"
)

var statusStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#000000")).
	Background(lipgloss.Color("#87d7d7"))

// textChangedMsg signals that the watched file changed on disk.
type textChangedMsg struct{}

// watchErrMsg carries a watcher failure into the update loop.
type watchErrMsg struct{ err error }

// Model is the live log viewer: a viewport over the watched file with
// highlights applied, re-projected on every change event. The f key flips
// between the full view and the focus view.
type Model struct {
	path      string
	store     *filter.Store
	engine    *match.Engine
	surface   *highlight.TermSurface
	projector *highlight.Projector
	builder   *focus.Builder
	watcher   *fsnotify.Watcher
	readLines func(string) ([]string, error)

	viewport  viewport.Model
	lines     []string
	focusMode bool
	ready     bool
	lastErr   error
}

// New builds a viewer over path. readLines abstracts the file read so the
// command layer supplies its scanner and tests can inject fixtures.
func New(path string, store *filter.Store, engine *match.Engine,
	watcher *fsnotify.Watcher, readLines func(string) ([]string, error)) Model {
	surface := highlight.NewTermSurface()
	return Model{
		path:      filepath.Clean(path),
		store:     store,
		engine:    engine,
		surface:   surface,
		projector: highlight.NewProjector(engine, surface),
		builder:   focus.NewBuilder(engine),
		watcher:   watcher,
		readLines: readLines,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(func() tea.Msg { return textChangedMsg{} }, m.waitForChange())
}

// waitForChange blocks on the watcher until the viewed file is written or
// recreated. Invoked lazily per event; registration never fires it.
func (m Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-m.watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(ev.Name) == m.path && ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					return textChangedMsg{}
				}
			case err, ok := <-m.watcher.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{err: err}
			}
		}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			// Clear-on-exit: markers from this session must not linger.
			m.projector.Clear()
			return m, tea.Quit
		case "f":
			m.focusMode = !m.focusMode
			m.refresh()
			return m, nil
		}
	case tea.WindowSizeMsg:
		headerHeight := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight
		}
		m.refresh()
		return m, nil
	case textChangedMsg:
		lines, err := m.readLines(m.path)
		if err != nil {
			m.lastErr = err
		} else {
			m.lastErr = nil
			m.lines = lines
		}
		m.refresh()
		return m, m.waitForChange()
	case watchErrMsg:
		m.lastErr = msg.err
		return m, m.waitForChange()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// refresh re-derives the viewport content from the current lines, filter
// list and mode.
func (m *Model) refresh() {
	if !m.ready {
		return
	}

	list := m.store.List()
	wasAtBottom := m.viewport.AtBottom()

	var content string
	if m.focusMode {
		kept, err := m.builder.Build(m.lines, list)
		switch {
		case err != nil:
			m.lastErr = err
		case len(kept) == 0:
			content = "(no lines matched any shown filter)"
		default:
			content = strings.Join(kept, "\n")
		}
	} else {
		marks := m.projector.OnTextChanged(m.lines, list)
		content = strings.Join(m.surface.Render(m.lines, marks), "\n")
	}

	m.viewport.SetContent(content)
	if wasAtBottom {
		m.viewport.GotoBottom()
	}
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	mode := "all"
	if m.focusMode {
		mode = "focus"
	}
	status := fmt.Sprintf(" %s | %s lines | %d filters | mode:%s | f:toggle q:quit ",
		m.path, humanize.Comma(int64(len(m.lines))), m.store.Len(), mode)
	if m.lastErr != nil {
		status += fmt.Sprintf("| error: %v ", m.lastErr)
	}

	return statusStyle.Render(status) + "\n" + m.viewport.View()
}

// Package ui implements the interactive pattern playground: a compiled
// pattern on top, a sample-text input below, live match highlighting in
// between.
package ui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	patternStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	matchStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10"))
	missStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	verdictStyle = lipgloss.NewStyle().Faint(true)
)

type playModel struct {
	name    string
	pattern string
	re      *regexp.Regexp
	input   textinput.Model
	width   int
}

// NewPlayModel returns a Bubble Tea model that matches re against the
// sample text as it is typed.
func NewPlayModel(name, pattern string, re *regexp.Regexp) tea.Model {
	ti := textinput.New()
	ti.Placeholder = "type sample text"
	ti.Prompt = "> "
	ti.Focus()

	return &playModel{
		name:    name,
		pattern: pattern,
		re:      re,
		input:   ti,
		width:   80,
	}
}

func (m *playModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *playModel) View() string {
	var b strings.Builder

	title := m.name
	if title == "" {
		title = "pattern"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(patternStyle.Render(runewidth.Truncate(m.pattern, max(m.width-2, 20), "…")))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderMatches())
	b.WriteString("\n\n")
	b.WriteString(verdictStyle.Render("esc to quit"))
	b.WriteString("\n")

	return b.String()
}

// renderMatches re-renders the sample with every match highlighted and
// a verdict line underneath.
func (m *playModel) renderMatches() string {
	sample := m.input.Value()
	if sample == "" {
		return verdictStyle.Render("no sample yet")
	}

	spans := m.re.FindAllStringIndex(sample, -1)
	if len(spans) == 0 {
		return missStyle.Render(sample) + "\n" + verdictStyle.Render("no match")
	}

	var out strings.Builder
	prev := 0
	for _, span := range spans {
		out.WriteString(sample[prev:span[0]])
		out.WriteString(matchStyle.Render(sample[span[0]:span[1]]))
		prev = span[1]
	}
	out.WriteString(sample[prev:])

	noun := "matches"
	if len(spans) == 1 {
		noun = "match"
	}
	out.WriteString("\n")
	out.WriteString(verdictStyle.Render(fmt.Sprintf("%d %s", len(spans), noun)))
	return out.String()
}

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/wasm-errcode/errors"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	codeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	phaseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// listHeight is the number of kinds shown at once.
const listHeight = 12

type kindRow struct {
	name string
	kind errors.Kind
}

type browserModel struct {
	filter   textinput.Model
	rows     []kindRow
	visible  []int
	raw      *errors.ErrCode
	selected int
}

func newBrowserModel() *browserModel {
	ti := textinput.New()
	ti.Placeholder = "filter by name, hex kind, or phase; 0x... decodes a raw code"
	ti.Focus()
	ti.Width = 60

	m := &browserModel{filter: ti}
	for k, name := range errors.Kinds() {
		m.rows = append(m.rows, kindRow{kind: k, name: name})
	}
	m.applyFilter()
	return m
}

func runInteractive() error {
	_, err := tea.NewProgram(newBrowserModel()).Run()
	return err
}

func (m *browserModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.selected < len(m.visible)-1 {
				m.selected++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

// applyFilter recomputes visible rows from the filter text. A 0x-prefixed
// filter that parses as a 32-bit word is also decoded on its own.
func (m *browserModel) applyFilter() {
	q := strings.ToLower(strings.TrimSpace(m.filter.Value()))

	m.raw = nil
	if strings.HasPrefix(q, "0x") {
		if n, err := parseUint32(q); err == nil {
			c := errors.FromRaw(n)
			m.raw = &c
		}
	}

	m.visible = m.visible[:0]
	for i, r := range m.rows {
		if q == "" || matchesRow(r, q) {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = max(len(m.visible)-1, 0)
	}
}

func matchesRow(r kindRow, q string) bool {
	hex := fmt.Sprintf("0x%04x", uint32(r.kind))
	return strings.Contains(strings.ToLower(r.name), q) ||
		strings.HasPrefix(hex, q) ||
		strings.HasPrefix(r.kind.Phase().String(), q)
}

// current returns the code shown in the detail pane.
func (m *browserModel) current() (errors.ErrCode, bool) {
	if m.raw != nil {
		return *m.raw, true
	}
	if len(m.visible) == 0 {
		return errors.ErrCode{}, false
	}
	return errors.New(m.rows[m.visible[m.selected]].kind), true
}

func (m *browserModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("errcode browser"))
	b.WriteString("\n\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	start := 0
	if m.selected >= listHeight {
		start = m.selected - listHeight + 1
	}
	end := min(start+listHeight, len(m.visible))
	for i := start; i < end; i++ {
		r := m.rows[m.visible[i]]
		line := fmt.Sprintf("%s  %-14s %s",
			codeStyle.Render(fmt.Sprintf("0x%04x", uint32(r.kind))),
			phaseStyle.Render(r.kind.Phase().String()),
			r.name)
		if i == m.selected {
			line = selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if len(m.visible) == 0 {
		b.WriteString(helpStyle.Render("  no matching kinds"))
		b.WriteByte('\n')
	}

	if c, ok := m.current(); ok {
		var d strings.Builder
		describe(&d, c)
		b.WriteByte('\n')
		b.WriteString(detailStyle.Render(strings.TrimRight(d.String(), "\n")))
		b.WriteByte('\n')
	}

	b.WriteString(helpStyle.Render(fmt.Sprintf("\n%d/%d kinds  ↑/↓ select  esc quit", len(m.visible), len(m.rows))))
	return b.String()
}

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hostbridge/host-bridge/hostval"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateEnterExpr modelState = iota
	stateInspect
	stateShowResult
)

type inspectModel struct {
	err      error
	value    *hostval.Value
	expr     string
	result   string
	convs    []conversion
	input    textinput.Model
	dimInput textinput.Model
	selected int
	state    modelState
}

func newInspectModel() *inspectModel {
	ti := textinput.New()
	ti.Placeholder = `1,2,NA or "a","b" or TRUE,FALSE`
	ti.Prompt = "value: "
	ti.Width = 50
	ti.Focus()

	di := textinput.New()
	di.Placeholder = "2x3 (optional)"
	di.Prompt = "dim: "
	di.Width = 20

	return &inspectModel{
		input:    ti,
		dimInput: di,
		convs:    conversions(),
		state:    stateEnterExpr,
	}
}

type convResultMsg struct {
	err    error
	result string
}

func (m *inspectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateEnterExpr {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateInspect && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateInspect && m.selected < len(m.convs)-1 {
				m.selected++
			}

		case "tab":
			if m.state == stateEnterExpr {
				if m.input.Focused() {
					m.input.Blur()
					m.dimInput.Focus()
				} else {
					m.dimInput.Blur()
					m.input.Focus()
				}
			}

		case "enter":
			switch m.state {
			case stateEnterExpr:
				v, err := buildValue(m.input.Value(), m.dimInput.Value(), "")
				if err != nil {
					m.err = err
					return m, nil
				}
				m.err = nil
				m.value = v
				m.expr = m.input.Value()
				m.selected = 0
				m.state = stateInspect

			case stateInspect:
				return m, m.applyConversion

			case stateShowResult:
				m.state = stateInspect
				m.result = ""
				m.err = nil
			}

		case "esc":
			switch m.state {
			case stateInspect:
				m.state = stateEnterExpr
				m.input.Focus()
			case stateShowResult:
				m.state = stateInspect
				m.result = ""
				m.err = nil
			}
		}

	case convResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateEnterExpr {
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
		m.dimInput, cmd = m.dimInput.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *inspectModel) applyConversion() tea.Msg {
	c := m.convs[m.selected]
	out, err := c.apply(m.value)
	if err != nil {
		return convResultMsg{err: err}
	}
	return convResultMsg{result: out}
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Value Inspector"))
	b.WriteString("\n\n")

	switch m.state {
	case stateEnterExpr:
		b.WriteString("Enter a value literal:\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(m.dimInput.View())
		b.WriteString("\n\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n\n")
		}
		b.WriteString(helpStyle.Render("tab switch field • enter inspect • ctrl+c quit"))

	case stateInspect:
		b.WriteString(kindStyle.Render(m.expr))
		b.WriteString("\n\n")
		b.WriteString(describe(m.value))
		b.WriteString("\nConversions:\n\n")
		for i, c := range m.convs {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + c.name))
			} else {
				b.WriteString(cursor + c.name)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter convert • esc back • q quit"))

	case stateShowResult:
		c := m.convs[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", kindStyle.Render(c.name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInspectModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

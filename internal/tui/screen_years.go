package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// yearInputField is the single numeric input of the create-year prompt.
type yearInputField struct {
	input textinput.Model
}

func newYearInputField() yearInputField {
	in := textinput.New()
	in.Placeholder = "year (e.g. 2026)"
	in.CharLimit = 4
	return yearInputField{input: in}
}

func (f *yearInputField) reset() {
	f.input.SetValue("")
	f.input.Focus()
}

func (f *yearInputField) year() (int, bool) {
	year, err := strconv.Atoi(f.input.Value())
	return year, err == nil
}

func (m appModel) updateYears(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.yearCreating {
		return m.updateYearCreate(msg)
	}

	switch msg := msg.(type) {
	case mutationDoneMsg:
		if msg.result.OK {
			m.errMsg = ""
			m.status = msg.result.Message
		} else {
			m.errMsg = msg.result.Message
		}
		return m, nil

	case tea.KeyMsg:
		available := m.years.AvailableYears()
		switch {
		case key.Matches(msg, keys.esc):
			return m.toMenu()
		case key.Matches(msg, keys.up):
			if m.yearCursor > 0 {
				m.yearCursor--
			}
		case key.Matches(msg, keys.down):
			if m.yearCursor < len(available)-1 {
				m.yearCursor++
			}
		case key.Matches(msg, keys.enter):
			if m.yearCursor < len(available) {
				m.years.SetCurrentYear(available[m.yearCursor].Year)
				m.status = fmt.Sprintf("switched to %d", available[m.yearCursor].Year)
			}
		case key.Matches(msg, keys.newItem):
			if m.manager.IsAdmin() {
				m.yearCreating = true
				m.yearInput.reset()
				m.errMsg = ""
			} else {
				m.errMsg = "admin role required"
			}
		case key.Matches(msg, keys.toggle):
			if !m.manager.IsAdmin() {
				m.errMsg = "admin role required"
				return m, nil
			}
			if m.yearCursor < len(available) {
				target := available[m.yearCursor]
				return m, m.toggleYearCmd(target.Year, !target.IsClosed)
			}
		}
	}

	return m, nil
}

func (m appModel) updateYearCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case mutationDoneMsg:
		m.yearCreating = false
		if msg.result.OK {
			m.errMsg = ""
			m.status = msg.result.Message
			m.yearCursor = 0
		} else {
			m.errMsg = msg.result.Message
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.yearCreating = false
			return m, nil
		case key.Matches(msg, keys.enter):
			year, ok := m.yearInput.year()
			if !ok {
				m.errMsg = "enter a 4-digit year"
				return m, nil
			}
			return m, m.createYearCmd(year)
		}
	}

	var cmd tea.Cmd
	m.yearInput.input, cmd = m.yearInput.input.Update(msg)
	return m, cmd
}

func (m appModel) viewYears() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Fiscal years"))
	b.WriteString("\n\n")

	if m.yearCreating {
		b.WriteString("New year: " + m.yearInput.input.View() + "\n")
		if m.errMsg != "" {
			b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
		}
		b.WriteString("\n" + helpStyle.Render("enter: create · esc: cancel"))
		return appStyle.Render(b.String())
	}

	available := m.years.AvailableYears()
	if len(available) == 0 {
		b.WriteString(helpStyle.Render("no years on record") + "\n")
	}
	current := m.years.CurrentYear()
	for i, y := range available {
		label := strconv.Itoa(y.Year)
		if y.IsClosed {
			label = closedStyle.Render(label) + " (closed)"
		}
		if y.Year == current {
			label += " *"
		}
		line := "  " + label
		if i == m.yearCursor {
			line = selectedStyle.Render("> ") + label
		}
		b.WriteString(line + "\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	} else if err := m.years.Err(); err != "" {
		b.WriteString("\n" + errorStyle.Render(err) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + helpStyle.Render(m.status))
	}
	b.WriteString("\n" + helpStyle.Render("enter: select · n: new year · t: open/close · esc: back"))
	return appStyle.Render(b.String())
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateExpenditures(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.expEditing {
		return m.updateExpenditureForm(msg)
	}

	switch msg := msg.(type) {
	case expendituresLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.expenditures = msg.items
		if m.expCursor >= len(m.expenditures) {
			m.expCursor = 0
		}
		return m, nil

	case mutationDoneMsg:
		if msg.result.OK {
			m.errMsg = ""
			m.status = msg.result.Message
			return m, m.loadExpendituresCmd()
		}
		m.errMsg = msg.result.Message
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m.toMenu()
		case key.Matches(msg, keys.up):
			if m.expCursor > 0 {
				m.expCursor--
			}
		case key.Matches(msg, keys.down):
			if m.expCursor < len(m.expenditures)-1 {
				m.expCursor++
			}
		case key.Matches(msg, keys.refresh):
			return m, m.loadExpendituresCmd()
		case key.Matches(msg, keys.newItem):
			if m.years.IsCurrentYearClosed() {
				m.errMsg = "year is closed"
				return m, nil
			}
			m.expEditing = true
			m.expForm.reset()
			m.errMsg = ""
		case key.Matches(msg, keys.delete):
			// Deleting payment records is an admin operation; the backend
			// enforces it too.
			if !m.manager.IsAdmin() {
				m.errMsg = "admin role required"
				return m, nil
			}
			if m.years.IsCurrentYearClosed() {
				m.errMsg = "year is closed"
				return m, nil
			}
			if m.expCursor < len(m.expenditures) {
				return m, m.deleteExpenditureCmd(m.expenditures[m.expCursor].ID)
			}
		}
	}

	return m, nil
}

func (m appModel) updateExpenditureForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case mutationDoneMsg:
		m.expEditing = false
		if msg.result.OK {
			m.errMsg = ""
			m.status = msg.result.Message
			return m, m.loadExpendituresCmd()
		}
		m.errMsg = msg.result.Message
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.expEditing = false
			return m, nil
		case key.Matches(msg, keys.tab):
			m.expForm.next()
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.expForm.focus < len(m.expForm.inputs)-1 {
				m.expForm.next()
				return m, nil
			}
			return m, m.addExpenditureCmd(m.expForm.value(m.years.CurrentYear()))
		}
	}

	var cmd tea.Cmd
	m.expForm.inputs[m.expForm.focus], cmd = m.expForm.inputs[m.expForm.focus].Update(msg)
	return m, cmd
}

func (m appModel) viewExpenditures() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Expenditures — %d%s", m.years.CurrentYear(), closedSuffix(m.years.IsCurrentYearClosed()))))
	b.WriteString("\n\n")

	if m.expEditing {
		for i := range m.expForm.inputs {
			b.WriteString(m.expForm.inputs[i].View() + "\n")
		}
		if m.errMsg != "" {
			b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
		}
		b.WriteString("\n" + helpStyle.Render("tab: next field · enter: save · esc: cancel"))
		return appStyle.Render(b.String())
	}

	if len(m.expenditures) == 0 {
		b.WriteString(helpStyle.Render("no expenditures recorded") + "\n")
	}
	for i, e := range m.expenditures {
		entry := fmt.Sprintf("%s — %d", e.Purpose, e.Amount)
		line := "  " + entry
		if i == m.expCursor {
			line = selectedStyle.Render("> ") + entry
		}
		b.WriteString(line + "\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + helpStyle.Render(m.status))
	}
	b.WriteString("\n" + helpStyle.Render("n: new · d: delete (admin) · r: refresh · esc: back"))
	return appStyle.Render(b.String())
}

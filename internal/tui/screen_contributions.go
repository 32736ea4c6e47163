package tui

import (
	"fmt"
	"strings"

	"github.com/festivize/festivize/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateContributions(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.contribEditing {
		return m.updateContributionForm(msg)
	}

	switch msg := msg.(type) {
	case contributionsLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.contributions = msg.items
		if m.contribCursor >= len(m.contributions) {
			m.contribCursor = 0
		}
		return m, nil

	case mutationDoneMsg:
		if msg.result.OK {
			m.errMsg = ""
			m.status = msg.result.Message
			return m, m.loadContributionsCmd()
		}
		m.errMsg = msg.result.Message
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "clipboard unavailable"
		} else {
			m.status = "summary copied to clipboard"
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m.toMenu()
		case key.Matches(msg, keys.up):
			if m.contribCursor > 0 {
				m.contribCursor--
			}
		case key.Matches(msg, keys.down):
			if m.contribCursor < len(m.contributions)-1 {
				m.contribCursor++
			}
		case key.Matches(msg, keys.refresh):
			return m, m.loadContributionsCmd()
		case key.Matches(msg, keys.copy):
			return m, m.copySummaryCmd()
		case key.Matches(msg, keys.newItem):
			if m.years.IsCurrentYearClosed() {
				m.errMsg = "year is closed"
				return m, nil
			}
			m.contribEditing = true
			m.contribForm.reset()
			m.errMsg = ""
		case key.Matches(msg, keys.delete):
			// Deleting received items is an admin operation; the backend
			// enforces it too.
			if !m.manager.IsAdmin() {
				m.errMsg = "admin role required"
				return m, nil
			}
			if m.years.IsCurrentYearClosed() {
				m.errMsg = "year is closed"
				return m, nil
			}
			if m.contribCursor < len(m.contributions) {
				return m, m.deleteContributionCmd(m.contributions[m.contribCursor].ID)
			}
		}
	}

	return m, nil
}

func (m appModel) updateContributionForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case mutationDoneMsg:
		m.contribEditing = false
		if msg.result.OK {
			m.errMsg = ""
			m.status = msg.result.Message
			return m, m.loadContributionsCmd()
		}
		m.errMsg = msg.result.Message
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.contribEditing = false
			return m, nil
		case key.Matches(msg, keys.tab):
			m.contribForm.next()
			return m, nil
		case msg.String() == "ctrl+t":
			m.contribForm.toggleKind()
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.contribForm.focus < len(m.contribForm.inputs)-1 {
				m.contribForm.next()
				return m, nil
			}
			return m, m.addContributionCmd(m.contribForm.value(m.years.CurrentYear()))
		}
	}

	var cmd tea.Cmd
	m.contribForm.inputs[m.contribForm.focus], cmd = m.contribForm.inputs[m.contribForm.focus].Update(msg)
	return m, cmd
}

func (m appModel) viewContributions() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Received items — %d%s", m.years.CurrentYear(), closedSuffix(m.years.IsCurrentYearClosed()))))
	b.WriteString("\n\n")

	if m.contribEditing {
		b.WriteString("kind: " + m.contribForm.kind + "\n")
		for i := range m.contribForm.inputs {
			b.WriteString(m.contribForm.inputs[i].View() + "\n")
		}
		if m.errMsg != "" {
			b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
		}
		b.WriteString("\n" + helpStyle.Render("tab: next field · ctrl+t: cash/item · enter: save · esc: cancel"))
		return appStyle.Render(b.String())
	}

	if len(m.contributions) == 0 {
		b.WriteString(helpStyle.Render("no received items recorded") + "\n")
	}
	for i, c := range m.contributions {
		line := "  " + contributionLine(c)
		if i == m.contribCursor {
			line = selectedStyle.Render("> ") + contributionLine(c)
		}
		b.WriteString(line + "\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + helpStyle.Render(m.status))
	}
	b.WriteString("\n" + helpStyle.Render("n: new · d: delete · c: copy summary · r: refresh · esc: back"))
	return appStyle.Render(b.String())
}

func contributionLine(c models.Contribution) string {
	if c.Kind == models.ContributionItem {
		return fmt.Sprintf("%s — %s", c.DonorName, c.Description)
	}
	return fmt.Sprintf("%s — %d", c.DonorName, c.Amount)
}

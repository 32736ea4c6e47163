package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var menuItems = []string{
	"Fiscal years",
	"Received items",
	"Expenditures",
	"Gallery",
	"Logout",
}

func (m appModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case key.Matches(keyMsg, keys.down):
		if m.menuCursor < len(menuItems)-1 {
			m.menuCursor++
		}
	case key.Matches(keyMsg, keys.enter):
		switch m.menuCursor {
		case 0:
			m.screen = screenYears
			m.yearCursor = 0
			m.errMsg = ""
			return m, nil
		case 1:
			m.screen = screenContributions
			m.contribCursor = 0
			m.errMsg = ""
			return m, m.loadContributionsCmd()
		case 2:
			m.screen = screenExpenditures
			m.expCursor = 0
			m.errMsg = ""
			return m, m.loadExpendituresCmd()
		case 3:
			m.screen = screenGallery
			m.errMsg = ""
			return m, m.loadImagesCmd()
		case 4:
			m.manager.Logout()
			m.screen = screenLogin
			m.login.reset()
			m.status = ""
			m.errMsg = ""
			return m, nil
		}
	}

	return m, nil
}

func (m appModel) viewMenu() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Festivize"))

	if id := m.manager.Identity(); id != nil {
		b.WriteString(helpStyle.Render(fmt.Sprintf("  %s (%s)", id.Email, id.Role)))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("selected year: %d%s", m.years.CurrentYear(), closedSuffix(m.years.IsCurrentYearClosed()))))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := "  " + item
		if i == m.menuCursor {
			line = selectedStyle.Render("> " + item)
		}
		b.WriteString(line + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + helpStyle.Render(m.status))
	}
	b.WriteString("\n" + helpStyle.Render("↑/↓: move · enter: open · q: quit"))
	return appStyle.Render(b.String())
}

func closedSuffix(closed bool) string {
	if closed {
		return " (closed)"
	}
	return ""
}

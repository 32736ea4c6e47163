package tui

import (
	"strings"

	"github.com/festivize/festivize/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		if !msg.result.OK {
			m.errMsg = msg.result.Message
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.result.Message
		m.screen = screenMenu
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit) && m.login.inputs[m.login.focus].Value() == "":
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(msg, keys.tab):
			m.login.next()
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.login.focus < len(m.login.inputs)-1 {
				m.login.next()
				return m, nil
			}
			return m, m.loginCmd(m.login.email(), m.login.password())
		case msg.String() == "ctrl+r":
			m.screen = screenRegister
			m.register.reset()
			m.errMsg = ""
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) viewLogin() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Festivize — sign in"))
	b.WriteString("\n\n")
	for i := range m.login.inputs {
		b.WriteString(m.login.inputs[i].View())
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("tab: next field · enter: submit · ctrl+r: register · q: quit"))
	return appStyle.Render(b.String())
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case registerDoneMsg:
		if !msg.result.OK {
			m.errMsg = msg.result.Message
			return m, nil
		}
		// Registration never logs the user in; go back to the login form.
		m.screen = screenLogin
		m.login.reset()
		m.errMsg = ""
		m.status = msg.result.Message
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.screen = screenLogin
			m.errMsg = ""
			return m, nil
		case key.Matches(msg, keys.tab):
			m.register.next()
			return m, nil
		case msg.String() == "ctrl+a":
			m.register.admin = !m.register.admin
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.register.focus < len(m.register.inputs)-1 {
				m.register.next()
				return m, nil
			}
			role := models.RoleUser
			if m.register.admin {
				role = models.RoleAdmin
			}
			return m, m.registerCmd(m.register.name(), m.register.email(), m.register.password(), role)
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) viewRegister() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Festivize — create account"))
	b.WriteString("\n\n")
	for i := range m.register.inputs {
		b.WriteString(m.register.inputs[i].View())
		b.WriteString("\n")
	}
	role := "user"
	if m.register.admin {
		role = "admin"
	}
	b.WriteString("\nrole: " + role + "\n")
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("tab: next field · ctrl+a: toggle role · enter: submit · esc: back"))
	return appStyle.Render(b.String())
}

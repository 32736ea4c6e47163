package tui

import (
	"context"

	"github.com/festivize/festivize/internal/adapter"
	"github.com/festivize/festivize/internal/logger"
	"github.com/festivize/festivize/internal/session"
	"github.com/festivize/festivize/internal/years"
	"github.com/festivize/festivize/models"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenLogin screen = iota
	screenRegister
	screenMenu
	screenYears
	screenContributions
	screenExpenditures
	screenGallery
)

// appModel is the single state machine behind the terminal program. One
// screen is active at a time; async work runs as tea commands that post
// typed messages back into Update.
type appModel struct {
	ctx     context.Context
	manager *session.Manager
	years   *years.Controller
	gateway adapter.ServerGateway
	logger  *logger.Logger
	events  <-chan session.IdentityEvent

	screen     screen
	quitByUser bool
	status     string
	errMsg     string

	login    loginForm
	register registerForm

	menuCursor int

	yearCursor   int
	yearCreating bool
	yearInput    yearInputField

	contributions  []models.Contribution
	contribCursor  int
	contribForm    contributionForm
	contribEditing bool

	expenditures []models.Expenditure
	expCursor    int
	expForm      expenditureForm
	expEditing   bool

	images []models.Image
}

func newAppModel(
	ctx context.Context,
	manager *session.Manager,
	yearsCtl *years.Controller,
	gateway adapter.ServerGateway,
	log *logger.Logger,
) appModel {
	m := appModel{
		ctx:         ctx,
		manager:     manager,
		years:       yearsCtl,
		gateway:     gateway,
		logger:      log,
		events:      manager.Subscribe(),
		login:       newLoginForm(),
		register:    newRegisterForm(),
		yearInput:   newYearInputField(),
		contribForm: newContributionForm(),
		expForm:     newExpenditureForm(),
	}

	if manager.IsAuthenticated() {
		m.screen = screenMenu
	} else {
		m.screen = screenLogin
	}

	return m
}

func (m appModel) Init() tea.Cmd {
	return m.waitForIdentity()
}

// waitForIdentity blocks on the identity event stream so a forced logout
// (token expiry) kicks the UI back to the login screen no matter which
// screen is active.
func (m appModel) waitForIdentity() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return nil
		}
		return identityChangedMsg{ev: ev}
	}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case identityChangedMsg:
		if msg.ev.Identity == nil && m.screen != screenLogin && m.screen != screenRegister {
			m.screen = screenLogin
			m.login.reset()
			m.status = ""
			m.errMsg = "session expired, please log in again"
		}
		return m, m.waitForIdentity()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitByUser = true
			return m, tea.Quit
		}
	}

	switch m.screen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenMenu:
		return m.updateMenu(msg)
	case screenYears:
		return m.updateYears(msg)
	case screenContributions:
		return m.updateContributions(msg)
	case screenExpenditures:
		return m.updateExpenditures(msg)
	case screenGallery:
		return m.updateGallery(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	switch m.screen {
	case screenLogin:
		return m.viewLogin()
	case screenRegister:
		return m.viewRegister()
	case screenMenu:
		return m.viewMenu()
	case screenYears:
		return m.viewYears()
	case screenContributions:
		return m.viewContributions()
	case screenExpenditures:
		return m.viewExpenditures()
	case screenGallery:
		return m.viewGallery()
	}
	return ""
}

// toMenu resets transient screen state and shows the menu.
func (m appModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.errMsg = ""
	m.yearCreating = false
	m.contribEditing = false
	m.expEditing = false
	return m, nil
}

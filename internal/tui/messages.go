package tui

import (
	"github.com/festivize/festivize/internal/session"
	"github.com/festivize/festivize/models"
)

type authDoneMsg struct {
	result models.Result
}

type registerDoneMsg struct {
	result models.Result
}

type contributionsLoadedMsg struct {
	items []models.Contribution
	err   error
}

type expendituresLoadedMsg struct {
	items []models.Expenditure
	err   error
}

type imagesLoadedMsg struct {
	images []models.Image
	err    error
}

type mutationDoneMsg struct {
	result models.Result
}

type copiedMsg struct {
	err error
}

type identityChangedMsg struct {
	ev session.IdentityEvent
}

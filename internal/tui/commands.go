package tui

import (
	"fmt"

	"github.com/festivize/festivize/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) loginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		return authDoneMsg{result: m.manager.Login(m.ctx, email, password)}
	}
}

func (m appModel) registerCmd(name, email, password, role string) tea.Cmd {
	return func() tea.Msg {
		return registerDoneMsg{result: m.manager.Register(m.ctx, name, email, password, role)}
	}
}

func (m appModel) loadContributionsCmd() tea.Cmd {
	year := m.years.CurrentYear()
	return func() tea.Msg {
		items, err := m.gateway.GetContributions(m.ctx, year)
		return contributionsLoadedMsg{items: items, err: err}
	}
}

func (m appModel) loadExpendituresCmd() tea.Cmd {
	year := m.years.CurrentYear()
	return func() tea.Msg {
		items, err := m.gateway.GetExpenditures(m.ctx, year)
		return expendituresLoadedMsg{items: items, err: err}
	}
}

func (m appModel) loadImagesCmd() tea.Cmd {
	return func() tea.Msg {
		images, err := m.gateway.GetImages(m.ctx)
		return imagesLoadedMsg{images: images, err: err}
	}
}

func (m appModel) addContributionCmd(c models.Contribution) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.gateway.AddContribution(m.ctx, c); err != nil {
			return mutationDoneMsg{result: models.Failure(err.Error())}
		}
		return mutationDoneMsg{result: models.Success("received item recorded")}
	}
}

func (m appModel) deleteContributionCmd(id string) tea.Cmd {
	return func() tea.Msg {
		if err := m.gateway.DeleteContribution(m.ctx, id); err != nil {
			return mutationDoneMsg{result: models.Failure(err.Error())}
		}
		return mutationDoneMsg{result: models.Success("received item deleted")}
	}
}

func (m appModel) addExpenditureCmd(e models.Expenditure) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.gateway.AddExpenditure(m.ctx, e); err != nil {
			return mutationDoneMsg{result: models.Failure(err.Error())}
		}
		return mutationDoneMsg{result: models.Success("expenditure recorded")}
	}
}

func (m appModel) deleteExpenditureCmd(id string) tea.Cmd {
	return func() tea.Msg {
		if err := m.gateway.DeleteExpenditure(m.ctx, id); err != nil {
			return mutationDoneMsg{result: models.Failure(err.Error())}
		}
		return mutationDoneMsg{result: models.Success("expenditure deleted")}
	}
}

func (m appModel) createYearCmd(year int) tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{result: m.years.CreateYear(m.ctx, year)}
	}
}

func (m appModel) toggleYearCmd(year int, isClosed bool) tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{result: m.years.UpdateYearStatus(m.ctx, year, isClosed)}
	}
}

// copySummaryCmd fetches both ledgers for the selected year and puts a
// plain-text summary on the system clipboard.
func (m appModel) copySummaryCmd() tea.Cmd {
	year := m.years.CurrentYear()
	return func() tea.Msg {
		contributions, err := m.gateway.GetContributions(m.ctx, year)
		if err != nil {
			return copiedMsg{err: err}
		}
		expenditures, err := m.gateway.GetExpenditures(m.ctx, year)
		if err != nil {
			return copiedMsg{err: err}
		}

		var received, spent int64
		for _, c := range contributions {
			received += c.Amount
		}
		for _, e := range expenditures {
			spent += e.Amount
		}
		summary := fmt.Sprintf(
			"Festival %d: %d received items (total %d), %d expenditures (total %d), balance %d",
			year, len(contributions), received, len(expenditures), spent, received-spent,
		)
		return copiedMsg{err: clipboard.WriteAll(summary)}
	}
}

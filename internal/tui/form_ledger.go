package tui

import (
	"strconv"

	"github.com/festivize/festivize/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// contributionForm collects a new received item. The kind toggles between
// cash and in-kind with tab; the amount field is read for cash, the
// description field for items.
type contributionForm struct {
	inputs []textinput.Model
	focus  int
	kind   string
}

func newContributionForm() contributionForm {
	donor := textinput.New()
	donor.Placeholder = "donor name"
	donor.CharLimit = 128
	donor.Focus()

	amount := textinput.New()
	amount.Placeholder = "amount"
	amount.CharLimit = 16

	description := textinput.New()
	description.Placeholder = "description (for items)"
	description.CharLimit = 256

	return contributionForm{
		inputs: []textinput.Model{donor, amount, description},
		kind:   models.ContributionCash,
	}
}

func (f *contributionForm) next() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *contributionForm) toggleKind() {
	if f.kind == models.ContributionCash {
		f.kind = models.ContributionItem
	} else {
		f.kind = models.ContributionCash
	}
}

func (f *contributionForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.kind = models.ContributionCash
	f.inputs[0].Focus()
}

// value assembles the contribution for the given fiscal year.
func (f *contributionForm) value(year int) models.Contribution {
	amount, _ := strconv.ParseInt(f.inputs[1].Value(), 10, 64)
	return models.Contribution{
		Year:        year,
		DonorName:   f.inputs[0].Value(),
		Kind:        f.kind,
		Amount:      amount,
		Description: f.inputs[2].Value(),
	}
}

// expenditureForm collects a new payment record.
type expenditureForm struct {
	inputs []textinput.Model
	focus  int
}

func newExpenditureForm() expenditureForm {
	purpose := textinput.New()
	purpose.Placeholder = "purpose"
	purpose.CharLimit = 256
	purpose.Focus()

	amount := textinput.New()
	amount.Placeholder = "amount"
	amount.CharLimit = 16

	return expenditureForm{inputs: []textinput.Model{purpose, amount}}
}

func (f *expenditureForm) next() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *expenditureForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
}

func (f *expenditureForm) value(year int) models.Expenditure {
	amount, _ := strconv.ParseInt(f.inputs[1].Value(), 10, 64)
	return models.Expenditure{
		Year:    year,
		Purpose: f.inputs[0].Value(),
		Amount:  amount,
	}
}

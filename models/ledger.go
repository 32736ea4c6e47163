package models

import "time"

// Contribution kinds. A contribution is either a sum of money or a donated
// item; in-kind contributions carry a description instead of an amount.
const (
	ContributionCash = "cash"
	ContributionItem = "item"
)

// Contribution is a single received item or cash donation recorded against a
// fiscal year.
type Contribution struct {
	// ID is the server-assigned identifier of the record.
	ID string `json:"id"`

	// Year is the fiscal year the contribution belongs to.
	Year int `json:"year"`

	// DonorName is the name of the contributor as entered by the operator.
	DonorName string `json:"donorName"`

	// Kind is either ContributionCash or ContributionItem.
	Kind string `json:"kind"`

	// Amount is the monetary value in the smallest currency unit.
	// Zero for pure in-kind contributions.
	Amount int64 `json:"amount"`

	// Description holds details for in-kind contributions (e.g. "50 chairs").
	Description string `json:"description,omitempty"`

	// ReceivedAt is when the contribution was received.
	ReceivedAt time.Time `json:"receivedAt"`
}

// TableName returns the name of the database table
// associated with the Contribution model.
func (c Contribution) TableName() string {
	return "received_items"
}

// Expenditure is a single outgoing payment recorded against a fiscal year.
type Expenditure struct {
	// ID is the server-assigned identifier of the record.
	ID string `json:"id"`

	// Year is the fiscal year the expenditure belongs to.
	Year int `json:"year"`

	// Purpose describes what the money was spent on.
	Purpose string `json:"purpose"`

	// Amount is the monetary value in the smallest currency unit.
	Amount int64 `json:"amount"`

	// SpentAt is when the payment was made.
	SpentAt time.Time `json:"spentAt"`
}

// TableName returns the name of the database table
// associated with the Expenditure model.
func (e Expenditure) TableName() string {
	return "expenditures"
}

package models

// YearRecord is a fiscal year entry. Every contribution and expenditure in the
// system belongs to exactly one fiscal year, and a closed year rejects all
// mutations to its records.
type YearRecord struct {
	// Year is the 4-digit fiscal year. Unique within an installation.
	Year int `json:"year"`

	// IsClosed reports whether the year has been closed for editing.
	// Only admins may toggle this flag.
	IsClosed bool `json:"isClosed"`
}

// TableName returns the name of the database table
// associated with the YearRecord model.
func (y YearRecord) TableName() string {
	return "years"
}

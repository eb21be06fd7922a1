package entity

type RowStatus string

const (
	RowStatusSuccess RowStatus = "Success"
	RowStatusError   RowStatus = "Error"
)

// ImportRow is one spreadsheet row as posted by the bulk upload page. All
// fields arrive as strings; validation and normalization happen server side.
// PassID is only honored by the historical import, which backfills cards
// numbered before the system existed.
type ImportRow struct {
	PassID       string `json:"passId,omitempty"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Designation  string `json:"designation"`
	Organization string `json:"organization"`
	CNIC         string `json:"cnic"`
	AreaAllowed  string `json:"areaAllowed"`
	DateOfEntry  string `json:"dateOfEntry"`
	DateOfExpiry string `json:"dateOfExpiry"`
}

// RowResult reports the outcome for a single row. Row is the spreadsheet row
// number: input index + 2, accounting for the 1-based header row.
type RowResult struct {
	Row     int       `json:"row"`
	Status  RowStatus `json:"status"`
	Message string    `json:"message"`
	PassID  int       `json:"passId,omitempty"`
}

type ImportReport struct {
	Results   []RowResult `json:"results"`
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
}

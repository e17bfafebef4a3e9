package dto

import "fmt"

// BulkUploadSummary mirrors the platform API's bulk question upload result
// and carries the display lines the summary modal renders.
type BulkUploadSummary struct {
	Inserted    int   `json:"inserted"`
	SkippedRows []int `json:"skipped_rows"`
}

// InsertedLine is the headline of the upload summary modal.
func (s BulkUploadSummary) InsertedLine() string {
	return fmt.Sprintf("Questions inserted: %d", s.Inserted)
}

// SkippedLine summarises how many rows were skipped.
func (s BulkUploadSummary) SkippedLine() string {
	return fmt.Sprintf("Rows skipped: %d", len(s.SkippedRows))
}

// BulkUploadSummaryView is the modal payload returned to the page.
type BulkUploadSummaryView struct {
	InsertedLine string `json:"inserted_line"`
	SkippedLine  string `json:"skipped_line"`
	SkippedRows  []int  `json:"skipped_rows"`
}

// View renders the modal payload.
func (s BulkUploadSummary) View() BulkUploadSummaryView {
	rows := s.SkippedRows
	if rows == nil {
		rows = []int{}
	}
	return BulkUploadSummaryView{
		InsertedLine: s.InsertedLine(),
		SkippedLine:  s.SkippedLine(),
		SkippedRows:  rows,
	}
}

// ImportSummary mirrors the student CSV import result shown to mentors.
type ImportSummary struct {
	Imported    int      `json:"imported"`
	Skipped     int      `json:"skipped"`
	SkippedRows []string `json:"skipped_rows,omitempty"`
}

package roster

import (
	"fmt"
	"io"
	"strings"

	"nathanbeddoewebdev/padron/internal/domain"
	"nathanbeddoewebdev/padron/internal/util"

	"github.com/xuri/excelize/v2"
)

// Parse reads an XLSX workbook and maps the rows of its first worksheet to
// students using cols.
//
// The first non-blank row is the header row. Cells are read as raw values,
// so a numeric record number 12345 becomes "12345" regardless of the cell's
// number format. Blank rows are skipped. A missing cell or column yields
// the empty string for that field.
//
// On failure the returned roster is empty and the error wraps
// domain.ErrParse; a roster is never returned half-filled.
func Parse(r io.Reader, cols ColumnMap) (*Roster, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Empty(), fmt.Errorf("roster: %w: %w", domain.ErrParse, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Empty(), fmt.Errorf("roster: %w: workbook has no sheets", domain.ErrParse)
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return Empty(), fmt.Errorf("roster: %w: failed to read sheet %q: %w", domain.ErrParse, sheet, err)
	}

	return fromRows(sheet, rows, cols), nil
}

// fromRows builds a roster from a header row followed by data rows.
func fromRows(sheet string, rows [][]string, cols ColumnMap) *Roster {
	headerAt := -1
	for i, row := range rows {
		if !isBlank(row) {
			headerAt = i
			break
		}
	}
	if headerAt < 0 {
		return &Roster{sheet: sheet, missing: cols.Headers()}
	}

	index := headerIndex(rows[headerAt])
	extract := func(row []string, header string) string {
		if header == "" {
			return ""
		}
		col, ok := index[header]
		if !ok || col >= len(row) {
			return ""
		}
		return row[col]
	}

	var missing []string
	for _, h := range cols.Headers() {
		if _, ok := index[h]; !ok {
			missing = append(missing, h)
		}
	}

	students := make([]domain.Student, 0, len(rows)-headerAt-1)
	for _, row := range rows[headerAt+1:] {
		if isBlank(row) {
			continue
		}
		students = append(students, domain.Student{
			RecordNumber: extract(row, cols.RecordNumber),
			LastName:     extract(row, cols.LastName),
			FirstName:    extract(row, cols.FirstName),
			NationalID:   util.DigitsOnly(extract(row, cols.NationalID)),
			Course:       extract(row, cols.Course),
			Status:       extract(row, cols.Status),
			Section:      extract(row, cols.Section),
			Instructors:  extract(row, cols.Instructors),
			Schedule:     extract(row, cols.Schedule),
		})
	}

	return &Roster{students: students, sheet: sheet, missing: missing}
}

// headerIndex maps each header name to its column. When a name repeats,
// the leftmost column wins.
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if name == "" {
			continue
		}
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}
	return index
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// Package rostertest builds XLSX fixtures for tests.
package rostertest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// Sheet is one worksheet of a fixture workbook. Rows[0] is usually the
// header row. A nil cell is left unset.
type Sheet struct {
	Name string
	Rows [][]any
}

// ComisionesHeader is the header row of the schedule layout.
var ComisionesHeader = []any{
	"Número de libreta:", "Apellido", "Nombre", "D.N.I.", "Curso",
	"Condición", "Comisión", "Profesores", "Horarios",
}

// LibretaHeader is the header row of the record-number layout.
var LibretaHeader = []any{
	"Numero de Libreta", "Apellido", "Nombre", "DNI", "Curso",
	"Condición", "Comisión", "Profesores",
}

// Workbook renders sheets into XLSX bytes, in the given order.
func Workbook(t testing.TB, sheets ...Sheet) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.Name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			t.Fatalf("add sheet %q: %v", s.Name, err)
		}

		for r, row := range s.Rows {
			for c, v := range row {
				if v == nil {
					continue
				}
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					t.Fatalf("cell name: %v", err)
				}
				if err := f.SetCellValue(s.Name, cell, v); err != nil {
					t.Fatalf("set %s!%s: %v", s.Name, cell, err)
				}
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

// WriteFile renders sheets to an .xlsx file in a temp dir and returns its path.
func WriteFile(t testing.TB, name string, sheets ...Sheet) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, Workbook(t, sheets...), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

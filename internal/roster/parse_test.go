package roster

import (
	"bytes"
	"errors"
	"testing"

	"nathanbeddoewebdev/padron/internal/domain"
	"nathanbeddoewebdev/padron/internal/roster/rostertest"

	"github.com/google/go-cmp/cmp"
)

var testColumns = ColumnMap{
	RecordNumber: "Número de libreta:",
	LastName:     "Apellido",
	FirstName:    "Nombre",
	NationalID:   "D.N.I.",
	Course:       "Curso",
	Status:       "Condición",
	Section:      "Comisión",
	Instructors:  "Profesores",
	Schedule:     "Horarios",
}

func parseSheets(t *testing.T, sheets ...rostertest.Sheet) *Roster {
	t.Helper()
	r, err := Parse(bytes.NewReader(rostertest.Workbook(t, sheets...)), testColumns)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return r
}

func TestParse_NormalizesRow(t *testing.T) {
	r := parseSheets(t, rostertest.Sheet{
		Name: "Alumnos",
		Rows: [][]any{
			rostertest.ComisionesHeader,
			{"A-100", "Pérez", "Ana", "43.323.124", "Inglés I", "Regular", "1A", "García, López", "Lunes 18hs"},
		},
	})

	want := []domain.Student{{
		RecordNumber: "A-100",
		LastName:     "Pérez",
		FirstName:    "Ana",
		NationalID:   "43323124",
		Course:       "Inglés I",
		Status:       "Regular",
		Section:      "1A",
		Instructors:  "García, López",
		Schedule:     "Lunes 18hs",
	}}
	if diff := cmp.Diff(want, r.Students()); diff != "" {
		t.Errorf("students mismatch (-want +got):\n%s", diff)
	}
	if r.Sheet() != "Alumnos" {
		t.Errorf("expected sheet %q, got %q", "Alumnos", r.Sheet())
	}
	if len(r.MissingColumns()) != 0 {
		t.Errorf("expected no missing columns, got %v", r.MissingColumns())
	}
}

func TestParse_MissingColumnsYieldEmptyStrings(t *testing.T) {
	r := parseSheets(t, rostertest.Sheet{
		Name: "Alumnos",
		Rows: [][]any{
			{"Apellido", "D.N.I."},
			{"Pérez", "43323124"},
		},
	})

	want := []domain.Student{{LastName: "Pérez", NationalID: "43323124"}}
	if diff := cmp.Diff(want, r.Students()); diff != "" {
		t.Errorf("students mismatch (-want +got):\n%s", diff)
	}

	wantMissing := []string{
		"Número de libreta:", "Nombre", "Curso", "Condición",
		"Comisión", "Profesores", "Horarios",
	}
	if diff := cmp.Diff(wantMissing, r.MissingColumns()); diff != "" {
		t.Errorf("missing columns mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_MissingCellsYieldEmptyStrings(t *testing.T) {
	r := parseSheets(t, rostertest.Sheet{
		Name: "Alumnos",
		Rows: [][]any{
			rostertest.ComisionesHeader,
			{"1", "Pérez", nil, "43323124"},
		},
	})

	got := r.At(0)
	if got.FirstName != "" || got.Course != "" || got.Schedule != "" || got.Instructors != "" {
		t.Errorf("expected empty strings for missing cells, got %+v", got)
	}
	if got.LastName != "Pérez" {
		t.Errorf("expected LastName %q, got %q", "Pérez", got.LastName)
	}
}

func TestParse_NumericCellsBecomeText(t *testing.T) {
	r := parseSheets(t, rostertest.Sheet{
		Name: "Alumnos",
		Rows: [][]any{
			rostertest.ComisionesHeader,
			{12345, "Pérez", "Ana", 43323124},
		},
	})

	got := r.At(0)
	if got.RecordNumber != "12345" {
		t.Errorf("expected RecordNumber %q, got %q", "12345", got.RecordNumber)
	}
	if got.NationalID != "43323124" {
		t.Errorf("expected NationalID %q, got %q", "43323124", got.NationalID)
	}
}

func TestParse_ReadsFirstSheetOnly(t *testing.T) {
	r := parseSheets(t,
		rostertest.Sheet{
			Name: "Inscriptos",
			Rows: [][]any{
				rostertest.ComisionesHeader,
				{"1", "Pérez", "Ana", "43323124"},
			},
		},
		rostertest.Sheet{
			Name: "Bajas",
			Rows: [][]any{
				rostertest.ComisionesHeader,
				{"2", "Gómez", "Luis", "30111222"},
				{"3", "Ruiz", "Eva", "30111223"},
			},
		},
	)

	if r.Len() != 1 {
		t.Fatalf("expected 1 record from the first sheet, got %d", r.Len())
	}
	if r.Sheet() != "Inscriptos" {
		t.Errorf("expected sheet %q, got %q", "Inscriptos", r.Sheet())
	}
}

func TestParse_SkipsBlankRows(t *testing.T) {
	r := parseSheets(t, rostertest.Sheet{
		Name: "Alumnos",
		Rows: [][]any{
			nil,
			rostertest.ComisionesHeader,
			{"1", "Pérez"},
			nil,
			{"  ", ""},
			{"2", "Gómez"},
		},
	})

	if r.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", r.Len())
	}
	if r.At(1).LastName != "Gómez" {
		t.Errorf("expected second record Gómez, got %q", r.At(1).LastName)
	}
}

func TestParse_HeaderMatchIsExact(t *testing.T) {
	r := parseSheets(t, rostertest.Sheet{
		Name: "Alumnos",
		Rows: [][]any{
			{"apellido", "Condicion", "DNI"},
			{"Pérez", "Regular", "43323124"},
		},
	})

	got := r.At(0)
	if got.LastName != "" || got.Status != "" || got.NationalID != "" {
		t.Errorf("expected no field to match differently spelled headers, got %+v", got)
	}
}

func TestParse_DuplicateHeaderFirstWins(t *testing.T) {
	r := parseSheets(t, rostertest.Sheet{
		Name: "Alumnos",
		Rows: [][]any{
			{"Apellido", "Apellido"},
			{"Pérez", "Otro"},
		},
	})

	if got := r.At(0).LastName; got != "Pérez" {
		t.Errorf("expected leftmost column to win, got %q", got)
	}
}

func TestParse_HeaderOnly(t *testing.T) {
	r := parseSheets(t, rostertest.Sheet{
		Name: "Alumnos",
		Rows: [][]any{rostertest.ComisionesHeader},
	})

	if r.Len() != 0 {
		t.Errorf("expected empty roster, got %d records", r.Len())
	}
}

func TestParse_InvalidWorkbook(t *testing.T) {
	r, err := Parse(bytes.NewReader([]byte("not a workbook")), testColumns)
	if err == nil {
		t.Fatal("expected error for invalid workbook, got nil")
	}
	if !errors.Is(err, domain.ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
	if r == nil || r.Len() != 0 {
		t.Errorf("expected empty non-nil roster, got %v", r)
	}
}

func TestParse_UnmappedScheduleIsEmpty(t *testing.T) {
	cols := testColumns
	cols.Schedule = ""

	raw := rostertest.Workbook(t, rostertest.Sheet{
		Name: "Alumnos",
		Rows: [][]any{
			rostertest.ComisionesHeader,
			{"1", "Pérez", "Ana", "43323124", "", "", "", "", "Lunes"},
		},
	})
	r, err := Parse(bytes.NewReader(raw), cols)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := r.At(0).Schedule; got != "" {
		t.Errorf("expected empty schedule when unmapped, got %q", got)
	}
}

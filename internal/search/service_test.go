package search

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"nathanbeddoewebdev/padron/internal/domain"
	"nathanbeddoewebdev/padron/internal/lookup"
	"nathanbeddoewebdev/padron/internal/roster"
	"nathanbeddoewebdev/padron/internal/roster/rostertest"
	"nathanbeddoewebdev/padron/internal/variant"
)

func sessionFor(t *testing.T, v variant.Variant, rows ...[]any) *roster.Session {
	t.Helper()
	header := rostertest.ComisionesHeader
	if v.Name == variant.Libreta.Name {
		header = rostertest.LibretaHeader
	}
	path := rostertest.WriteFile(t, "roster.xlsx", rostertest.Sheet{
		Name: "Alumnos",
		Rows: append([][]any{header}, rows...),
	})
	return roster.NewSession(roster.NewLoader(roster.NewSource(path, ""), v.Columns, nil))
}

func TestSearch_ByNationalID(t *testing.T) {
	session := sessionFor(t, variant.Comisiones,
		[]any{"1", "Pérez", "Ana", "43.323.124", "Inglés I", "Regular", "1A", "García", "Lunes 18hs"},
	)
	svc := New(session, variant.Comisiones.Matcher, WithDelay(0))

	res, err := svc.Search(context.Background(), "43323124")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if !res.Found() {
		t.Fatal("expected a match")
	}
	if res.Student.NationalID != "43323124" {
		t.Errorf("expected NationalID %q, got %q", "43323124", res.Student.NationalID)
	}
	if res.Student.Schedule != "Lunes 18hs" {
		t.Errorf("expected schedule to be loaded, got %q", res.Student.Schedule)
	}
}

func TestSearch_EmptyQueryIsNoOp(t *testing.T) {
	session := sessionFor(t, variant.Comisiones)
	svc := New(session, variant.Comisiones.Matcher, WithDelay(time.Hour))

	start := time.Now()
	_, err := svc.Search(context.Background(), "   ")
	if !errors.Is(err, domain.ErrEmptyQuery) {
		t.Fatalf("expected ErrEmptyQuery, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Error("expected empty query to return without waiting")
	}
	if session.Loaded() {
		t.Error("expected empty query not to trigger the load")
	}
}

func TestSearch_DuplicateKeyReturnsFirst(t *testing.T) {
	session := sessionFor(t, variant.Comisiones,
		[]any{"1", "Gómez", "Luis", "30111222"},
		[]any{"2", "Ruiz", "Eva", "30.111.222"},
	)
	svc := New(session, variant.Comisiones.Matcher, WithDelay(0))

	res, err := svc.Search(context.Background(), "30111222")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if !res.Found() || res.Student.LastName != "Gómez" {
		t.Errorf("expected first row (Gómez), got %+v", res.Student)
	}
}

func TestSearch_FailedLoadYieldsNotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.xlsx")
	session := roster.NewSession(roster.NewLoader(roster.NewSource(missing, ""), variant.Comisiones.Columns, nil))
	svc := New(session, variant.Comisiones.Matcher, WithDelay(0))

	for _, q := range []string{"43323124", "1"} {
		res, err := svc.Search(context.Background(), q)
		if err != nil {
			t.Fatalf("Search(%q) failed: %v", q, err)
		}
		if res.Found() {
			t.Errorf("Search(%q): expected not-found on empty roster", q)
		}
		if res.Query != q {
			t.Errorf("expected query %q echoed back, got %q", q, res.Query)
		}
	}
	if !errors.Is(session.Err(), domain.ErrSourceUnavailable) {
		t.Errorf("expected ErrSourceUnavailable, got %v", session.Err())
	}
}

func TestSearch_ByRecordNumberNumericCell(t *testing.T) {
	session := sessionFor(t, variant.Libreta,
		[]any{12345, "Pérez", "Ana", "43.323.124"},
	)
	svc := New(session, variant.Libreta.Matcher, WithDelay(0))

	res, err := svc.Search(context.Background(), "12345")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if !res.Found() || res.Student.LastName != "Pérez" {
		t.Errorf("expected Pérez, got %+v", res.Student)
	}
	if res.Label != "Libreta" {
		t.Errorf("expected label Libreta, got %q", res.Label)
	}
}

func TestSearch_NotFoundKeepsOriginalQuery(t *testing.T) {
	session := roster.NewStaticSession(roster.FromStudents([]domain.Student{{NationalID: "1"}}))
	svc := New(session, lookup.NationalID{}, WithDelay(0))

	res, err := svc.Search(context.Background(), "43.323.124")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if res.Found() {
		t.Fatal("expected no match")
	}
	if res.Query != "43.323.124" {
		t.Errorf("expected unnormalized query, got %q", res.Query)
	}
}

func TestSearch_DelayIsAFloor(t *testing.T) {
	session := roster.NewStaticSession(roster.Empty())
	svc := New(session, lookup.NationalID{}, WithDelay(50*time.Millisecond))

	start := time.Now()
	if _, err := svc.Search(context.Background(), "1"); err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("expected at least 50ms, got %s", elapsed)
	}
}

func TestSearch_CancelDuringDelay(t *testing.T) {
	session := roster.NewStaticSession(roster.Empty())
	svc := New(session, lookup.NationalID{}, WithDelay(time.Hour))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := svc.Search(ctx, "1")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected DeadlineExceeded, got %v", err)
	}
}

func TestNew_Defaults(t *testing.T) {
	svc := New(roster.NewStaticSession(roster.Empty()), lookup.RecordNumber{})

	if svc.Delay() != DefaultDelay {
		t.Errorf("expected default delay %s, got %s", DefaultDelay, svc.Delay())
	}
	if svc.Matcher().Name() != "libreta" {
		t.Errorf("expected libreta matcher, got %q", svc.Matcher().Name())
	}
}

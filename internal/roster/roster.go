// Package roster loads the student spreadsheet into an immutable,
// in-memory list of records.
//
// A Roster is built once by Parse (usually through a Loader and a Session)
// and never changes afterwards. It exposes read-only accessors only, so it
// can be shared freely between the lookup engine and the UI.
package roster

import (
	"iter"

	"nathanbeddoewebdev/padron/internal/domain"
)

// Roster is an immutable, ordered collection of students. The order is
// the row order of the source sheet. The zero value and a nil *Roster are
// both valid empty rosters.
type Roster struct {
	students []domain.Student
	sheet    string
	missing  []string
}

// Empty returns a roster with no records.
func Empty() *Roster {
	return &Roster{}
}

// Len returns the number of records.
func (r *Roster) Len() int {
	if r == nil {
		return 0
	}
	return len(r.students)
}

// At returns the i-th record in load order. It panics if i is out of range,
// like a slice index.
func (r *Roster) At(i int) domain.Student {
	return r.students[i]
}

// All iterates over the records in load order.
func (r *Roster) All() iter.Seq2[int, domain.Student] {
	return func(yield func(int, domain.Student) bool) {
		if r == nil {
			return
		}
		for i, s := range r.students {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Students returns a copy of the records. Mutating the copy does not
// affect the roster.
func (r *Roster) Students() []domain.Student {
	if r == nil || len(r.students) == 0 {
		return nil
	}
	out := make([]domain.Student, len(r.students))
	copy(out, r.students)
	return out
}

// Sheet returns the name of the worksheet the records came from.
func (r *Roster) Sheet() string {
	if r == nil {
		return ""
	}
	return r.sheet
}

// MissingColumns lists mapped headers that were not present in the sheet.
// Every record has the empty string for those fields.
func (r *Roster) MissingColumns() []string {
	if r == nil || len(r.missing) == 0 {
		return nil
	}
	return append([]string(nil), r.missing...)
}

// FromStudents builds a roster from records already in canonical form.
// The slice is copied; later changes to students do not reach the roster.
func FromStudents(students []domain.Student) *Roster {
	return &Roster{students: append([]domain.Student(nil), students...)}
}

// Package variant describes the deployment profiles of the lookup tool.
//
// A variant binds one spreadsheet layout (which header feeds which field)
// to one lookup key. Exactly one variant is active per session.
package variant

import (
	"nathanbeddoewebdev/padron/internal/lookup"
	"nathanbeddoewebdev/padron/internal/roster"
)

// Default is the variant used when none is configured.
const Default = "comisiones"

// Variant is a named deployment profile.
type Variant struct {
	// Name is the registry key.
	Name string

	// Description is shown in help text and the variants listing.
	Description string

	// DefaultSource is the workbook read when no source is configured.
	DefaultSource string

	Columns roster.ColumnMap
	Matcher lookup.Matcher
}

// Comisiones is the layout with schedules, searched by DNI.
var Comisiones = Variant{
	Name:          "comisiones",
	Description:   "Commission roster with schedules, searched by DNI",
	DefaultSource: "Comisiones con Horarios.xlsx",
	Columns: roster.ColumnMap{
		RecordNumber: "Número de libreta:",
		LastName:     "Apellido",
		FirstName:    "Nombre",
		NationalID:   "D.N.I.",
		Course:       "Curso",
		Status:       "Condición",
		Section:      "Comisión",
		Instructors:  "Profesores",
		Schedule:     "Horarios",
	},
	Matcher: lookup.NationalID{},
}

// Libreta is the layout without schedules, searched by record number.
var Libreta = Variant{
	Name:          "libreta",
	Description:   "Student roster without schedules, searched by record number",
	DefaultSource: "Alumnos.xlsx",
	Columns: roster.ColumnMap{
		RecordNumber: "Numero de Libreta",
		LastName:     "Apellido",
		FirstName:    "Nombre",
		NationalID:   "DNI",
		Course:       "Curso",
		Status:       "Condición",
		Section:      "Comisión",
		Instructors:  "Profesores",
	},
	Matcher: lookup.RecordNumber{},
}

// RegisterBuiltins registers the built-in variants.
func RegisterBuiltins() {
	Register(Comisiones)
	Register(Libreta)
}

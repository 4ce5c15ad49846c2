package domain

// Student is the canonical record for one enrolled student.
//
// Every field is plain text. A value missing from the source sheet is the
// empty string, never a placeholder. NationalID holds only the digits 0-9
// once the record has been through the loader.
type Student struct {
	RecordNumber string `json:"record_number"`
	LastName     string `json:"last_name"`
	FirstName    string `json:"first_name"`
	NationalID   string `json:"national_id"`
	Course       string `json:"course"`
	Status       string `json:"status"`
	Section      string `json:"section"`
	Instructors  string `json:"instructors"`
	Schedule     string `json:"schedule,omitempty"`
}

// Field is a single labeled value of a Student, in display order.
type Field struct {
	Label string
	Value string
}

// Fields returns the record as labeled pairs in the order the lookup
// screens render them. Schedule is included only when withSchedule is set,
// since one source layout has no schedule column at all.
func (s Student) Fields(withSchedule bool) []Field {
	fields := []Field{
		{Label: "Libreta", Value: s.RecordNumber},
		{Label: "Apellido", Value: s.LastName},
		{Label: "Nombre", Value: s.FirstName},
		{Label: "DNI", Value: s.NationalID},
		{Label: "Curso", Value: s.Course},
		{Label: "Condición", Value: s.Status},
		{Label: "Comisión", Value: s.Section},
	}
	if withSchedule {
		fields = append(fields, Field{Label: "Horario", Value: s.Schedule})
	}
	return append(fields, Field{Label: "Profesores", Value: s.Instructors})
}

// FullName returns "LastName, FirstName", or whichever part is present.
func (s Student) FullName() string {
	switch {
	case s.LastName != "" && s.FirstName != "":
		return s.LastName + ", " + s.FirstName
	case s.LastName != "":
		return s.LastName
	default:
		return s.FirstName
	}
}

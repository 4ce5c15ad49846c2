package roster

// ColumnMap names the header cell that feeds each Student field.
//
// Headers are compared byte for byte: "Condición" and "Condicion" are
// different columns. An empty name means the field is not mapped and is
// always the empty string (the libreta layout has no schedule column).
type ColumnMap struct {
	RecordNumber string
	LastName     string
	FirstName    string
	NationalID   string
	Course       string
	Status       string
	Section      string
	Instructors  string
	Schedule     string
}

// Headers returns the mapped header names in Student field order,
// skipping unmapped fields.
func (c ColumnMap) Headers() []string {
	all := []string{
		c.RecordNumber,
		c.LastName,
		c.FirstName,
		c.NationalID,
		c.Course,
		c.Status,
		c.Section,
		c.Instructors,
		c.Schedule,
	}

	headers := make([]string, 0, len(all))
	for _, h := range all {
		if h != "" {
			headers = append(headers, h)
		}
	}
	return headers
}

// HasSchedule reports whether the layout carries a schedule column.
func (c ColumnMap) HasSchedule() bool {
	return c.Schedule != ""
}

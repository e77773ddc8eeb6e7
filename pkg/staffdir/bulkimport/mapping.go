package bulkimport

import "strings"

// Field names a target employee field that import columns can map onto.
// Row ID and Last Updated are never importable; they are assigned at commit.
type Field string

// Mappable target fields, in persisted column order.
const (
	FieldEmployeeID Field = "Employee ID"
	FieldName       Field = "Name"
	FieldExtension  Field = "Extension"
	FieldDepartment Field = "Department"
	FieldCellNumber Field = "Cell Number"
	FieldLocation   Field = "Location"
	FieldStatus     Field = "Status"
	FieldNotes      Field = "Notes"
)

// Fields lists every mappable target field.
var Fields = []Field{
	FieldEmployeeID,
	FieldName,
	FieldExtension,
	FieldDepartment,
	FieldCellNumber,
	FieldLocation,
	FieldStatus,
	FieldNotes,
}

// ParseField resolves a user supplied field name case- and
// space-insensitively. It returns false when the name matches no field.
func ParseField(name string) (Field, bool) {
	for _, f := range Fields {
		if foldKey(string(f)) == foldKey(name) {
			return f, true
		}
	}
	return "", false
}

// Mapping assigns each target field the header of the external column it is
// read from. Unmapped fields are ignored unless a default supplies them.
type Mapping map[Field]string

// Defaults supplies a constant value for a target field, overriding any
// mapped value.
type Defaults map[Field]string

// AutoDetect proposes a mapping by matching external headers to target
// fields, ignoring case and spaces, the way the upload form pre-selects
// columns.
func AutoDetect(header []string) Mapping {
	m := make(Mapping)
	for _, f := range Fields {
		for _, col := range header {
			if foldKey(col) == foldKey(string(f)) {
				m[f] = col
				break
			}
		}
	}
	return m
}

func foldKey(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", ""))
}

// HasColumn reports whether the table's header row contains the exact
// header.
func (t Table) HasColumn(header string) bool {
	return t.columnIndex(header) >= 0
}

// columnIndex returns the position of a header in the table, or -1.
func (t Table) columnIndex(header string) int {
	for i, h := range t.Header {
		if h == header {
			return i
		}
	}
	return -1
}

// value returns the cell of a data row under the mapped header, trimmed.
// Ragged rows read as empty.
func (t Table) value(row []string, header string) string {
	i := t.columnIndex(header)
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

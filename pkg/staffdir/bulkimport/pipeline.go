// Package bulkimport implements the three-stage import pipeline: column
// mapping with constant defaults, missing-department resolution, and row
// classification with operator-controlled duplicate handling. Commit mutates
// the in-memory directory; the caller performs the single persistence write
// for the whole batch.
package bulkimport

import (
	"fmt"
	"sort"
	"strings"

	"github.com/okubo/staffdir-go/pkg/staffdir"
	"github.com/okubo/staffdir-go/pkg/staffdir/directory"
	"github.com/okubo/staffdir-go/pkg/staffdir/models"
)

// DeptActionKind selects how one missing department value is resolved.
type DeptActionKind string

const (
	// DeptCreate adds a new department row for the value.
	DeptCreate DeptActionKind = "create"
	// DeptMap rewrites the value to an existing department name.
	DeptMap DeptActionKind = "map"
	// DeptSkip imports the rows with a blank department.
	DeptSkip DeptActionKind = "skip"
)

// DeptAction resolves one department value found in the input but absent
// from the Departments table.
type DeptAction struct {
	Kind        DeptActionKind
	Description string // DeptCreate
	Target      string // DeptMap
}

// DeptActions maps each missing department value to its resolution.
type DeptActions map[string]DeptAction

// Selection is the operator's choice for one duplicate row. Both flags set,
// or neither, leaves the row skipped.
type Selection struct {
	ImportAsNew bool
	Replace     bool
}

// Overrides maps an input file row number (1-based, header is row 1) to the
// operator's duplicate handling choice.
type Overrides map[int]Selection

// RowStatus classifies one input row.
type RowStatus string

const (
	// RowClean rows import as new employees.
	RowClean RowStatus = "clean"
	// RowDuplicate rows collide with an existing employee or an
	// already-accepted batch row and are skipped unless overridden.
	RowDuplicate RowStatus = "duplicate"
	// RowError rows are missing a required field and are always excluded.
	RowError RowStatus = "error"
)

// RowResult is one classified input row. Line is the input file row number
// (1-based, counting the header), matching what the operator sees in their
// spreadsheet. Employee carries the mapped, defaulted, department-resolved
// values.
type RowResult struct {
	Line     int
	Employee models.Employee
	Status   RowStatus
	Reasons  []string
}

// Preview is the classified batch.
type Preview struct {
	Clean      []RowResult
	Duplicates []RowResult
	Errors     []RowResult
}

// Result reports what a commit changed.
type Result struct {
	Imported           int
	Replaced           int
	Skipped            int
	Errors             int
	CreatedDepartments []string
}

// MissingDepartments returns the sorted distinct non-blank department values
// in the mapped input that have no existing department row.
func MissingDepartments(dir *directory.Directory, t Table, mapping Mapping, defaults Defaults) []string {
	seen := make(map[string]bool)
	var out []string
	for _, row := range t.Rows {
		name := deptValue(t, row, mapping, defaults)
		if name == "" || seen[name] || dir.HasDepartmentName(name) {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// BuildPreview maps, defaults and department-resolves every input row, then
// classifies it. Classification checks blank required fields first, then
// duplicate external ids and extensions against existing employees and
// against rows already accepted earlier in the same batch.
func BuildPreview(dir *directory.Directory, t Table, mapping Mapping, defaults Defaults, actions DeptActions) Preview {
	existingIDs := make(map[string]bool)
	existingExts := make(map[string]bool)
	for _, e := range dir.Employees {
		if e.EmployeeID != "" {
			existingIDs[e.EmployeeID] = true
		}
		if e.Extension != "" {
			existingExts[e.Extension] = true
		}
	}

	var p Preview
	for i, row := range t.Rows {
		emp := mapRow(t, row, mapping, defaults, actions)
		res := RowResult{Line: i + 2, Employee: emp}

		if emp.Name == "" {
			res.Reasons = append(res.Reasons, "missing Name")
		}
		if emp.Extension == "" {
			res.Reasons = append(res.Reasons, "missing Extension")
		}
		if len(res.Reasons) > 0 {
			res.Status = RowError
			p.Errors = append(p.Errors, res)
			continue
		}

		if emp.EmployeeID != "" && existingIDs[emp.EmployeeID] {
			res.Reasons = append(res.Reasons, fmt.Sprintf("employee id %q exists", emp.EmployeeID))
		}
		if existingExts[emp.Extension] {
			res.Reasons = append(res.Reasons, fmt.Sprintf("extension %q exists", emp.Extension))
		}
		if len(res.Reasons) > 0 {
			res.Status = RowDuplicate
			p.Duplicates = append(p.Duplicates, res)
			continue
		}

		res.Status = RowClean
		p.Clean = append(p.Clean, res)
		if emp.EmployeeID != "" {
			existingIDs[emp.EmployeeID] = true
		}
		existingExts[emp.Extension] = true
	}
	return p
}

// Commit applies the batch to the directory: departments flagged create
// first, then clean rows as new employees, then duplicates per the
// operator's overrides. Every missing department value must carry a
// resolution or the whole batch fails with nothing applied. The caller
// persists the directory once afterwards.
func Commit(dir *directory.Directory, t Table, mapping Mapping, defaults Defaults, actions DeptActions, overrides Overrides) (Result, error) {
	if err := validateActions(dir, t, mapping, defaults, actions); err != nil {
		return Result{}, err
	}

	work := dir.Clone()
	var result Result

	for _, name := range sortedCreates(actions) {
		if work.HasDepartmentName(name) {
			continue
		}
		work.Departments = append(work.Departments, models.Department{
			DeptID:      work.NextDeptID(),
			Name:        name,
			Description: actions[name].Description,
		})
		result.CreatedDepartments = append(result.CreatedDepartments, name)
	}

	preview := BuildPreview(work, t, mapping, defaults, actions)
	result.Errors = len(preview.Errors)

	for _, res := range preview.Clean {
		appendEmployee(work, res.Employee)
		result.Imported++
	}

	for _, res := range preview.Duplicates {
		sel := overrides[res.Line]
		switch {
		case sel.ImportAsNew && !sel.Replace:
			appendEmployee(work, res.Employee)
			result.Imported++
		case sel.Replace && !sel.ImportAsNew:
			if replaceExisting(work, res.Employee) {
				result.Replaced++
			} else {
				result.Skipped++
			}
		default:
			result.Skipped++
		}
	}

	*dir = *work
	return result, nil
}

// validateActions enforces the completeness gate: every missing department
// needs an action, map targets must exist, and created names must not
// collide case-insensitively with existing departments.
func validateActions(dir *directory.Directory, t Table, mapping Mapping, defaults Defaults, actions DeptActions) error {
	var unresolved []string
	for _, name := range MissingDepartments(dir, t, mapping, defaults) {
		action, ok := actions[name]
		if !ok {
			unresolved = append(unresolved, name)
			continue
		}
		switch action.Kind {
		case DeptCreate:
		case DeptMap:
			if action.Target == "" {
				unresolved = append(unresolved, name)
			} else if !dir.HasDepartmentName(action.Target) {
				return staffdir.NewValidationError("department",
					fmt.Sprintf("map target %q does not exist", action.Target))
			}
		case DeptSkip:
		default:
			return staffdir.NewValidationError("department",
				fmt.Sprintf("unknown action %q for %q", action.Kind, name))
		}
	}
	if len(unresolved) > 0 {
		return staffdir.NewIncompleteBatchError("bulk import", unresolved)
	}
	return nil
}

// mapRow builds the employee value for one input row: mapped columns, then
// constant defaults on top, then the department resolution.
func mapRow(t Table, row []string, mapping Mapping, defaults Defaults, actions DeptActions) models.Employee {
	values := make(map[Field]string, len(Fields))
	for field, header := range mapping {
		values[field] = t.value(row, header)
	}
	for field, v := range defaults {
		values[field] = strings.TrimSpace(v)
	}

	if dept := values[FieldDepartment]; dept != "" {
		switch action := actions[dept]; action.Kind {
		case DeptMap:
			values[FieldDepartment] = action.Target
		case DeptSkip:
			values[FieldDepartment] = ""
		}
	}

	return models.Employee{
		EmployeeID: values[FieldEmployeeID],
		Name:       values[FieldName],
		Extension:  values[FieldExtension],
		Department: values[FieldDepartment],
		CellNumber: values[FieldCellNumber],
		Location:   values[FieldLocation],
		Status:     values[FieldStatus],
		Notes:      values[FieldNotes],
	}
}

func deptValue(t Table, row []string, mapping Mapping, defaults Defaults) string {
	if v, ok := defaults[FieldDepartment]; ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	header, ok := mapping[FieldDepartment]
	if !ok {
		return ""
	}
	return t.value(row, header)
}

// appendEmployee adds an imported row with a fresh internal id, bypassing
// the duplicate check that AddEmployee performs.
func appendEmployee(dir *directory.Directory, emp models.Employee) {
	emp.RowID = dir.NextRowID()
	if emp.Status == "" {
		emp.Status = models.StatusActive
	}
	emp.LastUpdated = directory.Timestamp()
	dir.Employees = append(dir.Employees, emp)
}

// replaceExisting overwrites the first existing row matched by external id,
// falling back to extension, preserving the matched row's internal id.
func replaceExisting(dir *directory.Directory, emp models.Employee) bool {
	idx := -1
	if emp.EmployeeID != "" {
		for i, e := range dir.Employees {
			if e.EmployeeID == emp.EmployeeID {
				idx = i
				break
			}
		}
	}
	if idx < 0 && emp.Extension != "" {
		for i, e := range dir.Employees {
			if e.Extension == emp.Extension {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		return false
	}
	emp.RowID = dir.Employees[idx].RowID
	if emp.Status == "" {
		emp.Status = models.StatusActive
	}
	emp.LastUpdated = directory.Timestamp()
	dir.Employees[idx] = emp
	return true
}

func sortedCreates(actions DeptActions) []string {
	var names []string
	for name, action := range actions {
		if action.Kind == DeptCreate {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

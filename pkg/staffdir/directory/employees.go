package directory

import (
	"strconv"
	"strings"

	"github.com/okubo/staffdir-go/pkg/staffdir"
	"github.com/okubo/staffdir-go/pkg/staffdir/models"
)

// FindEmployee returns the employee with the given internal row id.
func (d *Directory) FindEmployee(rowID int) (models.Employee, error) {
	for _, e := range d.Employees {
		if e.RowID == rowID {
			return e, nil
		}
	}
	return models.Employee{}, staffdir.NewNotFoundError("employee", strconv.Itoa(rowID))
}

func (d *Directory) employeeIndex(rowID int) int {
	for i, e := range d.Employees {
		if e.RowID == rowID {
			return i
		}
	}
	return -1
}

// hasEmployeeID reports whether a non-blank external employee id is already
// used by a row other than exceptRowID.
func (d *Directory) hasEmployeeID(id string, exceptRowID int) bool {
	if id == "" {
		return false
	}
	for _, e := range d.Employees {
		if e.RowID != exceptRowID && e.EmployeeID == id {
			return true
		}
	}
	return false
}

func normalizeEmployee(e *models.Employee) {
	e.EmployeeID = strings.TrimSpace(e.EmployeeID)
	e.Name = strings.TrimSpace(e.Name)
	e.Extension = strings.TrimSpace(e.Extension)
	e.Department = strings.TrimSpace(e.Department)
	e.CellNumber = strings.TrimSpace(e.CellNumber)
	e.Location = strings.TrimSpace(e.Location)
	e.Status = strings.TrimSpace(e.Status)
	e.Notes = strings.TrimSpace(e.Notes)
	if e.Status == "" {
		e.Status = models.StatusActive
	}
}

// AddEmployee validates the draft, allocates a fresh row id, stamps Last
// Updated and appends the row. The draft's RowID and LastUpdated are ignored.
func (d *Directory) AddEmployee(draft models.Employee) (models.Employee, error) {
	normalizeEmployee(&draft)
	if draft.Name == "" {
		return models.Employee{}, staffdir.NewValidationError("Name", "required")
	}
	if draft.Extension == "" {
		return models.Employee{}, staffdir.NewValidationError("Extension", "required")
	}
	if d.hasEmployeeID(draft.EmployeeID, 0) {
		return models.Employee{}, staffdir.NewDuplicateError("employee id", draft.EmployeeID)
	}
	draft.RowID = d.NextRowID()
	draft.LastUpdated = Timestamp()
	d.Employees = append(d.Employees, draft)
	return draft, nil
}

// UpdateEmployee overwrites every mutable field of the row identified by
// rowID and stamps Last Updated. Changing the external employee id to a
// value already used by another row is rejected.
func (d *Directory) UpdateEmployee(rowID int, draft models.Employee) (models.Employee, error) {
	i := d.employeeIndex(rowID)
	if i < 0 {
		return models.Employee{}, staffdir.NewNotFoundError("employee", strconv.Itoa(rowID))
	}
	normalizeEmployee(&draft)
	if draft.Name == "" {
		return models.Employee{}, staffdir.NewValidationError("Name", "required")
	}
	if draft.Extension == "" {
		return models.Employee{}, staffdir.NewValidationError("Extension", "required")
	}
	if d.hasEmployeeID(draft.EmployeeID, rowID) {
		return models.Employee{}, staffdir.NewDuplicateError("employee id", draft.EmployeeID)
	}
	draft.RowID = rowID
	draft.LastUpdated = Timestamp()
	d.Employees[i] = draft
	return draft, nil
}

// DeleteEmployee removes the row identified by rowID.
func (d *Directory) DeleteEmployee(rowID int) error {
	i := d.employeeIndex(rowID)
	if i < 0 {
		return staffdir.NewNotFoundError("employee", strconv.Itoa(rowID))
	}
	d.Employees = append(d.Employees[:i], d.Employees[i+1:]...)
	return nil
}

// ActivateAllInactive flips every Inactive row to Active and returns the
// number of rows changed. Only changed rows are stamped.
func (d *Directory) ActivateAllInactive() int {
	changed := 0
	for i := range d.Employees {
		if d.Employees[i].Status == models.StatusInactive {
			d.Employees[i].Status = models.StatusActive
			d.Employees[i].LastUpdated = Timestamp()
			changed++
		}
	}
	return changed
}

package directory

import (
	"fmt"
	"strings"

	"github.com/okubo/staffdir-go/pkg/staffdir"
	"github.com/okubo/staffdir-go/pkg/staffdir/models"
)

// FindDepartment returns the department with the given id.
func (d *Directory) FindDepartment(deptID string) (models.Department, error) {
	for _, dept := range d.Departments {
		if dept.DeptID == deptID {
			return dept, nil
		}
	}
	return models.Department{}, staffdir.NewNotFoundError("department", deptID)
}

func (d *Directory) departmentIndex(deptID string) int {
	for i, dept := range d.Departments {
		if dept.DeptID == deptID {
			return i
		}
	}
	return -1
}

// HasDepartmentName reports whether a department with the given name exists,
// compared case-insensitively after trimming.
func (d *Directory) HasDepartmentName(name string) bool {
	return d.departmentNameIndex(name) >= 0
}

func (d *Directory) departmentNameIndex(name string) int {
	for i, dept := range d.Departments {
		if strings.EqualFold(strings.TrimSpace(dept.Name), strings.TrimSpace(name)) {
			return i
		}
	}
	return -1
}

// AddDepartment appends a department after a case-insensitive uniqueness
// check against existing names.
func (d *Directory) AddDepartment(name, description string) (models.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Department{}, staffdir.NewValidationError("Department Name", "required")
	}
	if d.HasDepartmentName(name) {
		return models.Department{}, staffdir.NewDuplicateError("department name", name)
	}
	dept := models.Department{
		DeptID:      d.NextDeptID(),
		Name:        name,
		Description: strings.TrimSpace(description),
	}
	d.Departments = append(d.Departments, dept)
	return dept, nil
}

// RenameDepartment changes a department's name and description and cascades
// the new name to every employee row whose department equals the old name
// (exact match after trimming). The uniqueness check excludes the
// department's own current name.
func (d *Directory) RenameDepartment(deptID, newName, newDescription string) error {
	i := d.departmentIndex(deptID)
	if i < 0 {
		return staffdir.NewNotFoundError("department", deptID)
	}
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return staffdir.NewValidationError("Department Name", "required")
	}
	oldName := strings.TrimSpace(d.Departments[i].Name)
	if !strings.EqualFold(newName, oldName) && d.HasDepartmentName(newName) {
		return staffdir.NewDuplicateError("department name", newName)
	}
	d.Departments[i].Name = newName
	if desc := strings.TrimSpace(newDescription); desc != "" {
		d.Departments[i].Description = desc
	}
	if newName != oldName {
		d.RepointDepartment(oldName, newName)
	}
	return nil
}

// DeleteDepartment removes the department row and blanks the department
// field on every employee referencing it by name. Employees themselves are
// never deleted.
func (d *Directory) DeleteDepartment(deptID string) error {
	i := d.departmentIndex(deptID)
	if i < 0 {
		return staffdir.NewNotFoundError("department", deptID)
	}
	name := strings.TrimSpace(d.Departments[i].Name)
	d.Departments = append(d.Departments[:i], d.Departments[i+1:]...)
	d.RepointDepartment(name, "")
	return nil
}

// MergeDepartments combines two departments under finalName: one row
// survives renamed to finalName, the other is deleted, and every employee
// referencing either old name is repointed to finalName.
func (d *Directory) MergeDepartments(keepID, deleteID, finalName string) error {
	if keepID == deleteID {
		return staffdir.NewValidationError("department", "cannot merge a department with itself")
	}
	keep := d.departmentIndex(keepID)
	if keep < 0 {
		return staffdir.NewNotFoundError("department", keepID)
	}
	del := d.departmentIndex(deleteID)
	if del < 0 {
		return staffdir.NewNotFoundError("department", deleteID)
	}
	finalName = strings.TrimSpace(finalName)
	if finalName == "" {
		finalName = strings.TrimSpace(d.Departments[keep].Name)
	}
	keepName := strings.TrimSpace(d.Departments[keep].Name)
	delName := strings.TrimSpace(d.Departments[del].Name)

	d.Departments[keep].Name = finalName
	d.Departments[keep].Description = fmt.Sprintf("Merged from: %s, %s", keepName, delName)
	d.Departments = append(d.Departments[:del], d.Departments[del+1:]...)

	if keepName != finalName {
		d.RepointDepartment(keepName, finalName)
	}
	if delName != finalName {
		d.RepointDepartment(delName, finalName)
	}
	return nil
}

// EmployeeCountByDepartment returns the number of employees whose department
// equals name after trimming.
func (d *Directory) EmployeeCountByDepartment(name string) int {
	name = strings.TrimSpace(name)
	count := 0
	for _, e := range d.Employees {
		if strings.TrimSpace(e.Department) == name {
			count++
		}
	}
	return count
}

// RepointDepartment rewrites the department field of every employee whose
// trimmed department equals oldName, stamping the rows it changes.
func (d *Directory) RepointDepartment(oldName, newName string) int {
	changed := 0
	for i := range d.Employees {
		if strings.TrimSpace(d.Employees[i].Department) == oldName {
			d.Employees[i].Department = newName
			d.Employees[i].LastUpdated = Timestamp()
			changed++
		}
	}
	return changed
}

package directory

import (
	"sort"
	"strings"

	"github.com/okubo/staffdir-go/pkg/staffdir/models"
)

// StatusAny matches both Active and Inactive rows in a Filter.
const StatusAny = "Any"

// Filter narrows the employee list. Text fields are case-insensitive
// substring matches; empty fields match everything. Query searches every
// column at once. The filter is explicit request state passed per call, not
// ambient session state.
type Filter struct {
	NameContains       string
	ExtensionContains  string
	EmployeeIDContains string
	LocationContains   string
	Status             string // StatusAny, models.StatusActive or models.StatusInactive
	Departments        []string
	Query              string
}

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// Matches reports whether the employee passes the filter.
func (f Filter) Matches(e models.Employee) bool {
	if !containsFold(e.Name, f.NameContains) {
		return false
	}
	if !containsFold(e.Extension, f.ExtensionContains) {
		return false
	}
	if !containsFold(e.EmployeeID, f.EmployeeIDContains) {
		return false
	}
	if !containsFold(e.Location, f.LocationContains) {
		return false
	}
	if f.Status != "" && f.Status != StatusAny && e.Status != f.Status {
		return false
	}
	if len(f.Departments) > 0 {
		found := false
		for _, dept := range f.Departments {
			if strings.TrimSpace(e.Department) == strings.TrimSpace(dept) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Query != "" {
		any := false
		for _, cell := range e.Record() {
			if containsFold(cell, f.Query) {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}
	return true
}

// List returns the employees matching the filter, in table order.
func (d *Directory) List(f Filter) []models.Employee {
	var out []models.Employee
	for _, e := range d.Employees {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

// Page slices a result list for display. Pages are 1-based; an out-of-range
// page clamps to the last page, mirroring how the view never dead-ends.
func Page(list []models.Employee, page, perPage int) []models.Employee {
	if perPage <= 0 || len(list) == 0 {
		return list
	}
	totalPages := (len(list) + perPage - 1) / perPage
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * perPage
	end := start + perPage
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}

// SearchDepartments returns departments whose name contains the query,
// case-insensitively, in table order. An empty query returns all.
func (d *Directory) SearchDepartments(query string) []models.Department {
	var out []models.Department
	for _, dept := range d.Departments {
		if containsFold(dept.Name, query) {
			out = append(out, dept)
		}
	}
	return out
}

// DepartmentNames returns the trimmed, non-blank department names sorted
// alphabetically.
func (d *Directory) DepartmentNames() []string {
	names := make([]string, 0, len(d.Departments))
	for _, dept := range d.Departments {
		if name := strings.TrimSpace(dept.Name); name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

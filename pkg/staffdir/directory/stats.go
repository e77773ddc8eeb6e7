package directory

import (
	"sort"

	"github.com/okubo/staffdir-go/pkg/staffdir/models"
)

// DepartmentCount pairs a department name with its employee count.
type DepartmentCount struct {
	Name  string
	Count int
}

// Stats is the dashboard summary of the directory.
type Stats struct {
	TotalEmployees      int
	ActiveEmployees     int
	InactiveEmployees   int
	Departments         int
	PerDepartment       []DepartmentCount
	FourDigitExtensions int
	RecentlyUpdated     []models.Employee
}

func isFourDigits(ext string) bool {
	if len(ext) != 4 {
		return false
	}
	for _, r := range ext {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Stats computes the dashboard summary. RecentlyUpdated holds up to ten rows
// with a non-blank Last Updated stamp, newest first; RFC3339 stamps sort
// lexicographically.
func (d *Directory) Stats() Stats {
	s := Stats{
		TotalEmployees: len(d.Employees),
		Departments:    len(d.Departments),
	}
	for _, e := range d.Employees {
		switch e.Status {
		case models.StatusActive:
			s.ActiveEmployees++
		case models.StatusInactive:
			s.InactiveEmployees++
		}
		if isFourDigits(e.Extension) {
			s.FourDigitExtensions++
		}
	}
	for _, dept := range d.Departments {
		s.PerDepartment = append(s.PerDepartment, DepartmentCount{
			Name:  dept.Name,
			Count: d.EmployeeCountByDepartment(dept.Name),
		})
	}

	updated := make([]models.Employee, 0, len(d.Employees))
	for _, e := range d.Employees {
		if e.LastUpdated != "" {
			updated = append(updated, e)
		}
	}
	sort.SliceStable(updated, func(i, j int) bool {
		return updated[i].LastUpdated > updated[j].LastUpdated
	})
	if len(updated) > 10 {
		updated = updated[:10]
	}
	s.RecentlyUpdated = updated
	return s
}

// Package deptsync reconciles the free-text department field of employee
// rows against the Departments table. It finds names employees reference
// that have no department row and applies exactly one resolution per name,
// all-or-nothing.
package deptsync

import (
	"fmt"
	"sort"
	"strings"

	"github.com/okubo/staffdir-go/pkg/staffdir"
	"github.com/okubo/staffdir-go/pkg/staffdir/directory"
	"github.com/okubo/staffdir-go/pkg/staffdir/models"
)

// Kind selects how one orphaned department name is resolved.
type Kind string

const (
	// KindCreate adds a new department row for the orphaned name,
	// optionally under a corrected name.
	KindCreate Kind = "create"
	// KindMerge combines the orphaned name with another orphaned name under
	// one new department row.
	KindMerge Kind = "merge"
	// KindMap repoints employees to a department that already exists; no
	// new row is created.
	KindMap Kind = "map"
	// KindRemove blanks the department field on every employee using the
	// orphaned name.
	KindRemove Kind = "remove"
)

// Resolution is the chosen action for one orphaned name. Only the fields of
// the selected Kind are read.
type Resolution struct {
	Kind        Kind
	NewName     string // KindCreate: corrected name; empty keeps the orphan's name
	Description string // KindCreate: description of the new row
	Other       string // KindMerge: the partner orphaned name
	FinalName   string // KindMerge: name of the merged row; empty uses Other
	Target      string // KindMap: name of the existing department
}

// Plan maps each orphaned name to its resolution.
type Plan map[string]Resolution

// Summary reports what an Apply changed.
type Summary struct {
	Created  int // new department rows
	Merged   int // merge pairs processed
	Renamed  int // creates that also corrected the name
	Remapped int // employee rows repointed by map resolutions
	Cleared  int // employee rows blanked by remove resolutions
}

// Orphans returns the sorted set of non-blank department names referenced by
// employees that have no matching department row (exact match after
// trimming).
func Orphans(dir *directory.Directory) []string {
	known := make(map[string]bool, len(dir.Departments))
	for _, dept := range dir.Departments {
		known[strings.TrimSpace(dept.Name)] = true
	}
	seen := make(map[string]bool)
	var out []string
	for _, e := range dir.Employees {
		name := strings.TrimSpace(e.Department)
		if name == "" || known[name] || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Validate checks that the plan resolves every orphaned name and that each
// resolution is applicable. It returns an IncompleteBatchError listing the
// unresolved names, or a validation error for an unusable resolution.
func Validate(dir *directory.Directory, plan Plan) error {
	orphans := Orphans(dir)
	orphanSet := make(map[string]bool, len(orphans))
	for _, name := range orphans {
		orphanSet[name] = true
	}

	var unresolved []string
	for _, name := range orphans {
		res, ok := plan[name]
		if !ok {
			unresolved = append(unresolved, name)
			continue
		}
		switch res.Kind {
		case KindCreate:
			newName := strings.TrimSpace(res.NewName)
			if newName != "" && !strings.EqualFold(newName, name) && dir.HasDepartmentName(newName) {
				return staffdir.NewDuplicateError("department name", newName)
			}
		case KindMerge:
			if res.Other == "" {
				unresolved = append(unresolved, name)
			} else if !orphanSet[res.Other] {
				return staffdir.NewValidationError("merge",
					fmt.Sprintf("%q is not an orphaned department name", res.Other))
			}
		case KindMap:
			if res.Target == "" {
				unresolved = append(unresolved, name)
			} else if !dir.HasDepartmentName(res.Target) {
				return staffdir.NewValidationError("map",
					fmt.Sprintf("department %q does not exist", res.Target))
			}
		case KindRemove:
		default:
			return staffdir.NewValidationError("resolution",
				fmt.Sprintf("unknown kind %q for %q", res.Kind, name))
		}
	}
	if len(unresolved) > 0 {
		return staffdir.NewIncompleteBatchError("department sync", unresolved)
	}
	return nil
}

// Apply validates the plan and applies every resolution. The whole batch is
// all-or-nothing: mutations run on a clone that replaces the directory only
// when every resolution succeeds, so a failed apply leaves the state
// byte-identical to before.
func Apply(dir *directory.Directory, plan Plan) (Summary, error) {
	if err := Validate(dir, plan); err != nil {
		return Summary{}, err
	}

	work := dir.Clone()
	var sum Summary
	processedMerges := make(map[[2]string]bool)

	for _, name := range Orphans(dir) {
		res := plan[name]
		switch res.Kind {
		case KindCreate:
			finalName := strings.TrimSpace(res.NewName)
			if finalName == "" {
				finalName = name
			}
			description := strings.TrimSpace(res.Description)
			if description == "" {
				description = "Synced from employee records"
			}
			work.Departments = append(work.Departments, models.Department{
				DeptID:      work.NextDeptID(),
				Name:        finalName,
				Description: description,
			})
			sum.Created++
			if finalName != name {
				work.RepointDepartment(name, finalName)
				sum.Renamed++
			}

		case KindMerge:
			key := mergeKey(name, res.Other)
			if processedMerges[key] {
				continue
			}
			processedMerges[key] = true
			finalName := strings.TrimSpace(res.FinalName)
			if finalName == "" {
				finalName = res.Other
			}
			work.Departments = append(work.Departments, models.Department{
				DeptID:      work.NextDeptID(),
				Name:        finalName,
				Description: fmt.Sprintf("Merged from: %s, %s", name, res.Other),
			})
			work.RepointDepartment(name, finalName)
			work.RepointDepartment(res.Other, finalName)
			sum.Merged++

		case KindMap:
			sum.Remapped += work.RepointDepartment(name, res.Target)

		case KindRemove:
			sum.Cleared += work.RepointDepartment(name, "")
		}
	}

	*dir = *work
	return sum, nil
}

// mergeKey identifies a merge pair independently of which side named it.
func mergeKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}

// Package directory holds the in-memory two-table state and every mutation
// defined over it. The whole state is loaded from the workbook at once,
// mutated here, and rewritten as a unit by the store.
package directory

import (
	"time"

	"github.com/tiendc/go-deepcopy"

	"github.com/okubo/staffdir-go/pkg/staffdir/models"
)

// timeNow is stubbed in tests for deterministic Last Updated stamps.
var timeNow = time.Now

// Directory is the in-memory pair of tables. Mutating methods maintain
// unique monotonic row ids, unique non-blank employee ids,
// case-insensitively unique department names, and a Last Updated stamp on
// every row actually changed.
type Directory struct {
	Employees   []models.Employee
	Departments []models.Department
}

// New returns an empty directory.
func New() *Directory {
	return &Directory{}
}

// Clone returns a deep copy of the directory. Batch operations mutate a
// clone and swap it in only on success, so a failed apply leaves the
// original state untouched.
func (d *Directory) Clone() *Directory {
	out := &Directory{}
	if err := deepcopy.Copy(out, d); err != nil {
		// The directory is plain data; a copy failure means a programming
		// error, not a runtime condition.
		panic(err)
	}
	return out
}

// Timestamp returns the current UTC time in the persisted Last Updated
// format.
func Timestamp() string {
	return timeNow().UTC().Format(time.RFC3339)
}

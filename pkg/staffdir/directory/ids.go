package directory

import (
	"regexp"
	"strconv"
)

var deptIDDigits = regexp.MustCompile(`\d+`)

// NextRowID returns one greater than the maximum existing internal row id,
// or 1 when the table is empty. It is recomputed from current state on every
// call; there is no persisted counter.
func (d *Directory) NextRowID() int {
	max := 0
	for _, e := range d.Employees {
		if e.RowID > max {
			max = e.RowID
		}
	}
	return max + 1
}

// NextDeptID extracts the numeric portion of every existing department id
// and returns one greater than the maximum as a string, or "1" when no id
// parses. Non-numeric ids such as "HR-7" contribute their digits.
func (d *Directory) NextDeptID() string {
	max := 0
	found := false
	for _, dept := range d.Departments {
		m := deptIDDigits.FindString(dept.DeptID)
		if m == "" {
			continue
		}
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		found = true
		if n > max {
			max = n
		}
	}
	if !found {
		return "1"
	}
	return strconv.Itoa(max + 1)
}

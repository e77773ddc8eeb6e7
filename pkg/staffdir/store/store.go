// Package store loads and persists the two-table workbook. The workbook is
// the sole persistence layer: both sheets are read wholesale into a
// directory.Directory and written back as a unit after every mutation.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/okubo/staffdir-go/pkg/staffdir/directory"
	"github.com/okubo/staffdir-go/pkg/staffdir/models"
)

// Load reads both sheets from the workbook at path. A missing file is not an
// error: a fresh empty workbook is created and an empty directory returned.
// Rows lacking a Row ID are assigned one continuing the max-seen sequence,
// and absent columns are normalized to empty values so every row is
// rectangular.
func Load(path string) (*directory.Directory, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		dir := directory.New()
		if err := Save(path, dir); err != nil {
			return nil, fmt.Errorf("creating workbook: %w", err)
		}
		return dir, nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	dir := directory.New()

	empRows, err := readSheet(f, models.EmployeeSheet, models.EmployeeColumns)
	if err != nil {
		return nil, err
	}
	for _, rec := range empRows {
		dir.Employees = append(dir.Employees, models.EmployeeFromRecord(rec))
	}
	assignMissingRowIDs(dir)

	deptRows, err := readSheet(f, models.DepartmentSheet, models.DepartmentColumns)
	if err != nil {
		return nil, err
	}
	for _, rec := range deptRows {
		dir.Departments = append(dir.Departments, models.DepartmentFromRecord(rec))
	}

	return dir, nil
}

// Save serializes both tables to a temporary file in the target's directory
// and renames it over path, so the target is never left partially written.
func Save(path string, dir *directory.Directory) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", models.EmployeeSheet)
	if _, err := f.NewSheet(models.DepartmentSheet); err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}

	if err := writeSheet(f, models.EmployeeSheet, models.EmployeeColumns, employeeRecords(dir)); err != nil {
		return err
	}
	if err := writeSheet(f, models.DepartmentSheet, models.DepartmentColumns, departmentRecords(dir)); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".staffdir-*.xlsx")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	tmp.Close()

	if err := f.SaveAs(tmpName); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing workbook: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing workbook: %w", err)
	}
	return nil
}

// readSheet returns the data rows of a sheet with cells reordered into the
// given column order, using the sheet's own header row to locate columns.
// A missing sheet or missing column yields empty values.
func readSheet(f *excelize.File, sheet string, columns []string) ([][]string, error) {
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	// Header cell position for each wanted column, -1 when absent.
	pos := make([]int, len(columns))
	for i, want := range columns {
		pos[i] = -1
		for j, got := range rows[0] {
			if got == want {
				pos[i] = j
				break
			}
		}
	}

	var out [][]string
	for _, row := range rows[1:] {
		rec := make([]string, len(columns))
		empty := true
		for i, p := range pos {
			if p >= 0 && p < len(row) {
				rec[i] = row[p]
				if rec[i] != "" {
					empty = false
				}
			}
		}
		if !empty {
			out = append(out, rec)
		}
	}
	return out, nil
}

func writeSheet(f *excelize.File, sheet string, columns []string, records [][]string) error {
	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header of %q: %w", sheet, err)
	}
	for i, rec := range records {
		cells := make([]interface{}, len(rec))
		for j, v := range rec {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("writing row %d of %q: %w", i+2, sheet, err)
		}
	}
	return nil
}

func employeeRecords(dir *directory.Directory) [][]string {
	out := make([][]string, 0, len(dir.Employees))
	for _, e := range dir.Employees {
		out = append(out, e.Record())
	}
	return out
}

func departmentRecords(dir *directory.Directory) [][]string {
	out := make([][]string, 0, len(dir.Departments))
	for _, d := range dir.Departments {
		out = append(out, d.Record())
	}
	return out
}

// assignMissingRowIDs gives every row without a parsable Row ID the next id
// in the max-seen sequence, preserving ids that already exist.
func assignMissingRowIDs(dir *directory.Directory) {
	max := 0
	for _, e := range dir.Employees {
		if e.RowID > max {
			max = e.RowID
		}
	}
	for i := range dir.Employees {
		if dir.Employees[i].RowID == 0 {
			max++
			dir.Employees[i].RowID = max
		}
	}
}

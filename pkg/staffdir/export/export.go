// Package export serializes employee rows for use outside the workbook,
// either as delimited text or as a spreadsheet matching the persisted
// schema.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/okubo/staffdir-go/pkg/staffdir/models"
)

// WriteCSV writes the employees as comma-separated text with the persisted
// column header.
func WriteCSV(w io.Writer, employees []models.Employee) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(models.EmployeeColumns); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, e := range employees {
		if err := cw.Write(e.Record()); err != nil {
			return fmt.Errorf("writing csv row %d: %w", e.RowID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the employees to a workbook at path with a single
// Employees sheet in the persisted column order.
func WriteXLSX(path string, employees []models.Employee) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", models.EmployeeSheet)

	header := make([]interface{}, len(models.EmployeeColumns))
	for i, c := range models.EmployeeColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(models.EmployeeSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, e := range employees {
		rec := e.Record()
		cells := make([]interface{}, len(rec))
		for j, v := range rec {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(models.EmployeeSheet, cell, &cells); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving export: %w", err)
	}
	return nil
}

// WriteTemplateCSV writes the bulk-import template: the importable columns
// and one sample row.
func WriteTemplateCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := []string{"Employee ID", "Name", "Extension", "Department", "Cell Number", "Location", "Status", "Notes"}
	sample := []string{"EMP001", "John Doe", "1234", "IT", "+1234567890", "New York", "Active", "Sample employee"}
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.Write(sample); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

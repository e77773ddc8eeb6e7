package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/okubo/staffdir-go/pkg/staffdir/models"
)

// employeeFlags carries one employee's field values from flags.
type employeeFlags struct {
	employeeID string
	name       string
	extension  string
	department string
	cell       string
	location   string
	status     string
	notes      string
}

func (ef *employeeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ef.employeeID, "employee-id", "", "external employee id (optional, unique)")
	cmd.Flags().StringVar(&ef.name, "name", "", "full name (required)")
	cmd.Flags().StringVar(&ef.extension, "extension", "", "extension, typically 4 digits (required)")
	cmd.Flags().StringVar(&ef.department, "department", "", "department name")
	cmd.Flags().StringVar(&ef.cell, "cell", "", "cell number")
	cmd.Flags().StringVar(&ef.location, "location", "", "location")
	cmd.Flags().StringVar(&ef.status, "status", models.StatusActive, "Active or Inactive")
	cmd.Flags().StringVar(&ef.notes, "notes", "", "notes")
}

func (ef *employeeFlags) draft() models.Employee {
	return models.Employee{
		EmployeeID: ef.employeeID,
		Name:       ef.name,
		Extension:  ef.extension,
		Department: ef.department,
		CellNumber: ef.cell,
		Location:   ef.location,
		Status:     ef.status,
		Notes:      ef.notes,
	}
}

// apply overwrites base with the flags the user actually set.
func (ef *employeeFlags) apply(cmd *cobra.Command, base models.Employee) models.Employee {
	set := func(flag string, dst *string, v string) {
		if cmd.Flags().Changed(flag) {
			*dst = v
		}
	}
	set("employee-id", &base.EmployeeID, ef.employeeID)
	set("name", &base.Name, ef.name)
	set("extension", &base.Extension, ef.extension)
	set("department", &base.Department, ef.department)
	set("cell", &base.CellNumber, ef.cell)
	set("location", &base.Location, ef.location)
	set("status", &base.Status, ef.status)
	set("notes", &base.Notes, ef.notes)
	return base
}

var addFlags employeeFlags

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an employee",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, path, err := openDirectory()
		if err != nil {
			return err
		}
		emp, err := dir.AddEmployee(addFlags.draft())
		if err != nil {
			return err
		}
		if err := saveDirectory(path, dir); err != nil {
			return err
		}
		logger.Info().Int("row", emp.RowID).Str("name", emp.Name).Msg("employee added")
		fmt.Printf("Added %s (row %d)\n", emp.Name, emp.RowID)
		return nil
	},
}

var updateFlags employeeFlags

var updateCmd = &cobra.Command{
	Use:   "update ROW_ID",
	Short: "Update an employee by internal row id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rowID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid row id %q", args[0])
		}
		dir, path, err := openDirectory()
		if err != nil {
			return err
		}
		current, err := dir.FindEmployee(rowID)
		if err != nil {
			return err
		}
		emp, err := dir.UpdateEmployee(rowID, updateFlags.apply(cmd, current))
		if err != nil {
			return err
		}
		if err := saveDirectory(path, dir); err != nil {
			return err
		}
		logger.Info().Int("row", emp.RowID).Str("name", emp.Name).Msg("employee updated")
		fmt.Printf("Updated %s (row %d)\n", emp.Name, emp.RowID)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete ROW_ID",
	Short: "Delete an employee by internal row id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rowID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid row id %q", args[0])
		}
		dir, path, err := openDirectory()
		if err != nil {
			return err
		}
		if err := dir.DeleteEmployee(rowID); err != nil {
			return err
		}
		if err := saveDirectory(path, dir); err != nil {
			return err
		}
		logger.Info().Int("row", rowID).Msg("employee deleted")
		fmt.Printf("Deleted employee row %d\n", rowID)
		return nil
	},
}

var activateCmd = &cobra.Command{
	Use:   "activate",
	Short: "Set every inactive employee to Active",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, path, err := openDirectory()
		if err != nil {
			return err
		}
		changed := dir.ActivateAllInactive()
		if changed == 0 {
			fmt.Println("No inactive employees found")
			return nil
		}
		if err := saveDirectory(path, dir); err != nil {
			return err
		}
		logger.Info().Int("changed", changed).Msg("inactive employees activated")
		fmt.Printf("Activated %d employee(s)\n", changed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd, updateCmd, deleteCmd, activateCmd)
	addFlags.register(addCmd)
	updateFlags.register(updateCmd)
}

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var deptCmd = &cobra.Command{
	Use:   "dept",
	Short: "Manage departments",
}

var deptSearch string

var deptListCmd = &cobra.Command{
	Use:   "list",
	Short: "List departments with employee counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _, err := openDirectory()
		if err != nil {
			return err
		}
		depts := dir.SearchDepartments(deptSearch)
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DEPT ID\tNAME\tEMPLOYEES\tDESCRIPTION")
		for _, d := range depts {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
				d.DeptID, d.Name, dir.EmployeeCountByDepartment(d.Name), d.Description)
		}
		w.Flush()
		fmt.Printf("\n%d department(s)\n", len(depts))
		return nil
	},
}

var deptAddDescription string

var deptAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a department",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, path, err := openDirectory()
		if err != nil {
			return err
		}
		dept, err := dir.AddDepartment(args[0], deptAddDescription)
		if err != nil {
			return err
		}
		if err := saveDirectory(path, dir); err != nil {
			return err
		}
		logger.Info().Str("dept", dept.Name).Str("id", dept.DeptID).Msg("department added")
		fmt.Printf("Added department %q (id %s)\n", dept.Name, dept.DeptID)
		return nil
	},
}

var deptRenameDescription string

var deptRenameCmd = &cobra.Command{
	Use:   "rename DEPT_ID NEW_NAME",
	Short: "Rename a department, cascading to employee records",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, path, err := openDirectory()
		if err != nil {
			return err
		}
		if err := dir.RenameDepartment(args[0], args[1], deptRenameDescription); err != nil {
			return err
		}
		if err := saveDirectory(path, dir); err != nil {
			return err
		}
		logger.Info().Str("id", args[0]).Str("name", args[1]).Msg("department renamed")
		fmt.Printf("Renamed department %s to %q\n", args[0], args[1])
		return nil
	},
}

var deptDeleteCmd = &cobra.Command{
	Use:   "delete DEPT_ID",
	Short: "Delete a department, blanking it on its employees",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, path, err := openDirectory()
		if err != nil {
			return err
		}
		dept, err := dir.FindDepartment(args[0])
		if err != nil {
			return err
		}
		affected := dir.EmployeeCountByDepartment(dept.Name)
		if err := dir.DeleteDepartment(args[0]); err != nil {
			return err
		}
		if err := saveDirectory(path, dir); err != nil {
			return err
		}
		logger.Info().Str("dept", dept.Name).Int("unassigned", affected).Msg("department deleted")
		fmt.Printf("Deleted department %q; cleared it on %d employee(s)\n", dept.Name, affected)
		return nil
	},
}

var deptMergeName string

var deptMergeCmd = &cobra.Command{
	Use:   "merge KEEP_ID DELETE_ID",
	Short: "Merge two departments into one",
	Long: `Merge deletes the second department and keeps the first, renamed to
--name when given, repointing every employee referencing either old name.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, path, err := openDirectory()
		if err != nil {
			return err
		}
		if err := dir.MergeDepartments(args[0], args[1], deptMergeName); err != nil {
			return err
		}
		if err := saveDirectory(path, dir); err != nil {
			return err
		}
		logger.Info().Str("keep", args[0]).Str("delete", args[1]).Msg("departments merged")
		fmt.Printf("Merged department %s into %s\n", args[1], args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deptCmd)
	deptCmd.AddCommand(deptListCmd, deptAddCmd, deptRenameCmd, deptDeleteCmd, deptMergeCmd)

	deptListCmd.Flags().StringVar(&deptSearch, "search", "", "filter by name (partial match)")
	deptAddCmd.Flags().StringVar(&deptAddDescription, "description", "", "department description")
	deptRenameCmd.Flags().StringVar(&deptRenameDescription, "description", "", "replacement description")
	deptMergeCmd.Flags().StringVar(&deptMergeName, "name", "", "final name (default: the kept department's name)")
}

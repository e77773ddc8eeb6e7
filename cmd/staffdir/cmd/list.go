package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/okubo/staffdir-go/pkg/staffdir/directory"
	"github.com/okubo/staffdir-go/pkg/staffdir/models"
)

// filterFlags holds the search/filter flag values shared by list and export.
type filterFlags struct {
	name       string
	extension  string
	employeeID string
	location   string
	status     string
	depts      []string
	query      string
}

func (ff *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ff.name, "name", "", "name contains")
	cmd.Flags().StringVar(&ff.extension, "extension", "", "extension contains")
	cmd.Flags().StringVar(&ff.employeeID, "employee-id", "", "employee id contains")
	cmd.Flags().StringVar(&ff.location, "location", "", "location contains")
	cmd.Flags().StringVar(&ff.status, "status", directory.StatusAny, "status: Any, Active or Inactive")
	cmd.Flags().StringSliceVar(&ff.depts, "dept", nil, "department name (repeatable)")
	cmd.Flags().StringVar(&ff.query, "search", "", "search all columns")
}

func (ff *filterFlags) filter() directory.Filter {
	return directory.Filter{
		NameContains:       ff.name,
		ExtensionContains:  ff.extension,
		EmployeeIDContains: ff.employeeID,
		LocationContains:   ff.location,
		Status:             ff.status,
		Departments:        ff.depts,
		Query:              ff.query,
	}
}

var (
	listFilter  filterFlags
	listPage    int
	listPerPage int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List employees with search, filters and pagination",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _, err := openDirectory()
		if err != nil {
			return err
		}
		matched := dir.List(listFilter.filter())
		page := directory.Page(matched, listPage, listPerPage)

		printEmployees(page)
		fmt.Printf("\nShowing %d of %d matching employee(s)", len(page), len(matched))
		if listPerPage > 0 && len(matched) > listPerPage {
			totalPages := (len(matched) + listPerPage - 1) / listPerPage
			fmt.Printf(" (page %d of %d)", listPage, totalPages)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listFilter.register(listCmd)
	listCmd.Flags().IntVar(&listPage, "page", 1, "page number")
	listCmd.Flags().IntVar(&listPerPage, "per-page", 0, "rows per page (0 shows all)")
}

func printEmployees(employees []models.Employee) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ROW\tEMP ID\tNAME\tEXT\tDEPARTMENT\tCELL\tLOCATION\tSTATUS\tNOTES")
	for _, e := range employees {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.RowID, orDash(e.EmployeeID), e.Name, e.Extension, orDash(e.Department),
			orDash(e.CellNumber), orDash(e.Location), e.Status, e.Notes)
	}
	w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
